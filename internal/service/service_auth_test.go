// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/mock"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/internal/utils"
	"github.com/MKhiriev/go-vmind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey    = "test-sign-key"
	testIssuer     = "go-vmind-test"
	testRefreshKey = "test-refresh-key"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:        testSignKey,
		TokenIssuer:         testIssuer,
		AccessTokenDuration: time.Minute,
		RefreshTokenHashKey: testRefreshKey,
		BcryptCost:          bcrypt.MinCost,
	}
}

func newTestAuthService(t *testing.T, cfg config.App) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, cfg, logger.Nop()), repo
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "Ana",
		Email:    "  Ana@Example.COM ",
		Username: "ana",
		Password: "secret1",
	}
}

func bcryptUser(t *testing.T, password string) models.User {
	t.Helper()
	credential, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{
		UserID:     "0190c2a4-0000-7000-8000-000000000001",
		Name:       "Ana",
		Email:      "ana@example.com",
		Username:   "ana",
		Credential: credential,
		Role:       models.RoleUser,
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_StoresBcryptCredential(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	ctx := context.Background()

	var stored models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			stored = u
			return u, nil
		})
	repo.EXPECT().SetRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Register(ctx, validRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", stored.Email)
	assert.True(t, utils.IsValidUUID(stored.UserID))
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.Equal(t, models.SchemeBcrypt, stored.Credential.Scheme)
	assert.NotEqual(t, "secret1", stored.Credential.Value)

	ok, err := utils.VerifyPassword(stored.Credential, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, stored.UserID, resp.User.UserID)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestAuthService_Register_StoresOnlyRefreshDigest(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	var storedHash string
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) { return u, nil })
	repo.EXPECT().SetRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, hash string) error {
			storedHash = hash
			return nil
		})

	resp, err := svc.Register(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, storedHash)
	assert.Equal(t, utils.HashString(resp.RefreshToken, testRefreshKey), storedHash)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	req := validRegisterRequest()
	req.Password = ""

	_, err := svc.Register(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), validRegisterRequest())

	require.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrDuplicateUsername)

	_, err := svc.Register(context.Background(), validRegisterRequest())

	require.ErrorIs(t, err, store.ErrDuplicateUsername)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	user := bcryptUser(t, "secret1")

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(user, nil),
		repo.EXPECT().RecordConnection(gomock.Any(), user.UserID).Return(nil),
		repo.EXPECT().SetRefreshToken(gomock.Any(), user.UserID, gomock.Any()).Return(nil),
	)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "ANA@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, user.UserID, resp.User.UserID)

	token, err := utils.ValidateAndParseJWTToken(resp.Token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, token.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	user := bcryptUser(t, "secret1")

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "wrong-password"})

	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})

	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	dbErr := errors.New("connection reset")

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secret1"})

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_LegacyCredentialIsUpgraded(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	user := bcryptUser(t, "secret1")
	user.Credential = models.Credential{Scheme: models.SchemePlaintext, Value: "secret1"}

	var upgraded models.Credential
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
	repo.EXPECT().UpdateCredential(gomock.Any(), user.UserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, c models.Credential) error {
			upgraded = c
			return nil
		})
	repo.EXPECT().RecordConnection(gomock.Any(), user.UserID).Return(nil)
	repo.EXPECT().SetRefreshToken(gomock.Any(), user.UserID, gomock.Any()).Return(nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, models.SchemeBcrypt, upgraded.Scheme)
	ok, err := utils.VerifyPassword(upgraded, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_Login_LegacyCredentialDisabled(t *testing.T) {
	cfg := testAppConfig()
	cfg.DisableLegacyPasswords = true
	svc, repo := newTestAuthService(t, cfg)
	user := bcryptUser(t, "secret1")
	user.Credential = models.Credential{Scheme: models.SchemePlaintext, Value: "secret1"}

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secret1"})

	require.ErrorIs(t, err, ErrWrongCredentials)
}

// ── Refresh / Revoke ─────────────────────────────────────────────────────────

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	user := bcryptUser(t, "secret1")

	var newHash string
	repo.EXPECT().RotateRefreshToken(gomock.Any(), utils.HashString("old-token", testRefreshKey), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, hash string) (models.User, error) {
			newHash = hash
			return user, nil
		})

	pair, err := svc.Refresh(context.Background(), "old-token")

	require.NoError(t, err)
	assert.NotEmpty(t, pair.Token)
	assert.NotEqual(t, "old-token", pair.RefreshToken)
	assert.Equal(t, utils.HashString(pair.RefreshToken, testRefreshKey), newHash)
}

func TestAuthService_Refresh_TokenIsSingleUse(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	user := bcryptUser(t, "secret1")
	oldHash := utils.HashString("old-token", testRefreshKey)

	gomock.InOrder(
		repo.EXPECT().RotateRefreshToken(gomock.Any(), oldHash, gomock.Any()).Return(user, nil),
		repo.EXPECT().RotateRefreshToken(gomock.Any(), oldHash, gomock.Any()).Return(models.User{}, store.ErrRefreshTokenNotFound),
	)

	_, err := svc.Refresh(context.Background(), "old-token")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), "old-token")
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_EmptyToken(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	_, err := svc.Refresh(context.Background(), "  ")

	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Revoke(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().ClearRefreshToken(gomock.Any(), utils.HashString("some-token", testRefreshKey)).Return(nil)

	require.NoError(t, svc.Revoke(context.Background(), "some-token"))
	require.NoError(t, svc.Revoke(context.Background(), ""))
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	valid, err := utils.GenerateJWTToken(testIssuer, "user-1", time.Minute, testSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, "user-1", -time.Minute, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken("someone-else", "user-1", time.Minute, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: valid.String()},
		{name: "expired", token: expired.String(), wantErr: true},
		{name: "wrong issuer", token: foreign.String(), wantErr: true},
		{name: "garbage", token: "not-a-jwt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.ParseToken(context.Background(), tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnauthenticated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", token.UserID)
		})
	}
}
