// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Created(t *testing.T) {
	auth := acceptingAuth()
	auth.registerFn = func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
		assert.Equal(t, "ada@example.com", req.Email)
		assert.Equal(t, "ada", req.Username)
		return models.AuthResponse{
			User:         models.User{UserID: testUserID, Email: req.Email, Username: req.Username},
			Token:        "access",
			RefreshToken: "refresh",
		}, nil
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Username: "ada", Password: "secret-pass",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.AuthResponse
	resp := envelopeOf(t, rec, &got)
	assert.True(t, resp.Success)
	assert.Equal(t, app.MsgRegistered, resp.Message)
	assert.Equal(t, testUserID, got.User.UserID)
	assert.Equal(t, "access", got.Token)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.NotContains(t, rec.Body.String(), "secret-pass")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"duplicate email", store.ErrDuplicateEmail, http.StatusBadRequest, app.MsgEmailAlreadyExists},
		{"duplicate username", store.ErrDuplicateUsername, http.StatusBadRequest, app.MsgUsernameAlreadyExists},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"internal", errors.New("db down"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := acceptingAuth()
			auth.registerFn = func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
				return models.AuthResponse{}, tt.err
			}
			router := newTestRouter(t, &service.Services{AuthService: auth})

			rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{Email: "ada@example.com"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := envelopeOf(t, rec, nil)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestRegister_InternalErrorHidesDetailsInProduction(t *testing.T) {
	auth := acceptingAuth()
	auth.registerFn = func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
		return models.AuthResponse{}, errors.New("pq: connection refused")
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRegister_MalformedJSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := envelopeOf(t, rec, nil)
	assert.Equal(t, app.MsgInvalidDataProvided, resp.Message)
	assert.NotEmpty(t, resp.Error)
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := acceptingAuth()
		auth.loginFn = func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
			assert.Equal(t, "ada@example.com", req.Email)
			return models.AuthResponse{User: models.User{UserID: testUserID}, Token: "access", RefreshToken: "refresh"}, nil
		}
		router := newTestRouter(t, &service.Services{AuthService: auth})

		rec := doRequest(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ada@example.com", Password: "pw"})

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.AuthResponse
		assert.Equal(t, app.MsgLoggedIn, envelopeOf(t, rec, &got).Message)
		assert.Equal(t, "access", got.Token)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		auth := acceptingAuth()
		auth.loginFn = func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrWrongCredentials
		}
		router := newTestRouter(t, &service.Services{AuthService: auth})

		rec := doRequest(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ada@example.com", Password: "bad"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgInvalidEmailPassword, envelopeOf(t, rec, nil).Message)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("rotates the pair", func(t *testing.T) {
		auth := acceptingAuth()
		auth.refreshFn = func(_ context.Context, refreshToken string) (models.TokenPair, error) {
			assert.Equal(t, "old-refresh", refreshToken)
			return models.TokenPair{Token: "new-access", RefreshToken: "new-refresh"}, nil
		}
		router := newTestRouter(t, &service.Services{AuthService: auth})

		rec := doRequest(t, router, http.MethodPost, "/api/auth/refresh", models.RefreshRequest{RefreshToken: "old-refresh"})

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.TokenPair
		envelopeOf(t, rec, &got)
		assert.Equal(t, models.TokenPair{Token: "new-access", RefreshToken: "new-refresh"}, got)
	})

	t.Run("reused token", func(t *testing.T) {
		auth := acceptingAuth()
		auth.refreshFn = func(context.Context, string) (models.TokenPair, error) {
			return models.TokenPair{}, service.ErrInvalidRefreshToken
		}
		router := newTestRouter(t, &service.Services{AuthService: auth})

		rec := doRequest(t, router, http.MethodPost, "/api/auth/refresh", models.RefreshRequest{RefreshToken: "used"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgInvalidRefreshToken, envelopeOf(t, rec, nil).Message)
	})
}

func TestLogout_AlwaysOK(t *testing.T) {
	tests := []struct {
		name      string
		body      any
		revokeErr error
		wantCall  bool
	}{
		{"revokes the token", models.RefreshRequest{RefreshToken: "refresh"}, nil, true},
		{"revocation failure is ignored", models.RefreshRequest{RefreshToken: "refresh"}, errors.New("db down"), true},
		{"no body", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := acceptingAuth()
			auth.revokeFn = func(_ context.Context, refreshToken string) error {
				called = true
				assert.Equal(t, "refresh", refreshToken)
				return tt.revokeErr
			}
			router := newTestRouter(t, &service.Services{AuthService: auth})

			rec := doRequest(t, router, http.MethodPost, "/api/auth/logout", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, app.MsgLoggedOut, envelopeOf(t, rec, nil).Message)
			assert.Equal(t, tt.wantCall, called)
		})
	}
}

func TestProfile(t *testing.T) {
	name := "Ada L."
	users := &mockUserService{
		getProfileFn: func(_ context.Context, userID string) (models.User, error) {
			return models.User{UserID: userID, Name: "Ada"}, nil
		},
		updateProfileFn: func(_ context.Context, update models.ProfileUpdate) (models.User, error) {
			assert.Equal(t, testUserID, update.UserID)
			require.NotNil(t, update.Name)
			return models.User{UserID: update.UserID, Name: *update.Name}, nil
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	for _, path := range []string{"/api/auth/profile", "/api/users/profile"} {
		rec := doRequest(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		var got models.User
		envelopeOf(t, rec, &got)
		assert.Equal(t, testUserID, got.UserID, path)
	}

	rec := doRequest(t, router, http.MethodPut, "/api/auth/profile", models.ProfileUpdate{Name: &name})
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.User
	envelopeOf(t, rec, &got)
	assert.Equal(t, name, got.Name)
}

func TestUpdateProfile_NoFields(t *testing.T) {
	users := &mockUserService{
		updateProfileFn: func(context.Context, models.ProfileUpdate) (models.User, error) {
			return models.User{}, service.ErrNoFieldsToUpdate
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	rec := doRequest(t, router, http.MethodPut, "/api/auth/profile", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoFieldsToUpdate, envelopeOf(t, rec, nil).Message)
}
