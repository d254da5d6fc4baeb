// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/internal/utils"
	"github.com/MKhiriev/go-vmind/internal/validators"
	"github.com/MKhiriev/go-vmind/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the lifecycle
// of access and refresh tokens. Only a keyed digest of a refresh token is
// ever persisted.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login requests.
	validator validators.Validator

	// idGenerator issues identifiers for new accounts.
	idGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// refreshHashKey keys the digest stored in place of refresh tokens.
	refreshHashKey string

	bcryptCost int

	// disableLegacyPasswords rejects accounts still holding a plaintext credential.
	disableLegacyPasswords bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		validator:              validators.NewUserValidator(),
		idGenerator:            utils.NewUUIDGenerator(),
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.AccessTokenDuration,
		refreshHashKey:         cfg.RefreshTokenHashKey,
		bcryptCost:             cfg.BcryptCost,
		disableLegacyPasswords: cfg.DisableLegacyPasswords,
		logger:                 logger,
	}
}

// Register creates a new account and opens its first session.
//
// The password is stored as a bcrypt credential and the email lower-cased.
// Returns the persisted user with a token pair or:
//   - ErrInvalidDataProvided (wrapping the validator error) for bad input.
//   - store.ErrDuplicateEmail / store.ErrDuplicateUsername (wrapped) when
//     the email or the username is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("invalid registration data")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	credential, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:            a.idGenerator.Generate(),
		Name:              strings.TrimSpace(req.Name),
		Email:             req.Email,
		Username:          req.Username,
		Credential:        credential,
		Role:              models.RoleUser,
		Phone:             req.Phone,
		Objective:         req.Objective,
		PreferredLanguage: req.PreferredLanguage,
		CurrentLevel:      models.LevelForXP(0).Level,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Str("username", user.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResponse(ctx, registeredUser)
}

// Login authenticates an existing user by email and password.
//
// A legacy plaintext credential is accepted unless disabled by
// configuration and is replaced by a bcrypt credential afterwards.
// Unknown email and wrong password are indistinguishable for the caller:
// both yield ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", req.Email).Msg("login attempt for unknown email")
		return models.AuthResponse{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Credential.IsLegacy() && a.disableLegacyPasswords {
		log.Warn().Str("user_id", user.UserID).Msg("legacy plaintext credential rejected")
		return models.AuthResponse{}, ErrWrongCredentials
	}

	ok, err := utils.VerifyPassword(user.Credential, req.Password)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("password verification failed")
		return models.AuthResponse{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Info().Str("user_id", user.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrWrongCredentials
	}

	if user.Credential.IsLegacy() {
		a.upgradeCredential(ctx, user.UserID, req.Password)
	}

	if err = a.userRepository.RecordConnection(ctx, user.UserID); err != nil {
		log.Warn().Err(err).Str("user_id", user.UserID).Msg("last connection was not recorded")
	}

	return a.authResponse(ctx, user)
}

// upgradeCredential replaces a plaintext credential with a bcrypt one.
// A failure leaves the login successful; the upgrade is retried next time.
func (a *authService) upgradeCredential(ctx context.Context, userID, password string) {
	log := logger.FromContext(ctx)

	credential, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("legacy credential was not rehashed")
		return
	}

	if err = a.userRepository.UpdateCredential(ctx, userID, credential); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("legacy credential was not rehashed")
		return
	}

	log.Info().Str("user_id", userID).Msg("legacy credential upgraded to bcrypt")
}

func (a *authService) authResponse(ctx context.Context, user models.User) (models.AuthResponse, error) {
	session, err := a.IssueSession(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		User:         user,
		Token:        session.AccessToken.String(),
		RefreshToken: session.RefreshToken,
	}, nil
}

// IssueSession creates an access token for user and a fresh refresh token
// whose digest replaces any previously stored one.
func (a *authService) IssueSession(ctx context.Context, user models.User) (models.Session, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.SetRefreshToken(ctx, user.UserID, a.hashRefreshToken(refreshToken)); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID).Msg("refresh token was not stored")
		return models.Session{}, fmt.Errorf("refresh token was not stored: %w", err)
	}

	return models.Session{AccessToken: token, RefreshToken: refreshToken}, nil
}

// Refresh rotates refreshToken. The swap is a single conditional update, so
// of two concurrent refreshes with the same token exactly one succeeds.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(refreshToken) == "" {
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	newRefreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	user, err := a.userRepository.RotateRefreshToken(ctx, a.hashRefreshToken(refreshToken), a.hashRefreshToken(newRefreshToken))
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		log.Info().Msg("unknown or already used refresh token presented")
		return models.TokenPair{}, ErrInvalidRefreshToken
	}
	if err != nil {
		log.Err(err).Msg("refresh token rotation failed")
		return models.TokenPair{}, fmt.Errorf("refresh token rotation failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{Token: token.String(), RefreshToken: newRefreshToken}, nil
}

// Revoke ends the session that owns refreshToken.
func (a *authService) Revoke(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}

	if err := a.userRepository.ClearRefreshToken(ctx, a.hashRefreshToken(refreshToken)); err != nil {
		logger.FromContext(ctx).Err(err).Msg("refresh token was not revoked")
		return fmt.Errorf("refresh token was not revoked: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrUnauthenticated so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, accessToken string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(accessToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.Token{}, ErrUnauthenticated
	}

	return token, nil
}

func (a *authService) hashRefreshToken(refreshToken string) string {
	return utils.HashString(refreshToken, a.refreshHashKey)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
