// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

const (
	emailConstraint    = "users_email_key"
	usernameConstraint = "users_username_key"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Username,
		&user.Credential.Value,
		&user.Credential.Scheme,
		&user.Role,
		&user.Phone,
		&user.Objective,
		&user.PreferredLanguage,
		&user.CreatedAt,
		&user.LastConnection,
		&user.CurrentXP,
		&user.CurrentLevel,
	)
	return user, err
}

// CreateUser persists a new account and returns it with the server-assigned
// columns filled in.
//
// Error handling:
//   - unique violation on users_email_key → [ErrDuplicateEmail].
//   - unique violation on users_username_key → [ErrDuplicateUsername].
//   - any other driver error, including other unique violations → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID,
		user.Name,
		user.Email,
		user.Username,
		user.Credential.Value,
		user.Credential.Scheme,
		user.Role,
		user.Phone,
		user.Objective,
		user.PreferredLanguage,
	)

	created, err := scanUser(row)
	if err != nil {
		r.db.logQueryError(ctx, err, "*userRepository.CreateUser", "error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case emailConstraint:
				return models.User{}, ErrDuplicateEmail
			case usernameConstraint:
				return models.User{}, ErrDuplicateUsername
			}
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail returns the account registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByUsername returns the account registered with username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID returns the account with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, fn, query string, arg any) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, fn, "error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// RecordConnection stamps the user's last successful login.
func (r *userRepository) RecordConnection(ctx context.Context, userID string) error {
	return r.execOnUser(ctx, "*userRepository.RecordConnection", recordConnection, userID)
}

// UpdateCredential replaces the stored credential, e.g. when a legacy
// plaintext password is upgraded after login.
func (r *userRepository) UpdateCredential(ctx context.Context, userID string, credential models.Credential) error {
	return r.execOnUser(ctx, "*userRepository.UpdateCredential", updateCredential, credential.Value, credential.Scheme, userID)
}

// SetRefreshToken overwrites the user's refresh token digest, invalidating
// any previously issued refresh token.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID, tokenHash string) error {
	return r.execOnUser(ctx, "*userRepository.SetRefreshToken", setRefreshToken, tokenHash, userID)
}

// execOnUser runs an UPDATE whose last argument is the user id and reports
// [ErrUserNotFound] when it matched nothing.
func (r *userRepository) execOnUser(ctx context.Context, fn, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logQueryError(ctx, err, fn, "error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// RotateRefreshToken atomically replaces oldHash with newHash. Exactly one
// of two concurrent rotations of the same token can succeed.
func (r *userRepository) RotateRefreshToken(ctx context.Context, oldHash, newHash string) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, rotateRefreshToken, newHash, oldHash))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrRefreshTokenNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*userRepository.RotateRefreshToken", "error rotating refresh token")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ClearRefreshToken forgets tokenHash. It succeeds whether or not a user
// held it.
func (r *userRepository) ClearRefreshToken(ctx context.Context, tokenHash string) error {
	if _, err := r.db.ExecContext(ctx, clearRefreshToken, tokenHash); err != nil {
		r.db.logQueryError(ctx, err, "*userRepository.ClearRefreshToken", "error clearing refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpdateProfile applies the non-nil fields of update and returns the
// resulting account. An empty update returns the account unchanged.
func (r *userRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindUserByID(ctx, update.UserID)
	}

	query, args, err := buildProfileUpdate(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*userRepository.UpdateProfile", "error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
