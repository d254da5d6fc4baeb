// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

// sessionRepository is the SQLite-backed implementation of [ClientSessionStore].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [ClientSessionStore] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) ClientSessionStore {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession replaces the stored session.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.ClientSession) error {
	if _, err := r.db.ExecContext(ctx, saveSession,
		session.UserID,
		session.Email,
		session.AccessToken,
		session.RefreshToken,
		session.SavedAt.UTC(),
	); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetSession returns the stored session or [ErrSessionNotFound].
func (r *sessionRepository) GetSession(ctx context.Context) (models.ClientSession, error) {
	var session models.ClientSession
	err := r.db.QueryRowContext(ctx, getSession).Scan(
		&session.UserID,
		&session.Email,
		&session.AccessToken,
		&session.RefreshToken,
		&session.SavedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClientSession{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error reading session")
		return models.ClientSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// DeleteSession forgets the stored session, if any.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
