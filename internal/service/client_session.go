// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vmind/internal/adapter"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/models"
)

// sessionKeeper binds the locally stored session to the server adapter.
type sessionKeeper struct {
	sessions store.ClientSessionStore
	adapter  adapter.ServerAdapter

	now    func() time.Time
	logger *logger.Logger
}

func newSessionKeeper(sessions store.ClientSessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *sessionKeeper {
	return &sessionKeeper{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (k *sessionKeeper) restore(ctx context.Context) (models.ClientSession, error) {
	session, err := k.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.ClientSession{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("restore session: %w", err)
	}

	k.adapter.SetToken(session.AccessToken)
	return session, nil
}

func (k *sessionKeeper) save(ctx context.Context, auth models.AuthResponse) error {
	session := models.ClientSession{
		UserID:       auth.User.UserID,
		Email:        auth.User.Email,
		AccessToken:  auth.Token,
		RefreshToken: auth.RefreshToken,
		SavedAt:      k.now(),
	}
	if err := k.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// refresh rotates the token pair. A refresh token the server no longer
// accepts ends the local session.
func (k *sessionKeeper) refresh(ctx context.Context, session models.ClientSession) error {
	pair, err := k.adapter.Refresh(ctx, session.RefreshToken)
	if errors.Is(err, adapter.ErrUnauthorized) {
		if delErr := k.sessions.DeleteSession(ctx); delErr != nil {
			k.logger.Warn().Err(delErr).Msg("failed to drop expired session")
		}
		return ErrSessionExpired
	}
	if err != nil {
		return mapAdapterError(err)
	}

	session.AccessToken = pair.Token
	session.RefreshToken = pair.RefreshToken
	session.SavedAt = k.now()
	if err = k.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save refreshed session: %w", err)
	}

	k.logger.Debug().Str("user_id", session.UserID).Msg("session refreshed")
	return nil
}

// withSession runs call with the stored session. When the server answers 401
// the session is refreshed and call is retried once.
func withSession[T any](ctx context.Context, k *sessionKeeper, call func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	session, err := k.restore(ctx)
	if err != nil {
		return zero, err
	}

	result, err := call(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		if err = k.refresh(ctx, session); err != nil {
			return zero, err
		}
		result, err = call(ctx)
	}
	if err != nil {
		return zero, mapAdapterError(err)
	}

	return result, nil
}
