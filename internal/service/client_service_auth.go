// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

type clientAuthService struct {
	keeper *sessionKeeper

	logger *logger.Logger
}

func newClientAuthService(keeper *sessionKeeper, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{keeper: keeper, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)

	auth, err := a.keeper.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	if err = a.keeper.save(ctx, auth); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Str("user_id", auth.User.UserID).Msg("registered")
	return auth.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)

	auth, err := a.keeper.adapter.Login(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	if err = a.keeper.save(ctx, auth); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Str("user_id", auth.User.UserID).Msg("logged in")
	return auth.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	session, err := a.keeper.restore(ctx)
	if errors.Is(err, ErrNotLoggedIn) {
		return nil
	}
	if err != nil {
		return err
	}

	logoutErr := a.keeper.adapter.Logout(ctx, session.RefreshToken)
	if logoutErr != nil {
		a.logger.Warn().Err(logoutErr).Msg("server logout failed, dropping local session anyway")
	}

	if err = a.keeper.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.ClientSession, error) {
	return a.keeper.restore(ctx)
}
