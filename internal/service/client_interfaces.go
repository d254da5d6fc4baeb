// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

// ClientAuthService manages the CLI login. The session returned by the server
// is persisted locally so that subsequent runs stay authenticated.
type ClientAuthService interface {
	// Register creates an account and stores the returned session.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the returned session, replacing any
	// previous one.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout revokes the refresh token on the server and forgets the local
	// session. The local session is dropped even when the server call fails.
	Logout(ctx context.Context) error

	// RestoreSession loads the stored session and primes the adapter with its
	// access token. Returns ErrNotLoggedIn when nothing is stored.
	RestoreSession(ctx context.Context) (models.ClientSession, error)
}

// ClientTrackerService exposes the learning-progress calls of the CLI. Every
// call restores the stored session first and transparently refreshes it once
// when the server rejects the access token.
type ClientTrackerService interface {
	Profile(ctx context.Context) (models.User, error)
	Stats(ctx context.Context) (models.UserStats, error)
	Tasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Progress(ctx context.Context) ([]models.RoadmapProgress, error)

	Complete(ctx context.Context, taskID int64) (models.ProgressResult, error)
	Uncomplete(ctx context.Context, taskID int64) (models.ProgressResult, error)
	Start(ctx context.Context, taskID int64) (models.ProgressResult, error)

	Roadmaps(ctx context.Context) ([]models.Roadmap, error)
	Enroll(ctx context.Context, roadmapID int64) error

	// ServerVersion does not need a session.
	ServerVersion(ctx context.Context) (string, error)
}
