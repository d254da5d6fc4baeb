// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-vmind API server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships a REST
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the API server.
// Implementations are responsible for serialisation, authentication header
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the returned access token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login opens a session and stores the returned access token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Refresh exchanges a refresh token for a new pair and stores the new
	// access token. The old refresh token is no longer valid afterwards.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// Logout revokes the refresh token and forgets the access token.
	Logout(ctx context.Context, refreshToken string) error

	GetProfile(ctx context.Context) (models.User, error)
	GetStats(ctx context.Context) (models.UserStats, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetProgress(ctx context.Context) ([]models.RoadmapProgress, error)

	CompleteTask(ctx context.Context, taskID int64) (models.ProgressResult, error)
	UncompleteTask(ctx context.Context, taskID int64) (models.ProgressResult, error)
	StartTask(ctx context.Context, taskID int64) (models.ProgressResult, error)

	ListRoadmaps(ctx context.Context) ([]models.Roadmap, error)
	Enroll(ctx context.Context, roadmapID int64) error

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
