// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

// AuthService registers users and manages their sessions.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Refresh exchanges a refresh token for a new token pair. The presented
	// token cannot be used again.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	// Revoke forgets the refresh token. Unknown tokens are not an error.
	Revoke(ctx context.Context, refreshToken string) error

	IssueSession(ctx context.Context, user models.User) (models.Session, error)
	ParseToken(ctx context.Context, accessToken string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	GetInterests(ctx context.Context, userID string) ([]models.Interest, error)
}

// ProgressService mutates and reads per-user learning progress. Task
// mutations act on behalf of the user stored in the context.
type ProgressService interface {
	CompleteTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error)
	UncompleteTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error)
	StartTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error)

	Enroll(ctx context.Context, userID string, roadmapID int64) error
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error)
	GetProgress(ctx context.Context, userID string) ([]models.RoadmapProgress, error)
}

// RoadmapService serves the roadmap catalogue. Mutations require an admin
// caller.
type RoadmapService interface {
	List(ctx context.Context) ([]models.Roadmap, error)
	Get(ctx context.Context, userID string, roadmapID int64) (models.Roadmap, error)
	Create(ctx context.Context, userID string, req models.RoadmapRequest) (models.Roadmap, error)
	Update(ctx context.Context, userID string, update models.RoadmapUpdate) (models.Roadmap, error)
	Delete(ctx context.Context, userID string, roadmapID int64) error
}

type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID string, noteID int64) error
}

type ResourceService interface {
	CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	ListResources(ctx context.Context, userID string) ([]models.Resource, error)
	UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error)
	DeleteResource(ctx context.Context, userID string, resourceID int64) error
}

// StatsService builds the dashboard aggregate. Nothing is cached.
type StatsService interface {
	GetUserStats(ctx context.Context, userID string) (models.UserStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper decorates a NoteService, e.g. with validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// ResourceServiceWrapper decorates a ResourceService.
type ResourceServiceWrapper interface {
	Wrap(ResourceService) ResourceService
}
