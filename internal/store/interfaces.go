// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists learner accounts, their credentials and the
// digest of their single active refresh token.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	RecordConnection(ctx context.Context, userID string) error
	UpdateCredential(ctx context.Context, userID string, credential models.Credential) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// SetRefreshToken replaces the stored refresh token digest of the user.
	SetRefreshToken(ctx context.Context, userID, tokenHash string) error
	// RotateRefreshToken swaps oldHash for newHash in one statement and
	// returns the owner. No owner of oldHash yields ErrRefreshTokenNotFound.
	RotateRefreshToken(ctx context.Context, oldHash, newHash string) (models.User, error)
	// ClearRefreshToken forgets the digest. Unknown digests are not an error.
	ClearRefreshToken(ctx context.Context, tokenHash string) error
}

// NoteRepository stores notes. Every mutation is scoped by owner.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID string, noteID int64) error
}

// ResourceRepository stores saved learning resources. Every mutation is
// scoped by owner.
type ResourceRepository interface {
	CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	ListResources(ctx context.Context, userID string) ([]models.Resource, error)
	UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error)
	DeleteResource(ctx context.Context, userID string, resourceID int64) error
}

// RoadmapRepository manages the shared roadmap catalogue.
type RoadmapRepository interface {
	ListRoadmaps(ctx context.Context) ([]models.Roadmap, error)
	// GetRoadmap returns the roadmap with its levels and tasks in position
	// order, each carrying the status of userID.
	GetRoadmap(ctx context.Context, userID string, roadmapID int64) (models.Roadmap, error)
	CreateRoadmap(ctx context.Context, roadmap models.Roadmap) (models.Roadmap, error)
	UpdateRoadmap(ctx context.Context, update models.RoadmapUpdate) (models.Roadmap, error)
	DeleteRoadmap(ctx context.Context, roadmapID int64) error
}

// ProgressPlanner turns a consistent progress snapshot and a request into
// the writes to perform. It must not have side effects.
type ProgressPlanner func(state models.ProgressState, req models.TaskProgressRequest) (models.ProgressChange, error)

// ProgressRepository persists per-user level and task statuses and the
// user's aggregate XP.
type ProgressRepository interface {
	Enroll(ctx context.Context, userID string, roadmapID int64) error

	// UpdateTaskProgress runs plan inside one transaction holding the user
	// row lock and applies the planned change. It returns the change and the
	// snapshot it was planned against.
	UpdateTaskProgress(ctx context.Context, req models.TaskProgressRequest, plan ProgressPlanner) (models.ProgressChange, models.ProgressState, error)

	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error)
	GetRoadmapProgress(ctx context.Context, userID string) ([]models.RoadmapProgress, error)
}

// StatsRepository computes dashboard aggregates on demand.
type StatsRepository interface {
	GetTaskCounts(ctx context.Context, userID string) (models.TaskCounts, error)
	GetStreak(ctx context.Context, userID string) (models.Streak, error)
}

// InterestRepository reads learning interests.
type InterestRepository interface {
	ListInterests(ctx context.Context, userID string) ([]models.Interest, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
