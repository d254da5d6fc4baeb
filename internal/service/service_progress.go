// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/internal/utils"
	"github.com/MKhiriev/go-vmind/internal/validators"
	"github.com/MKhiriev/go-vmind/models"
)

type progressService struct {
	progressRepository store.ProgressRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewProgressService(progressRepository store.ProgressRepository, logger *logger.Logger) ProgressService {
	return &progressService{
		progressRepository: progressRepository,
		validator:          validators.NewRoadmapValidator(),
		logger:             logger,
	}
}

// CompleteTask completes a task for the caller. Completing an already
// completed task succeeds without crediting XP again.
func (s *progressService) CompleteTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error) {
	return s.updateTask(ctx, req, planCompletion)
}

// UncompleteTask reverts a completed task and debits the XP it credited.
func (s *progressService) UncompleteTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error) {
	return s.updateTask(ctx, req, planUncompletion)
}

// StartTask marks a pending task as in progress.
func (s *progressService) StartTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error) {
	return s.updateTask(ctx, req, planStart)
}

func (s *progressService) updateTask(ctx context.Context, req models.TaskProgressRequest, plan store.ProgressPlanner) (models.ProgressResult, error) {
	log := logger.FromContext(ctx)

	req, err := authorizeProgressRequest(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("user_id", req.UserID).Int64("task_id", req.TaskID).Msg("task progress request rejected")
		return models.ProgressResult{}, err
	}

	change, state, err := s.progressRepository.UpdateTaskProgress(ctx, req, plan)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Int64("task_id", req.TaskID).Msg("task progress update failed")
		return models.ProgressResult{}, fmt.Errorf("task progress update failed: %w", err)
	}

	return progressResult(state, change), nil
}

// authorizeProgressRequest binds req to the authenticated caller. A request
// naming another user is forbidden; a request naming nobody acts for the
// caller.
func authorizeProgressRequest(ctx context.Context, req models.TaskProgressRequest) (models.TaskProgressRequest, error) {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return req, ErrUnauthenticated
	}
	if req.UserID != "" && req.UserID != callerID {
		return req, ErrForbidden
	}
	if req.TaskID <= 0 || req.LevelID < 0 {
		return req, ErrInvalidDataProvided
	}

	req.UserID = callerID
	return req, nil
}

// Enroll creates the caller's progress rows for a roadmap. Repeated
// enrollment keeps existing progress.
func (s *progressService) Enroll(ctx context.Context, userID string, roadmapID int64) error {
	if userID == "" || roadmapID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.progressRepository.Enroll(ctx, userID, roadmapID); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Int64("roadmap_id", roadmapID).Msg("enrollment failed")
		return fmt.Errorf("enrollment failed: %w", err)
	}

	return nil
}

func (s *progressService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tasks, err := s.progressRepository.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return tasks, nil
}

func (s *progressService) GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error) {
	if userID == "" || taskID <= 0 {
		return models.Task{}, ErrInvalidDataProvided
	}

	task, err := s.progressRepository.GetTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("error getting task: %w", err)
	}

	return task, nil
}

// GetProgress returns per-roadmap summaries of every roadmap the user is
// enrolled in.
func (s *progressService) GetProgress(ctx context.Context, userID string) ([]models.RoadmapProgress, error) {
	progress, err := s.progressRepository.GetRoadmapProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting progress: %w", err)
	}

	return progress, nil
}
