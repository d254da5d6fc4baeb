// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/internal/validators"
	"github.com/MKhiriev/go-vmind/models"
)

type roadmapService struct {
	roadmapRepository store.RoadmapRepository
	userRepository    store.UserRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewRoadmapService(roadmapRepository store.RoadmapRepository, userRepository store.UserRepository, logger *logger.Logger) RoadmapService {
	return &roadmapService{
		roadmapRepository: roadmapRepository,
		userRepository:    userRepository,
		validator:         validators.NewRoadmapValidator(),
		logger:            logger,
	}
}

func (s *roadmapService) List(ctx context.Context) ([]models.Roadmap, error) {
	roadmaps, err := s.roadmapRepository.ListRoadmaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing roadmaps: %w", err)
	}

	return roadmaps, nil
}

// Get returns a roadmap with the level and task statuses of userID.
func (s *roadmapService) Get(ctx context.Context, userID string, roadmapID int64) (models.Roadmap, error) {
	if roadmapID <= 0 {
		return models.Roadmap{}, ErrInvalidDataProvided
	}

	roadmap, err := s.roadmapRepository.GetRoadmap(ctx, userID, roadmapID)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("error getting roadmap: %w", err)
	}

	return roadmap, nil
}

// Create adds a roadmap. Levels and tasks keep the order of the request;
// that order can not be changed later.
func (s *roadmapService) Create(ctx context.Context, userID string, req models.RoadmapRequest) (models.Roadmap, error) {
	log := logger.FromContext(ctx)

	if err := s.requireAdmin(ctx, userID); err != nil {
		return models.Roadmap{}, err
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	roadmap, err := s.roadmapRepository.CreateRoadmap(ctx, req.ToRoadmap())
	if err != nil {
		log.Err(err).Str("title", req.Title).Msg("roadmap creation failed")
		return models.Roadmap{}, fmt.Errorf("roadmap creation failed: %w", err)
	}

	log.Info().Int64("roadmap_id", roadmap.RoadmapID).Str("admin_id", userID).Msg("roadmap created")
	return roadmap, nil
}

// Update changes roadmap metadata only.
func (s *roadmapService) Update(ctx context.Context, userID string, update models.RoadmapUpdate) (models.Roadmap, error) {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return models.Roadmap{}, err
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	roadmap, err := s.roadmapRepository.UpdateRoadmap(ctx, update)
	if err != nil {
		return models.Roadmap{}, fmt.Errorf("roadmap update failed: %w", err)
	}

	return roadmap, nil
}

// Delete removes a roadmap with its levels, tasks and per-user statuses.
// XP already credited to users is kept.
func (s *roadmapService) Delete(ctx context.Context, userID string, roadmapID int64) error {
	if err := s.requireAdmin(ctx, userID); err != nil {
		return err
	}
	if roadmapID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.roadmapRepository.DeleteRoadmap(ctx, roadmapID); err != nil {
		return fmt.Errorf("roadmap deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("roadmap_id", roadmapID).Str("admin_id", userID).Msg("roadmap deleted")
	return nil
}

func (s *roadmapService) requireAdmin(ctx context.Context, userID string) error {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("error checking role: %w", err)
	}
	if !user.IsAdmin() {
		logger.FromContext(ctx).Warn().Str("user_id", userID).Msg("catalogue change by non-admin")
		return ErrForbidden
	}

	return nil
}
