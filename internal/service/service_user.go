// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/internal/validators"
	"github.com/MKhiriev/go-vmind/models"
)

type userService struct {
	userRepository     store.UserRepository
	interestRepository store.InterestRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, interestRepository store.InterestRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:     userRepository,
		interestRepository: interestRepository,
		validator:          validators.NewUserValidator(),
		logger:             logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting profile: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the present fields of update. An update without any
// recognised field is rejected with ErrNoFieldsToUpdate.
func (s *userService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.UpdateProfile(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", update.UserID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}

func (s *userService) GetInterests(ctx context.Context, userID string) ([]models.Interest, error) {
	interests, err := s.interestRepository.ListInterests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing interests: %w", err)
	}

	return interests, nil
}
