// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/models"
)

type statsService struct {
	userRepository  store.UserRepository
	statsRepository store.StatsRepository

	logger *logger.Logger
}

func NewStatsService(userRepository store.UserRepository, statsRepository store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{
		userRepository:  userRepository,
		statsRepository: statsRepository,
		logger:          logger,
	}
}

// GetUserStats reads the user, the task counters and the streak and
// combines them. Every call hits the database.
func (s *statsService) GetUserStats(ctx context.Context, userID string) (models.UserStats, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("error getting user: %w", err)
	}

	counts, err := s.statsRepository.GetTaskCounts(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("error counting tasks: %w", err)
	}

	streak, err := s.statsRepository.GetStreak(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("error getting streak: %w", err)
	}

	level := models.LevelForXP(user.CurrentXP)

	return models.UserStats{
		User: models.UserSummary{
			UserID:       user.UserID,
			Name:         user.Name,
			Email:        user.Email,
			CurrentLevel: level.Level,
			CurrentXP:    user.CurrentXP,
			LevelTitle:   level.Title,
			CreatedAt:    user.CreatedAt,
		},
		Tasks:                counts,
		CompletionPercentage: models.CompletionPercentage(counts.Completed, counts.Total),
		TotalXP:              counts.TotalXP,
		Streak:               streak,
	}, nil
}
