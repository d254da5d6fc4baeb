// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

type statsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStatsRepository constructs a [StatsRepository] backed by db.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetTaskCounts counts the user's tasks per status and sums the XP of the
// completed ones.
func (r *statsRepository) GetTaskCounts(ctx context.Context, userID string) (models.TaskCounts, error) {
	query, args, err := buildTaskCounts(userID)
	if err != nil {
		return models.TaskCounts{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var counts models.TaskCounts
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&counts.Total,
		&counts.Completed,
		&counts.InProgress,
		&counts.Pending,
		&counts.TotalXP,
	); err != nil {
		r.db.logQueryError(ctx, err, "*statsRepository.GetTaskCounts", "error counting tasks")
		return models.TaskCounts{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return counts, nil
}

// GetStreak returns the user's streak counters; a user without a streak row
// has zero streaks.
func (r *statsRepository) GetStreak(ctx context.Context, userID string) (models.Streak, error) {
	var streak models.Streak
	err := r.db.QueryRowContext(ctx, getStreak, userID).Scan(&streak.CurrentStreakDays, &streak.LongestStreakDays)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Streak{}, nil
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*statsRepository.GetStreak", "error getting streak")
		return models.Streak{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return streak, nil
}
