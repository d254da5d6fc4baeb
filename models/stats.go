// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// TaskCounts aggregates a user's task statuses.
type TaskCounts struct {
	Total      int   `json:"total"`
	Completed  int   `json:"completed"`
	InProgress int   `json:"in_progress"`
	Pending    int   `json:"pending"`
	TotalXP    int64 `json:"total_xp"`
}

// Streak is the per-user consecutive-day activity counter.
type Streak struct {
	CurrentStreakDays int `json:"current_streak_days"`
	LongestStreakDays int `json:"longest_streak_days"`
}

// UserSummary is the public part of a user shown on the dashboard.
type UserSummary struct {
	UserID       string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CurrentLevel int       `json:"current_level"`
	CurrentXP    int64     `json:"current_xp"`
	LevelTitle   string    `json:"level_title"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStats is the dashboard aggregate returned by GET /api/users/stats.
type UserStats struct {
	User                 UserSummary `json:"user"`
	Tasks                TaskCounts  `json:"tasks"`
	CompletionPercentage int         `json:"completion_percentage"`
	TotalXP              int64       `json:"total_xp"`
	Streak               Streak      `json:"streak"`
}

// CompletionPercentage returns round(completed/total*100), or 0 when total is 0.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}
