// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LevelStatus is the per-user state of a level.
type LevelStatus string

const (
	LevelLocked    LevelStatus = "locked"
	LevelUnlocked  LevelStatus = "unlocked"
	LevelCompleted LevelStatus = "completed"
)

// TaskStatus is the per-user state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Difficulty of a roadmap.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Roadmap is a named curriculum made of ordered levels.
// Level order is fixed when the roadmap is created.
type Roadmap struct {
	RoadmapID   int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Topic       string     `json:"topic"`
	Difficulty  Difficulty `json:"difficulty"`
	CreatedAt   time.Time  `json:"created_at"`

	// LevelCount and TaskCount are filled by list queries.
	LevelCount int `json:"level_count"`
	TaskCount  int `json:"task_count"`

	Levels []Level `json:"levels,omitempty"`
}

// Level gates a set of tasks. Status is the caller's status.
type Level struct {
	LevelID     int64       `json:"id"`
	RoadmapID   int64       `json:"roadmap_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Position    int         `json:"position"`
	Status      LevelStatus `json:"status"`
	Tasks       []Task      `json:"tasks"`
}

// Task is the atomic unit of completable work. Status is the caller's status.
type Task struct {
	TaskID      int64      `json:"id"`
	LevelID     int64      `json:"level_id"`
	RoadmapID   int64      `json:"roadmap_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	XPReward    int64      `json:"xp_reward"`
	Position    int        `json:"position"`
	Status      TaskStatus `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RoadmapUpdate carries the mutable roadmap metadata. Nil fields are left untouched.
type RoadmapUpdate struct {
	RoadmapID   int64       `json:"-"`
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Topic       *string     `json:"topic,omitempty"`
	Difficulty  *Difficulty `json:"difficulty,omitempty"`
}

// IsEmpty reports whether no recognized field is present.
func (r RoadmapUpdate) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Topic == nil && r.Difficulty == nil
}

// TaskFilter narrows a task listing. Zero values disable the filter.
type TaskFilter struct {
	UserID    string
	RoadmapID int64
	LevelID   int64
	Status    TaskStatus
}

// RoadmapProgress summarises a user's progress in one enrolled roadmap.
type RoadmapProgress struct {
	RoadmapID            int64  `json:"roadmap_id"`
	Title                string `json:"title"`
	TotalLevels          int    `json:"total_levels"`
	CompletedLevels      int    `json:"completed_levels"`
	TotalTasks           int    `json:"total_tasks"`
	CompletedTasks       int    `json:"completed_tasks"`
	EarnedXP             int64  `json:"earned_xp"`
	CompletionPercentage int    `json:"completion_percentage"`
}
