// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TaskProgressRequest identifies a task mutation requested by a user.
// LevelID is optional; zero means "the level the task belongs to".
type TaskProgressRequest struct {
	UserID  string `json:"user_id,omitempty"`
	LevelID int64  `json:"level_id,omitempty"`
	TaskID  int64  `json:"-"`
}

// TaskState is the per-user state of a task as seen inside a progress transaction.
type TaskState struct {
	TaskID   int64
	Position int
	XPReward int64
	Status   TaskStatus
}

// LevelState is the per-user state of a level with its tasks in position order.
type LevelState struct {
	LevelID  int64
	Position int
	Status   LevelStatus
	Tasks    []TaskState
}

// ProgressState is a consistent snapshot of a user's progress in one roadmap,
// read while the user row is locked.
type ProgressState struct {
	UserID    string
	RoadmapID int64
	CurrentXP int64

	// Levels are ordered by position.
	Levels []LevelState
}

// LevelTransition moves one level from one status to another.
type LevelTransition struct {
	LevelID int64
	From    LevelStatus
	To      LevelStatus
}

// ProgressChange is the set of writes produced by planning a task mutation.
type ProgressChange struct {
	TaskID   int64
	TaskFrom TaskStatus
	TaskTo   TaskStatus

	// XPDelta is added to the user's aggregate XP.
	XPDelta int64

	// NewXP and NewLevel are the user's aggregate values after the change.
	NewXP    int64
	NewLevel int

	Levels []LevelTransition

	// Noop marks an idempotent request: nothing must be written.
	Noop bool
}

// ProgressResult is returned to the caller after a task mutation.
type ProgressResult struct {
	TaskID         int64       `json:"task_id"`
	LevelID        int64       `json:"level_id"`
	TaskStatus     TaskStatus  `json:"task_status"`
	LevelStatus    LevelStatus `json:"level_status"`
	UnlockedLevel  *int64      `json:"unlocked_level_id,omitempty"`
	XPDelta        int64       `json:"xp_delta"`
	CurrentXP      int64       `json:"current_xp"`
	CurrentLevel   int         `json:"current_level"`
	AlreadyApplied bool        `json:"already_applied"`
}
