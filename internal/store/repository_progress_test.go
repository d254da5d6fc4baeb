// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

var progressStateColumns = []string{"level_id", "position", "status", "task_id", "position", "xp_reward", "status"}

// expectProgressSnapshot registers the reads UpdateTaskProgress performs
// before calling the planner.
func expectProgressSnapshot(mock sqlmock.Sqlmock, taskID int64) {
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT current_xp FROM users WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"current_xp"}).AddRow(75))
	mock.ExpectQuery("SELECT l.roadmap_id FROM tasks t").
		WithArgs(taskID).
		WillReturnRows(sqlmock.NewRows([]string{"roadmap_id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO user_levels").
		WithArgs(testUserID, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO user_tasks").
		WithArgs(testUserID, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM levels l\\s+JOIN user_levels ul").
		WithArgs(testUserID, int64(1)).
		WillReturnRows(sqlmock.NewRows(progressStateColumns).
			AddRow(10, 0, "unlocked", 1, 0, 50, "pending").
			AddRow(10, 0, "unlocked", 2, 1, 75, "completed").
			AddRow(20, 1, "locked", 3, 0, 100, "pending").
			AddRow(30, 2, "locked", nil, nil, nil, "pending"))
}

func completionChange() models.ProgressChange {
	return models.ProgressChange{
		TaskID:   1,
		TaskFrom: models.TaskPending,
		TaskTo:   models.TaskCompleted,
		XPDelta:  50,
		NewXP:    125,
		NewLevel: 2,
		Levels: []models.LevelTransition{
			{LevelID: 10, From: models.LevelUnlocked, To: models.LevelCompleted},
			{LevelID: 20, From: models.LevelLocked, To: models.LevelUnlocked},
		},
	}
}

func TestUpdateTaskProgress_AppliesPlannedChange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())
	req := models.TaskProgressRequest{UserID: testUserID, TaskID: 1}

	expectProgressSnapshot(mock, 1)
	mock.ExpectExec("UPDATE user_tasks SET status = \\$1, completed_at = NOW\\(\\), started_at = COALESCE\\(started_at, NOW\\(\\)\\) WHERE").
		WithArgs("completed", "pending", int64(1), testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_levels").
		WithArgs("completed", testUserID, int64(10), "unlocked").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_levels").
		WithArgs("unlocked", testUserID, int64(20), "locked").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users\\s+SET current_xp = \\$1, current_level = \\$2").
		WithArgs(int64(125), 2, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var seen models.ProgressState
	planner := func(state models.ProgressState, r models.TaskProgressRequest) (models.ProgressChange, error) {
		seen = state
		return completionChange(), nil
	}

	change, state, err := repo.UpdateTaskProgress(context.Background(), req, planner)
	require.NoError(t, err)
	assert.Equal(t, int64(50), change.XPDelta)
	assert.Equal(t, seen, state)

	assert.Equal(t, int64(75), seen.CurrentXP)
	assert.Equal(t, int64(1), seen.RoadmapID)
	require.Len(t, seen.Levels, 3)
	assert.Len(t, seen.Levels[0].Tasks, 2)
	assert.Equal(t, models.TaskCompleted, seen.Levels[0].Tasks[1].Status)
	assert.Equal(t, models.LevelLocked, seen.Levels[1].Status)
	assert.Empty(t, seen.Levels[2].Tasks)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTaskProgress_StaleWriteRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	expectProgressSnapshot(mock, 1)
	mock.ExpectExec("UPDATE user_tasks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_levels").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	planner := func(models.ProgressState, models.TaskProgressRequest) (models.ProgressChange, error) {
		return completionChange(), nil
	}

	_, _, err := repo.UpdateTaskProgress(context.Background(), models.TaskProgressRequest{UserID: testUserID, TaskID: 1}, planner)
	assert.ErrorIs(t, err, ErrStaleProgress)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTaskProgress_XPFailureRollsBackStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	expectProgressSnapshot(mock, 1)
	mock.ExpectExec("UPDATE user_tasks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_levels").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_levels").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	planner := func(models.ProgressState, models.TaskProgressRequest) (models.ProgressChange, error) {
		return completionChange(), nil
	}

	_, _, err := repo.UpdateTaskProgress(context.Background(), models.TaskProgressRequest{UserID: testUserID, TaskID: 1}, planner)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTaskProgress_PlannerErrorWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())
	planErr := errors.New("level is locked")

	expectProgressSnapshot(mock, 1)
	mock.ExpectRollback()

	planner := func(models.ProgressState, models.TaskProgressRequest) (models.ProgressChange, error) {
		return models.ProgressChange{}, planErr
	}

	_, _, err := repo.UpdateTaskProgress(context.Background(), models.TaskProgressRequest{UserID: testUserID, TaskID: 1}, planner)
	assert.ErrorIs(t, err, planErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTaskProgress_NoopWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	expectProgressSnapshot(mock, 2)
	mock.ExpectRollback()

	planner := func(models.ProgressState, models.TaskProgressRequest) (models.ProgressChange, error) {
		return models.ProgressChange{TaskID: 2, Noop: true, NewXP: 75, NewLevel: 1}, nil
	}

	change, _, err := repo.UpdateTaskProgress(context.Background(), models.TaskProgressRequest{UserID: testUserID, TaskID: 2}, planner)
	require.NoError(t, err)
	assert.True(t, change.Noop)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTaskProgress_UnknownUserOrTask(t *testing.T) {
	planner := func(models.ProgressState, models.TaskProgressRequest) (models.ProgressChange, error) {
		t.Fatal("planner must not be called")
		return models.ProgressChange{}, nil
	}

	t.Run("user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProgressRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"current_xp"}))
		mock.ExpectRollback()

		_, _, err := repo.UpdateTaskProgress(context.Background(), models.TaskProgressRequest{UserID: testUserID, TaskID: 1}, planner)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("task", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProgressRepository(db, logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"current_xp"}).AddRow(0))
		mock.ExpectQuery("SELECT l.roadmap_id").WillReturnRows(sqlmock.NewRows([]string{"roadmap_id"}))
		mock.ExpectRollback()

		_, _, err := repo.UpdateTaskProgress(context.Background(), models.TaskProgressRequest{UserID: testUserID, TaskID: 99}, planner)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestUpdateTaskProgress_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, _, err := repo.UpdateTaskProgress(context.Background(), models.TaskProgressRequest{UserID: testUserID, TaskID: 1}, nil)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestEnroll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM roadmaps").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec("INSERT INTO user_levels").WithArgs(testUserID, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO user_tasks").WithArgs(testUserID, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectCommit()

	require.NoError(t, repo.Enroll(context.Background(), testUserID, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnroll_UnknownRoadmap(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM roadmaps").WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Enroll(context.Background(), testUserID, 404), ErrRoadmapNotFound)
}

var taskColumns = []string{
	"task_id", "level_id", "roadmap_id", "title", "description", "xp_reward", "position", "status", "completed_at",
}

func TestListTasks_WithStatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	mock.ExpectQuery("FROM user_tasks ut JOIN tasks t (.+) WHERE ut.user_id = \\$1 AND ut.status = \\$2 ORDER BY").
		WithArgs(testUserID, "completed").
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(1, 10, 1, "Install Python", "", 50, 0, "completed", testNow))

	tasks, err := repo.ListTasks(context.Background(), models.TaskFilter{UserID: testUserID, Status: models.TaskCompleted})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.TaskCompleted, tasks[0].Status)
	require.NotNil(t, tasks[0].CompletedAt)
}

func TestGetTask(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery("FROM tasks t").
		WithArgs(testUserID, int64(1)).
		WillReturnRows(sqlmock.NewRows(taskColumns).AddRow(1, 10, 1, "Install Python", "", 50, 0, "pending", nil))
	mock.ExpectQuery("FROM tasks t").
		WithArgs(testUserID, int64(99)).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	task, err := repo.GetTask(ctx, testUserID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Nil(t, task.CompletedAt)

	_, err = repo.GetTask(ctx, testUserID, 99)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestGetRoadmapProgress(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgressRepository(db, logger.Nop())

	mock.ExpectQuery("FROM roadmaps r").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"roadmap_id", "title", "l", "lc", "t", "tc", "xp"}).
			AddRow(1, "Python for Beginners", 3, 1, 7, 3, 225))

	progress, err := repo.GetRoadmapProgress(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 43, progress[0].CompletionPercentage)
	assert.Equal(t, int64(225), progress[0].EarnedXP)
}
