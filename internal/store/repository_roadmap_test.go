// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

var roadmapColumns = []string{"roadmap_id", "title", "description", "topic", "difficulty", "created_at"}

func TestRoadmapRepository_ListRoadmaps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoadmapRepository(db, logger.Nop())

	mock.ExpectQuery("FROM roadmaps r\\s+LEFT JOIN levels").
		WillReturnRows(sqlmock.NewRows(append(roadmapColumns, "levels", "tasks")).
			AddRow(1, "Python for Beginners", "d", "Programming", "beginner", testNow, 3, 7))

	roadmaps, err := repo.ListRoadmaps(context.Background())
	require.NoError(t, err)
	require.Len(t, roadmaps, 1)
	assert.Equal(t, models.DifficultyBeginner, roadmaps[0].Difficulty)
	assert.Equal(t, 3, roadmaps[0].LevelCount)
	assert.Equal(t, 7, roadmaps[0].TaskCount)
}

func TestRoadmapRepository_GetRoadmap_GroupsTasksByLevel(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoadmapRepository(db, logger.Nop())

	mock.ExpectQuery("FROM roadmaps\\s+WHERE roadmap_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(roadmapColumns).AddRow(1, "Python for Beginners", "d", "Programming", "beginner", testNow))
	mock.ExpectQuery("FROM levels l\\s+LEFT JOIN user_levels").
		WithArgs(testUserID, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"level_id", "roadmap_id", "title", "description", "position", "status"}).
			AddRow(10, 1, "Basics", "", 0, "unlocked").
			AddRow(20, 1, "Control Flow", "", 1, "locked"))
	mock.ExpectQuery("FROM tasks t\\s+JOIN levels l").
		WithArgs(testUserID, int64(1)).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(1, 10, 1, "Install Python", "", 50, 0, "completed", testNow).
			AddRow(2, 10, 1, "Variables", "", 75, 1, "pending", nil).
			AddRow(4, 20, 1, "If statements", "", 100, 0, "pending", nil))

	roadmap, err := repo.GetRoadmap(context.Background(), testUserID, 1)
	require.NoError(t, err)
	require.Len(t, roadmap.Levels, 2)
	assert.Len(t, roadmap.Levels[0].Tasks, 2)
	assert.Len(t, roadmap.Levels[1].Tasks, 1)
	assert.Equal(t, models.LevelLocked, roadmap.Levels[1].Status)
	assert.Equal(t, models.TaskCompleted, roadmap.Levels[0].Tasks[0].Status)
	assert.Equal(t, 3, roadmap.TaskCount)
}

func TestRoadmapRepository_GetRoadmap_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoadmapRepository(db, logger.Nop())

	mock.ExpectQuery("FROM roadmaps").WillReturnRows(sqlmock.NewRows(roadmapColumns))

	_, err := repo.GetRoadmap(context.Background(), testUserID, 404)
	assert.ErrorIs(t, err, ErrRoadmapNotFound)
}

func TestRoadmapRepository_CreateRoadmap(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoadmapRepository(db, logger.Nop())

	roadmap := models.RoadmapRequest{
		Title:      "Go",
		Difficulty: models.DifficultyIntermediate,
		Levels: []models.LevelRequest{
			{Title: "Basics", Tasks: []models.TaskRequest{{Title: "vars", XPReward: 10}, {Title: "funcs", XPReward: 20}}},
			{Title: "Concurrency", Tasks: []models.TaskRequest{{Title: "channels", XPReward: 30}}},
		},
	}.ToRoadmap()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO roadmaps").
		WithArgs("Go", "", "", "intermediate").
		WillReturnRows(sqlmock.NewRows([]string{"roadmap_id", "created_at"}).AddRow(5, testNow))
	mock.ExpectQuery("INSERT INTO levels").WithArgs(int64(5), "Basics", "", 0).
		WillReturnRows(sqlmock.NewRows([]string{"level_id"}).AddRow(50))
	mock.ExpectQuery("INSERT INTO tasks").WithArgs(int64(50), "vars", "", int64(10), 0).
		WillReturnRows(sqlmock.NewRows([]string{"task_id"}).AddRow(500))
	mock.ExpectQuery("INSERT INTO tasks").WithArgs(int64(50), "funcs", "", int64(20), 1).
		WillReturnRows(sqlmock.NewRows([]string{"task_id"}).AddRow(501))
	mock.ExpectQuery("INSERT INTO levels").WithArgs(int64(5), "Concurrency", "", 1).
		WillReturnRows(sqlmock.NewRows([]string{"level_id"}).AddRow(51))
	mock.ExpectQuery("INSERT INTO tasks").WithArgs(int64(51), "channels", "", int64(30), 0).
		WillReturnRows(sqlmock.NewRows([]string{"task_id"}).AddRow(502))
	mock.ExpectCommit()

	created, err := repo.CreateRoadmap(context.Background(), roadmap)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.RoadmapID)
	assert.Equal(t, int64(51), created.Levels[1].LevelID)
	assert.Equal(t, int64(502), created.Levels[1].Tasks[0].TaskID)
	assert.Equal(t, int64(5), created.Levels[1].Tasks[0].RoadmapID)
	assert.Equal(t, 3, created.TaskCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoadmapRepository_CreateRoadmap_RollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoadmapRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO roadmaps").
		WillReturnRows(sqlmock.NewRows([]string{"roadmap_id", "created_at"}).AddRow(5, testNow))
	mock.ExpectQuery("INSERT INTO levels").WillReturnError(pgError("23514", "tasks_xp_reward_check"))
	mock.ExpectRollback()

	_, err := repo.CreateRoadmap(context.Background(), models.Roadmap{Title: "x", Levels: []models.Level{{Title: "l"}}})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoadmapRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoadmapRepository(db, logger.Nop())
	ctx := context.Background()
	title := "Python 3"

	mock.ExpectQuery("UPDATE roadmaps SET title = \\$1 WHERE roadmap_id = \\$2").
		WithArgs(title, int64(1)).
		WillReturnRows(sqlmock.NewRows(roadmapColumns).AddRow(1, title, "d", "Programming", "beginner", testNow))
	mock.ExpectQuery("UPDATE roadmaps").WillReturnRows(sqlmock.NewRows(roadmapColumns))
	mock.ExpectExec("DELETE FROM roadmaps").WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM roadmaps").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateRoadmap(ctx, models.RoadmapUpdate{RoadmapID: 1, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	_, err = repo.UpdateRoadmap(ctx, models.RoadmapUpdate{RoadmapID: 2, Title: &title})
	assert.ErrorIs(t, err, ErrRoadmapNotFound)

	require.NoError(t, repo.DeleteRoadmap(ctx, 1))
	assert.ErrorIs(t, repo.DeleteRoadmap(ctx, 2), ErrRoadmapNotFound)
}
