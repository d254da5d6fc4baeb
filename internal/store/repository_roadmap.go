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

// roadmapRepository is the PostgreSQL-backed implementation of [RoadmapRepository].
type roadmapRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoadmapRepository constructs a [RoadmapRepository] backed by db.
func NewRoadmapRepository(db *DB, logger *logger.Logger) RoadmapRepository {
	logger.Debug().Msg("creating roadmap repository")
	return &roadmapRepository{
		db:     db,
		logger: logger,
	}
}

func scanRoadmap(row rowScanner) (models.Roadmap, error) {
	var roadmap models.Roadmap
	err := row.Scan(
		&roadmap.RoadmapID,
		&roadmap.Title,
		&roadmap.Description,
		&roadmap.Topic,
		&roadmap.Difficulty,
		&roadmap.CreatedAt,
	)
	return roadmap, err
}

func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.TaskID,
		&task.LevelID,
		&task.RoadmapID,
		&task.Title,
		&task.Description,
		&task.XPReward,
		&task.Position,
		&task.Status,
		&task.CompletedAt,
	)
	return task, err
}

// ListRoadmaps returns the catalogue with level and task counts.
func (r *roadmapRepository) ListRoadmaps(ctx context.Context) ([]models.Roadmap, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRoadmaps)
	if err != nil {
		r.db.logQueryError(ctx, err, "*roadmapRepository.ListRoadmaps", "error listing roadmaps")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roadmaps := make([]models.Roadmap, 0)
	for rows.Next() {
		var roadmap models.Roadmap
		if err = rows.Scan(
			&roadmap.RoadmapID,
			&roadmap.Title,
			&roadmap.Description,
			&roadmap.Topic,
			&roadmap.Difficulty,
			&roadmap.CreatedAt,
			&roadmap.LevelCount,
			&roadmap.TaskCount,
		); err != nil {
			log.Err(err).Str("func", "*roadmapRepository.ListRoadmaps").Msg("error scanning roadmap")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		roadmaps = append(roadmaps, roadmap)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roadmaps, nil
}

// GetRoadmap loads a roadmap with its ordered levels and tasks, each
// carrying the status of userID.
func (r *roadmapRepository) GetRoadmap(ctx context.Context, userID string, roadmapID int64) (models.Roadmap, error) {
	roadmap, err := scanRoadmap(r.db.QueryRowContext(ctx, getRoadmap, roadmapID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Roadmap{}, ErrRoadmapNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*roadmapRepository.GetRoadmap", "error getting roadmap")
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	levels, err := r.getLevels(ctx, userID, roadmapID)
	if err != nil {
		return models.Roadmap{}, err
	}

	tasks, err := r.getTasks(ctx, userID, roadmapID)
	if err != nil {
		return models.Roadmap{}, err
	}

	index := make(map[int64]int, len(levels))
	for i, level := range levels {
		index[level.LevelID] = i
	}
	for _, task := range tasks {
		if i, ok := index[task.LevelID]; ok {
			levels[i].Tasks = append(levels[i].Tasks, task)
		}
	}

	roadmap.Levels = levels
	roadmap.LevelCount = len(levels)
	roadmap.TaskCount = len(tasks)

	return roadmap, nil
}

func (r *roadmapRepository) getLevels(ctx context.Context, userID string, roadmapID int64) ([]models.Level, error) {
	rows, err := r.db.QueryContext(ctx, getRoadmapLevels, userID, roadmapID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*roadmapRepository.getLevels", "error getting levels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	levels := make([]models.Level, 0)
	for rows.Next() {
		level := models.Level{Tasks: make([]models.Task, 0)}
		if err = rows.Scan(
			&level.LevelID,
			&level.RoadmapID,
			&level.Title,
			&level.Description,
			&level.Position,
			&level.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		levels = append(levels, level)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return levels, nil
}

func (r *roadmapRepository) getTasks(ctx context.Context, userID string, roadmapID int64) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, getRoadmapTasks, userID, roadmapID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*roadmapRepository.getTasks", "error getting tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// CreateRoadmap inserts a roadmap with its levels and tasks in one
// transaction. Positions are taken from the input as they are.
func (r *roadmapRepository) CreateRoadmap(ctx context.Context, roadmap models.Roadmap) (models.Roadmap, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*roadmapRepository.CreateRoadmap").Msg("error beginning transaction")
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, createRoadmap,
		roadmap.Title,
		roadmap.Description,
		roadmap.Topic,
		roadmap.Difficulty,
	).Scan(&roadmap.RoadmapID, &roadmap.CreatedAt); err != nil {
		r.db.logQueryError(ctx, err, "*roadmapRepository.CreateRoadmap", "error inserting roadmap")
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	taskCount := 0
	for i := range roadmap.Levels {
		level := &roadmap.Levels[i]
		level.RoadmapID = roadmap.RoadmapID

		if err = tx.QueryRowContext(ctx, createLevel,
			roadmap.RoadmapID,
			level.Title,
			level.Description,
			level.Position,
		).Scan(&level.LevelID); err != nil {
			r.db.logQueryError(ctx, err, "*roadmapRepository.CreateRoadmap", "error inserting level")
			return models.Roadmap{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for j := range level.Tasks {
			task := &level.Tasks[j]
			task.LevelID = level.LevelID
			task.RoadmapID = roadmap.RoadmapID

			if err = tx.QueryRowContext(ctx, createTask,
				level.LevelID,
				task.Title,
				task.Description,
				task.XPReward,
				task.Position,
			).Scan(&task.TaskID); err != nil {
				r.db.logQueryError(ctx, err, "*roadmapRepository.CreateRoadmap", "error inserting task")
				return models.Roadmap{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
			taskCount++
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*roadmapRepository.CreateRoadmap").Msg("error committing transaction")
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	roadmap.LevelCount = len(roadmap.Levels)
	roadmap.TaskCount = taskCount

	return roadmap, nil
}

// UpdateRoadmap changes the roadmap metadata.
func (r *roadmapRepository) UpdateRoadmap(ctx context.Context, update models.RoadmapUpdate) (models.Roadmap, error) {
	query, args, err := buildRoadmapUpdate(update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roadmapRepository.UpdateRoadmap").Msg("error building update query")
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	roadmap, err := scanRoadmap(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Roadmap{}, ErrRoadmapNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*roadmapRepository.UpdateRoadmap", "error updating roadmap")
		return models.Roadmap{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return roadmap, nil
}

// DeleteRoadmap removes a roadmap. Levels, tasks and every user's progress
// in it are removed by cascade.
func (r *roadmapRepository) DeleteRoadmap(ctx context.Context, roadmapID int64) error {
	result, err := r.db.ExecContext(ctx, deleteRoadmap, roadmapID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*roadmapRepository.DeleteRoadmap", "error deleting roadmap")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRoadmapNotFound
	}

	return nil
}
