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

// progressRepository is the PostgreSQL-backed implementation of
// [ProgressRepository].
//
// Every mutation runs in a single transaction that first locks the user row,
// so concurrent mutations of one user are serialised and an XP credit is
// never applied twice.
type progressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProgressRepository constructs a [ProgressRepository] backed by db.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// Enroll creates the user's level and task rows of a roadmap. Rows that
// already exist are left as they are.
func (r *progressRepository) Enroll(ctx context.Context, userID string, roadmapID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.Enroll").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, roadmapExists, roadmapID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRoadmapNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.Enroll", "error checking roadmap")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = r.enroll(ctx, tx, userID, roadmapID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*progressRepository.Enroll").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *progressRepository) enroll(ctx context.Context, tx *sql.Tx, userID string, roadmapID int64) error {
	if _, err := tx.ExecContext(ctx, enrollLevels, userID, roadmapID); err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.enroll", "error enrolling levels")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err := tx.ExecContext(ctx, enrollTasks, userID, roadmapID); err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.enroll", "error enrolling tasks")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpdateTaskProgress locks the user, enrolls them into the task's roadmap if
// needed, loads the progress snapshot, asks plan for the change and writes
// it. Errors returned by plan are passed through unchanged and nothing is
// written.
func (r *progressRepository) UpdateTaskProgress(ctx context.Context, req models.TaskProgressRequest, plan ProgressPlanner) (models.ProgressChange, models.ProgressState, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*progressRepository.UpdateTaskProgress").
		Str("user_id", req.UserID).
		Int64("task_id", req.TaskID).
		Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return models.ProgressChange{}, models.ProgressState{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	state := models.ProgressState{UserID: req.UserID}

	err = tx.QueryRowContext(ctx, lockUserProgress, req.UserID).Scan(&state.CurrentXP)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProgressChange{}, models.ProgressState{}, ErrUserNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.UpdateTaskProgress", "error locking user")
		return models.ProgressChange{}, models.ProgressState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err = tx.QueryRowContext(ctx, findTaskRoadmap, req.TaskID).Scan(&state.RoadmapID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProgressChange{}, models.ProgressState{}, ErrTaskNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.UpdateTaskProgress", "error finding task roadmap")
		return models.ProgressChange{}, models.ProgressState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = r.enroll(ctx, tx, req.UserID, state.RoadmapID); err != nil {
		return models.ProgressChange{}, models.ProgressState{}, err
	}

	if state.Levels, err = r.loadLevels(ctx, tx, req.UserID, state.RoadmapID); err != nil {
		return models.ProgressChange{}, models.ProgressState{}, err
	}

	change, err := plan(state, req)
	if err != nil {
		return models.ProgressChange{}, state, err
	}
	if change.Noop {
		log.Debug().Msg("progress already applied")
		return change, state, nil
	}

	if err = r.applyChange(ctx, tx, req.UserID, change); err != nil {
		return models.ProgressChange{}, state, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return models.ProgressChange{}, state, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("task_status", string(change.TaskTo)).
		Int64("xp_delta", change.XPDelta).
		Int64("current_xp", change.NewXP).
		Msg("task progress updated")

	return change, state, nil
}

// loadLevels reads the user's levels of a roadmap with their tasks, both in
// position order.
func (r *progressRepository) loadLevels(ctx context.Context, tx *sql.Tx, userID string, roadmapID int64) ([]models.LevelState, error) {
	rows, err := tx.QueryContext(ctx, loadProgressState, userID, roadmapID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.loadLevels", "error loading progress")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	levels := make([]models.LevelState, 0)
	for rows.Next() {
		var (
			level        models.LevelState
			taskID       sql.NullInt64
			taskPosition sql.NullInt64
			xpReward     sql.NullInt64
			taskStatus   string
		)
		if err = rows.Scan(
			&level.LevelID,
			&level.Position,
			&level.Status,
			&taskID,
			&taskPosition,
			&xpReward,
			&taskStatus,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if n := len(levels); n == 0 || levels[n-1].LevelID != level.LevelID {
			levels = append(levels, level)
		}
		if !taskID.Valid {
			continue
		}

		last := &levels[len(levels)-1]
		last.Tasks = append(last.Tasks, models.TaskState{
			TaskID:   taskID.Int64,
			Position: int(taskPosition.Int64),
			XPReward: xpReward.Int64,
			Status:   models.TaskStatus(taskStatus),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return levels, nil
}

// applyChange writes a planned change. Every status write is conditional on
// the status the change was planned against.
func (r *progressRepository) applyChange(ctx context.Context, tx *sql.Tx, userID string, change models.ProgressChange) error {
	query, args, err := buildTaskStatusUpdate(userID, change.TaskID, change.TaskFrom, change.TaskTo)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = r.execConditional(ctx, tx, query, args...); err != nil {
		return err
	}

	for _, transition := range change.Levels {
		if err = r.execConditional(ctx, tx, updateLevelStatus,
			transition.To,
			userID,
			transition.LevelID,
			transition.From,
		); err != nil {
			return err
		}
	}

	if change.XPDelta == 0 {
		return nil
	}

	if _, err = tx.ExecContext(ctx, updateUserXP, change.NewXP, change.NewLevel, userID); err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.applyChange", "error updating user xp")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *progressRepository) execConditional(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.execConditional", "error writing progress")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrStaleProgress
	}

	return nil
}

// ListTasks returns the user's tasks in enrolled roadmaps.
func (r *progressRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query, args, err := buildTaskList(filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*progressRepository.ListTasks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.ListTasks", "error listing tasks")
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

// GetTask returns one task with the user's status.
func (r *progressRepository) GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error) {
	query, args, err := buildGetTask(userID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.GetTask", "error getting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// GetRoadmapProgress summarises every roadmap the user is enrolled in.
func (r *progressRepository) GetRoadmapProgress(ctx context.Context, userID string) ([]models.RoadmapProgress, error) {
	rows, err := r.db.QueryContext(ctx, getRoadmapProgress, userID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*progressRepository.GetRoadmapProgress", "error getting progress")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	progress := make([]models.RoadmapProgress, 0)
	for rows.Next() {
		var p models.RoadmapProgress
		if err = rows.Scan(
			&p.RoadmapID,
			&p.Title,
			&p.TotalLevels,
			&p.CompletedLevels,
			&p.TotalTasks,
			&p.CompletedTasks,
			&p.EarnedXP,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		p.CompletionPercentage = models.CompletionPercentage(p.CompletedTasks, p.TotalTasks)
		progress = append(progress, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return progress, nil
}
