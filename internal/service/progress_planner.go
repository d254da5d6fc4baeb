// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-vmind/models"

// The planners below are pure functions of a progress snapshot. They run
// inside the progress transaction while the user row is locked and must
// not touch storage.

// planCompletion marks a task completed and credits its XP. When the last
// open task of a level is completed the level becomes completed and the
// next level, if locked, is unlocked. Only one level is unlocked per call.
func planCompletion(state models.ProgressState, req models.TaskProgressRequest) (models.ProgressChange, error) {
	levelIdx, task, err := locateRequestedTask(state, req)
	if err != nil {
		return models.ProgressChange{}, err
	}

	level := state.Levels[levelIdx]
	if level.Status == models.LevelLocked {
		return models.ProgressChange{}, ErrNotFound
	}
	if task.Status == models.TaskCompleted {
		return noopChange(state, task), nil
	}

	change := models.ProgressChange{
		TaskID:   task.TaskID,
		TaskFrom: task.Status,
		TaskTo:   models.TaskCompleted,
		XPDelta:  task.XPReward,
		NewXP:    state.CurrentXP + task.XPReward,
	}
	change.NewLevel = models.LevelForXP(change.NewXP).Level

	if level.Status == models.LevelCompleted || !othersCompleted(level, task.TaskID) {
		return change, nil
	}

	change.Levels = append(change.Levels, models.LevelTransition{
		LevelID: level.LevelID,
		From:    level.Status,
		To:      models.LevelCompleted,
	})

	if levelIdx+1 < len(state.Levels) {
		next := state.Levels[levelIdx+1]
		if next.Status == models.LevelLocked {
			change.Levels = append(change.Levels, models.LevelTransition{
				LevelID: next.LevelID,
				From:    models.LevelLocked,
				To:      models.LevelUnlocked,
			})
		}
	}

	return change, nil
}

// planUncompletion reverts a completed task to pending and takes back exactly
// the XP of the task. A completed level falls back to unlocked; levels
// unlocked after it stay unlocked.
func planUncompletion(state models.ProgressState, req models.TaskProgressRequest) (models.ProgressChange, error) {
	levelIdx, task, err := locateRequestedTask(state, req)
	if err != nil {
		return models.ProgressChange{}, err
	}
	if task.Status != models.TaskCompleted {
		return noopChange(state, task), nil
	}

	change := models.ProgressChange{
		TaskID:   task.TaskID,
		TaskFrom: models.TaskCompleted,
		TaskTo:   models.TaskPending,
		XPDelta:  -task.XPReward,
		NewXP:    state.CurrentXP - task.XPReward,
	}
	change.NewLevel = models.LevelForXP(change.NewXP).Level

	if level := state.Levels[levelIdx]; level.Status == models.LevelCompleted {
		change.Levels = append(change.Levels, models.LevelTransition{
			LevelID: level.LevelID,
			From:    models.LevelCompleted,
			To:      models.LevelUnlocked,
		})
	}

	return change, nil
}

// planStart moves a pending task of an accessible level to in_progress.
func planStart(state models.ProgressState, req models.TaskProgressRequest) (models.ProgressChange, error) {
	levelIdx, task, err := locateRequestedTask(state, req)
	if err != nil {
		return models.ProgressChange{}, err
	}
	if state.Levels[levelIdx].Status == models.LevelLocked {
		return models.ProgressChange{}, ErrNotFound
	}
	if task.Status != models.TaskPending {
		return noopChange(state, task), nil
	}

	return models.ProgressChange{
		TaskID:   task.TaskID,
		TaskFrom: models.TaskPending,
		TaskTo:   models.TaskInProgress,
		NewXP:    state.CurrentXP,
		NewLevel: models.LevelForXP(state.CurrentXP).Level,
	}, nil
}

// locateRequestedTask finds the task of req in state. A level id in req that
// does not own the task is treated as a missing level.
func locateRequestedTask(state models.ProgressState, req models.TaskProgressRequest) (int, models.TaskState, error) {
	levelIdx, task, ok := locateTask(state, req.TaskID)
	if !ok {
		return 0, models.TaskState{}, ErrNotFound
	}
	if req.LevelID != 0 && req.LevelID != state.Levels[levelIdx].LevelID {
		return 0, models.TaskState{}, ErrNotFound
	}

	return levelIdx, task, nil
}

func locateTask(state models.ProgressState, taskID int64) (int, models.TaskState, bool) {
	for i, level := range state.Levels {
		for _, task := range level.Tasks {
			if task.TaskID == taskID {
				return i, task, true
			}
		}
	}

	return -1, models.TaskState{}, false
}

func othersCompleted(level models.LevelState, taskID int64) bool {
	for _, task := range level.Tasks {
		if task.TaskID != taskID && task.Status != models.TaskCompleted {
			return false
		}
	}

	return true
}

func noopChange(state models.ProgressState, task models.TaskState) models.ProgressChange {
	return models.ProgressChange{
		TaskID:   task.TaskID,
		TaskFrom: task.Status,
		TaskTo:   task.Status,
		NewXP:    state.CurrentXP,
		NewLevel: models.LevelForXP(state.CurrentXP).Level,
		Noop:     true,
	}
}

// progressResult describes the outcome of change as seen by the caller.
func progressResult(state models.ProgressState, change models.ProgressChange) models.ProgressResult {
	result := models.ProgressResult{
		TaskID:         change.TaskID,
		TaskStatus:     change.TaskTo,
		XPDelta:        change.XPDelta,
		CurrentXP:      change.NewXP,
		CurrentLevel:   change.NewLevel,
		AlreadyApplied: change.Noop,
	}

	if levelIdx, _, ok := locateTask(state, change.TaskID); ok {
		result.LevelID = state.Levels[levelIdx].LevelID
		result.LevelStatus = state.Levels[levelIdx].Status
	}

	for _, transition := range change.Levels {
		if transition.LevelID == result.LevelID {
			result.LevelStatus = transition.To
		}
		if transition.From == models.LevelLocked && transition.To == models.LevelUnlocked {
			unlocked := transition.LevelID
			result.UnlockedLevel = &unlocked
		}
	}

	return result
}
