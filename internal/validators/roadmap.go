// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/models"
)

// RoadmapValidator validates catalogue input and task filters.
type RoadmapValidator struct{}

func NewRoadmapValidator() Validator {
	return &RoadmapValidator{}
}

func (v *RoadmapValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RoadmapRequest:
		return v.validateRoadmapRequest(value, fields...)
	case *models.RoadmapRequest:
		return v.validateRoadmapRequest(*value, fields...)

	case models.RoadmapUpdate:
		return v.validateRoadmapUpdate(value, fields...)
	case *models.RoadmapUpdate:
		return v.validateRoadmapUpdate(*value, fields...)

	case models.TaskFilter:
		return v.validateTaskFilter(value, fields...)
	case *models.TaskFilter:
		return v.validateTaskFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidDifficulty(d models.Difficulty) bool {
	switch d {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
		return true
	}
	return false
}

func (v *RoadmapValidator) validateRoadmapRequest(req models.RoadmapRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDifficulty, FieldLevels}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(req.Title) {
				return ErrEmptyTitle
			}
			if tooLong(req.Title, maxShortText) {
				return ErrFieldTooLong
			}
		case FieldDifficulty:
			if !isValidDifficulty(req.Difficulty) {
				return ErrInvalidDifficulty
			}
		case FieldLevels:
			if len(req.Levels) == 0 {
				return ErrNoLevels
			}
			for i, level := range req.Levels {
				if err := validateLevelRequest(level); err != nil {
					return fmt.Errorf("validation error at level %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLevelRequest(level models.LevelRequest) error {
	if isBlank(level.Title) {
		return ErrEmptyTitle
	}
	if len(level.Tasks) == 0 {
		return ErrNoTasks
	}
	for j, task := range level.Tasks {
		if isBlank(task.Title) {
			return fmt.Errorf("task %d: %w", j, ErrEmptyTitle)
		}
		if task.XPReward <= 0 {
			return fmt.Errorf("task %d: %w", j, ErrInvalidXPReward)
		}
	}
	return nil
}

func (v *RoadmapValidator) validateRoadmapUpdate(update models.RoadmapUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldAnyUpdate, FieldTitle, FieldDifficulty}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.RoadmapID <= 0 {
				return ErrInvalidID
			}
		case FieldAnyUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil && isBlank(*update.Title) {
				return ErrEmptyTitle
			}
			if err := checkOptionalText(update.Title, maxShortText); err != nil {
				return err
			}
		case FieldDifficulty:
			if update.Difficulty != nil && !isValidDifficulty(*update.Difficulty) {
				return ErrInvalidDifficulty
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RoadmapValidator) validateTaskFilter(filter models.TaskFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if filter.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldStatus:
			switch filter.Status {
			case "", models.TaskPending, models.TaskInProgress, models.TaskCompleted:
			default:
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
