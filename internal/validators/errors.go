// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidID         = errors.New("invalid ID")
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidEmail      = errors.New("a valid email is required")
	ErrInvalidUsername   = errors.New("username must be 3-50 characters without spaces")
	ErrInvalidPassword   = errors.New("password must be at least 6 characters")
	ErrEmptyPassword     = errors.New("password is required")
	ErrFieldTooLong      = errors.New("field is too long")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyContent      = errors.New("content is required")
	ErrInvalidTags       = errors.New("tags must be non-empty and at most 50 characters")
	ErrEmptyResourceType = errors.New("resource type is required")
	ErrInvalidLink       = errors.New("link must be an absolute http(s) URL")
	ErrInvalidDuration   = errors.New("duration must not be negative")
	ErrInvalidDifficulty = errors.New("difficulty must be beginner, intermediate or advanced")
	ErrNoLevels          = errors.New("roadmap must have at least one level")
	ErrNoTasks           = errors.New("level must have at least one task")
	ErrInvalidXPReward   = errors.New("task xp reward must be positive")
	ErrInvalidStatus     = errors.New("invalid task status")
)
