// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Resource is a saved learning link (video, article, course...) owned by one user.
type Resource struct {
	ResourceID      int64     `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Link            string    `json:"link"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	SavedAt         time.Time `json:"saved_at"`
}

// ResourceUpdate carries a partial resource update. Nil fields are left untouched.
type ResourceUpdate struct {
	ResourceID      int64   `json:"-"`
	UserID          string  `json:"-"`
	Title           *string `json:"title,omitempty"`
	Type            *string `json:"type,omitempty"`
	Link            *string `json:"link,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// IsEmpty reports whether no recognized field is present.
func (r ResourceUpdate) IsEmpty() bool {
	return r.Title == nil && r.Type == nil && r.Link == nil && r.DurationMinutes == nil
}
