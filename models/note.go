// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Note is a rich-text note owned by exactly one user.
type Note struct {
	NoteID    int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      Tags      `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteUpdate carries a partial note update. Nil fields are left untouched.
type NoteUpdate struct {
	NoteID  int64   `json:"-"`
	UserID  string  `json:"-"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Tags    *Tags   `json:"tags,omitempty"`
}

// IsEmpty reports whether no recognized field is present.
func (n NoteUpdate) IsEmpty() bool {
	return n.Title == nil && n.Content == nil && n.Tags == nil
}

// Tags is an ordered tag set stored as a JSONB array.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported source type %T", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return errors.Join(errors.New("tags: invalid json"), err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}

// Normalize trims empty entries and drops duplicates while keeping the first occurrence order.
func (t Tags) Normalize() Tags {
	seen := make(map[string]struct{}, len(t))
	out := make(Tags, 0, len(t))
	for _, tag := range t {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
