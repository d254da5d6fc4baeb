// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a learner account.
// The credential and the refresh token digest never leave the server:
// both are excluded from JSON serialisation.
type User struct {
	// UserID is a UUIDv7 assigned at registration.
	UserID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is globally unique and stored lower-cased.
	Email string `json:"email"`

	// Username is globally unique.
	Username string `json:"username"`

	// Credential is the stored password representation.
	Credential Credential `json:"-"`

	Role Role `json:"role"`

	Phone             *string `json:"phone,omitempty"`
	Objective         *string `json:"objective,omitempty"`
	PreferredLanguage *string `json:"preferred_language,omitempty"`

	CreatedAt      time.Time  `json:"created_at"`
	LastConnection *time.Time `json:"last_connection,omitempty"`

	// CurrentXP is the sum of XP rewards of every completed task.
	CurrentXP int64 `json:"current_xp"`

	// CurrentLevel is derived from CurrentXP via LevelForXP.
	CurrentLevel int `json:"current_level"`
}

// IsAdmin reports whether the user may manage the roadmap catalogue.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	UserID            string  `json:"-"`
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Objective         *string `json:"objective,omitempty"`
	PreferredLanguage *string `json:"preferred_language,omitempty"`
}

// IsEmpty reports whether no recognized field is present.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Objective == nil && p.PreferredLanguage == nil
}

// Interest is a learning topic together with the caller's self-assessed knowledge level.
type Interest struct {
	InterestID     int64   `json:"id"`
	Name           string  `json:"name"`
	KnowledgeLevel *string `json:"knowledge_level,omitempty"`
}
