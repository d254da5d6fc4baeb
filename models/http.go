// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope shared by every JSON endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Username          string  `json:"username"`
	Password          string  `json:"password"`
	Phone             *string `json:"phone,omitempty"`
	Objective         *string `json:"objective,omitempty"`
	PreferredLanguage *string `json:"preferred_language,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh and POST /api/auth/logout.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is returned by refresh.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RoadmapRequest is the body of POST /api/roadmaps.
type RoadmapRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Topic       string         `json:"topic"`
	Difficulty  Difficulty     `json:"difficulty"`
	Levels      []LevelRequest `json:"levels"`
}

// LevelRequest describes one level of a new roadmap, in order.
type LevelRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tasks       []TaskRequest `json:"tasks"`
}

// TaskRequest describes one task of a new level, in order.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int64  `json:"xp_reward"`
}

// ToRoadmap converts the request to a roadmap with positions assigned in order.
func (r RoadmapRequest) ToRoadmap() Roadmap {
	roadmap := Roadmap{
		Title:       r.Title,
		Description: r.Description,
		Topic:       r.Topic,
		Difficulty:  r.Difficulty,
		Levels:      make([]Level, 0, len(r.Levels)),
	}

	for i, l := range r.Levels {
		level := Level{
			Title:       l.Title,
			Description: l.Description,
			Position:    i,
			Tasks:       make([]Task, 0, len(l.Tasks)),
		}
		for j, t := range l.Tasks {
			level.Tasks = append(level.Tasks, Task{
				Title:       t.Title,
				Description: t.Description,
				XPReward:    t.XPReward,
				Position:    j,
			})
		}
		roadmap.Levels = append(roadmap.Levels, level)
	}

	return roadmap
}
