// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vmind/models"
)

// buildProfileUpdate builds an UPDATE of the non-nil profile fields.
func buildProfileUpdate(update models.ProfileUpdate) (string, []any, error) {
	query := psql.Update("users")

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Phone != nil {
		query = query.Set("phone", *update.Phone)
	}
	if update.Objective != nil {
		query = query.Set("objective", *update.Objective)
	}
	if update.PreferredLanguage != nil {
		query = query.Set("preferred_language", *update.PreferredLanguage)
	}

	return query.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildNoteUpdate builds an owner-scoped UPDATE of the non-nil note fields.
// updated_at is always refreshed.
func buildNoteUpdate(update models.NoteUpdate) (string, []any, error) {
	query := psql.Update("notes").Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Content != nil {
		query = query.Set("content", *update.Content)
	}
	if update.Tags != nil {
		query = query.Set("tags", update.Tags.Normalize())
	}

	return query.
		Where(sq.Eq{"note_id": update.NoteID, "user_id": update.UserID}).
		Suffix("RETURNING note_id, user_id, title, content, tags, created_at, updated_at").
		ToSql()
}

// buildResourceUpdate builds an owner-scoped UPDATE of the non-nil resource fields.
func buildResourceUpdate(update models.ResourceUpdate) (string, []any, error) {
	query := psql.Update("resources")

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Type != nil {
		query = query.Set("type", *update.Type)
	}
	if update.Link != nil {
		query = query.Set("link", *update.Link)
	}
	if update.DurationMinutes != nil {
		query = query.Set("duration_minutes", *update.DurationMinutes)
	}

	return query.
		Where(sq.Eq{"resource_id": update.ResourceID, "user_id": update.UserID}).
		Suffix("RETURNING resource_id, user_id, title, type, link, duration_minutes, saved_at").
		ToSql()
}

// buildRoadmapUpdate builds an UPDATE of the roadmap metadata. Level and
// task order are never touched.
func buildRoadmapUpdate(update models.RoadmapUpdate) (string, []any, error) {
	query := psql.Update("roadmaps")

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Topic != nil {
		query = query.Set("topic", *update.Topic)
	}
	if update.Difficulty != nil {
		query = query.Set("difficulty", string(*update.Difficulty))
	}

	return query.
		Where(sq.Eq{"roadmap_id": update.RoadmapID}).
		Suffix("RETURNING roadmap_id, title, description, topic, difficulty, created_at").
		ToSql()
}

// buildTaskList selects the tasks of the roadmaps the user is enrolled in,
// narrowed by the non-zero filter fields.
func buildTaskList(filter models.TaskFilter) (string, []any, error) {
	query := psql.
		Select(
			"t.task_id", "t.level_id", "l.roadmap_id", "t.title", "t.description",
			"t.xp_reward", "t.position", "ut.status", "ut.completed_at",
		).
		From("user_tasks ut").
		Join("tasks t ON t.task_id = ut.task_id").
		Join("levels l ON l.level_id = t.level_id").
		Where(sq.Eq{"ut.user_id": filter.UserID})

	if filter.RoadmapID != 0 {
		query = query.Where(sq.Eq{"l.roadmap_id": filter.RoadmapID})
	}
	if filter.LevelID != 0 {
		query = query.Where(sq.Eq{"t.level_id": filter.LevelID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"ut.status": string(filter.Status)})
	}

	return query.OrderBy("l.roadmap_id", "l.position", "t.position").ToSql()
}

// buildGetTask selects one task with the user's status, whether or not the
// user is enrolled.
func buildGetTask(userID string, taskID int64) (string, []any, error) {
	return psql.
		Select(
			"t.task_id", "t.level_id", "l.roadmap_id", "t.title", "t.description",
			"t.xp_reward", "t.position", "COALESCE(ut.status, 'pending')", "ut.completed_at",
		).
		From("tasks t").
		Join("levels l ON l.level_id = t.level_id").
		LeftJoin("user_tasks ut ON ut.task_id = t.task_id AND ut.user_id = ?", userID).
		Where(sq.Eq{"t.task_id": taskID}).
		ToSql()
}

// buildTaskStatusUpdate builds the conditional write of a planned task
// transition. It only matches while the stored status is still from.
func buildTaskStatusUpdate(userID string, taskID int64, from, to models.TaskStatus) (string, []any, error) {
	query := psql.Update("user_tasks").Set("status", string(to))

	switch to {
	case models.TaskCompleted:
		query = query.
			Set("completed_at", sq.Expr("NOW()")).
			Set("started_at", sq.Expr("COALESCE(started_at, NOW())"))
	case models.TaskInProgress:
		query = query.
			Set("completed_at", nil).
			Set("started_at", sq.Expr("COALESCE(started_at, NOW())"))
	default:
		query = query.
			Set("completed_at", nil).
			Set("started_at", nil)
	}

	return query.
		Where(sq.Eq{"user_id": userID, "task_id": taskID, "status": string(from)}).
		ToSql()
}

// buildTaskCounts aggregates the user's task statuses and earned XP.
func buildTaskCounts(userID string) (string, []any, error) {
	return psql.
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE ut.status = 'completed')",
			"COUNT(*) FILTER (WHERE ut.status = 'in_progress')",
			"COUNT(*) FILTER (WHERE ut.status = 'pending')",
			"COALESCE(SUM(t.xp_reward) FILTER (WHERE ut.status = 'completed'), 0)",
		).
		From("user_tasks ut").
		Join("tasks t ON t.task_id = ut.task_id").
		Where(sq.Eq{"ut.user_id": userID}).
		ToSql()
}
