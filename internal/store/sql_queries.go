// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	userColumns = `user_id, name, email, username, password_hash, password_scheme, role,
		phone, objective, preferred_language, created_at, last_connection, current_xp, current_level`

	createUser = `INSERT INTO users (user_id, name, email, username, password_hash, password_scheme, role,
			phone, objective, preferred_language)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1;`

	recordConnection = `UPDATE users SET last_connection = NOW() WHERE user_id = $1;`

	updateCredential = `UPDATE users
		SET password_hash = $1, password_scheme = $2
		WHERE user_id = $3;`

	setRefreshToken = `UPDATE users SET refresh_token_hash = $1 WHERE user_id = $2;`

	rotateRefreshToken = `UPDATE users
		SET refresh_token_hash = $1
		WHERE refresh_token_hash = $2
		RETURNING ` + userColumns + `;`

	clearRefreshToken = `UPDATE users SET refresh_token_hash = NULL WHERE refresh_token_hash = $1;`

	createNote = `INSERT INTO notes (user_id, title, content, tags)
		VALUES ($1, $2, $3, $4)
		RETURNING note_id, created_at, updated_at;`

	listNotes = `SELECT note_id, user_id, title, content, tags, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC, note_id DESC;`

	deleteNote = `DELETE FROM notes WHERE note_id = $1 AND user_id = $2;`

	createResource = `INSERT INTO resources (user_id, title, type, link, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING resource_id, saved_at;`

	listResources = `SELECT resource_id, user_id, title, type, link, duration_minutes, saved_at
		FROM resources
		WHERE user_id = $1
		ORDER BY saved_at DESC, resource_id DESC;`

	deleteResource = `DELETE FROM resources WHERE resource_id = $1 AND user_id = $2;`

	listRoadmaps = `SELECT r.roadmap_id, r.title, r.description, r.topic, r.difficulty, r.created_at,
			COUNT(DISTINCT l.level_id), COUNT(t.task_id)
		FROM roadmaps r
		LEFT JOIN levels l ON l.roadmap_id = r.roadmap_id
		LEFT JOIN tasks t ON t.level_id = l.level_id
		GROUP BY r.roadmap_id
		ORDER BY r.roadmap_id;`

	getRoadmap = `SELECT roadmap_id, title, description, topic, difficulty, created_at
		FROM roadmaps
		WHERE roadmap_id = $1;`

	// levels of a roadmap with the caller's status; users that are not
	// enrolled see the status enrollment would create.
	getRoadmapLevels = `SELECT l.level_id, l.roadmap_id, l.title, l.description, l.position,
			COALESCE(ul.status, CASE WHEN l.position = 0 THEN 'unlocked' ELSE 'locked' END)
		FROM levels l
		LEFT JOIN user_levels ul ON ul.level_id = l.level_id AND ul.user_id = $1
		WHERE l.roadmap_id = $2
		ORDER BY l.position;`

	getRoadmapTasks = `SELECT t.task_id, t.level_id, l.roadmap_id, t.title, t.description, t.xp_reward, t.position,
			COALESCE(ut.status, 'pending'), ut.completed_at
		FROM tasks t
		JOIN levels l ON l.level_id = t.level_id
		LEFT JOIN user_tasks ut ON ut.task_id = t.task_id AND ut.user_id = $1
		WHERE l.roadmap_id = $2
		ORDER BY l.position, t.position;`

	createRoadmap = `INSERT INTO roadmaps (title, description, topic, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING roadmap_id, created_at;`

	createLevel = `INSERT INTO levels (roadmap_id, title, description, position)
		VALUES ($1, $2, $3, $4)
		RETURNING level_id;`

	createTask = `INSERT INTO tasks (level_id, title, description, xp_reward, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING task_id;`

	deleteRoadmap = `DELETE FROM roadmaps WHERE roadmap_id = $1;`

	roadmapExists = `SELECT 1 FROM roadmaps WHERE roadmap_id = $1;`

	enrollLevels = `INSERT INTO user_levels (user_id, level_id, status)
		SELECT $1, level_id, CASE WHEN position = 0 THEN 'unlocked' ELSE 'locked' END
		FROM levels
		WHERE roadmap_id = $2
		ON CONFLICT (user_id, level_id) DO NOTHING;`

	enrollTasks = `INSERT INTO user_tasks (user_id, task_id, status)
		SELECT $1, t.task_id, 'pending'
		FROM tasks t
		JOIN levels l ON l.level_id = t.level_id
		WHERE l.roadmap_id = $2
		ON CONFLICT (user_id, task_id) DO NOTHING;`

	lockUserProgress = `SELECT current_xp FROM users WHERE user_id = $1 FOR UPDATE;`

	findTaskRoadmap = `SELECT l.roadmap_id
		FROM tasks t
		JOIN levels l ON l.level_id = t.level_id
		WHERE t.task_id = $1;`

	loadProgressState = `SELECT l.level_id, l.position, ul.status,
			t.task_id, t.position, t.xp_reward, COALESCE(ut.status, 'pending')
		FROM levels l
		JOIN user_levels ul ON ul.level_id = l.level_id AND ul.user_id = $1
		LEFT JOIN tasks t ON t.level_id = l.level_id
		LEFT JOIN user_tasks ut ON ut.task_id = t.task_id AND ut.user_id = $1
		WHERE l.roadmap_id = $2
		ORDER BY l.position, t.position;`

	updateLevelStatus = `UPDATE user_levels
		SET status = $1
		WHERE user_id = $2 AND level_id = $3 AND status = $4;`

	updateUserXP = `UPDATE users
		SET current_xp = $1, current_level = $2
		WHERE user_id = $3;`

	getRoadmapProgress = `SELECT r.roadmap_id, r.title,
			COUNT(DISTINCT l.level_id),
			COUNT(DISTINCT l.level_id) FILTER (WHERE ul.status = 'completed'),
			COUNT(ut.task_id),
			COUNT(ut.task_id) FILTER (WHERE ut.status = 'completed'),
			COALESCE(SUM(t.xp_reward) FILTER (WHERE ut.status = 'completed'), 0)
		FROM roadmaps r
		JOIN levels l ON l.roadmap_id = r.roadmap_id
		JOIN user_levels ul ON ul.level_id = l.level_id AND ul.user_id = $1
		LEFT JOIN tasks t ON t.level_id = l.level_id
		LEFT JOIN user_tasks ut ON ut.task_id = t.task_id AND ut.user_id = $1
		GROUP BY r.roadmap_id, r.title
		ORDER BY r.roadmap_id;`

	getStreak = `SELECT current_streak_days, longest_streak_days
		FROM streaks
		WHERE user_id = $1;`

	listInterests = `SELECT i.interest_id, i.name, il.knowledge_level
		FROM interests i
		LEFT JOIN interest_levels il ON il.interest_id = i.interest_id AND il.user_id = $1
		ORDER BY i.name;`
)
