// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			id            INTEGER PRIMARY KEY CHECK (id = 1),
			user_id       TEXT      NOT NULL,
			email         TEXT      NOT NULL,
			access_token  TEXT      NOT NULL,
			refresh_token TEXT      NOT NULL,
			saved_at      TIMESTAMP NOT NULL
		);`

	saveSession = `
		INSERT INTO session (id, user_id, email, access_token, refresh_token, saved_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			user_id       = excluded.user_id,
			email         = excluded.email,
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			saved_at      = excluded.saved_at;`

	getSession = `
		SELECT user_id, email, access_token, refresh_token, saved_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)
