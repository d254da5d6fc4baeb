// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

const testUserID = "0190a6e2-7c1f-7b3a-9d2e-3f4a5b6c7d8e"

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

var userColumnNames = []string{
	"user_id", "name", "email", "username", "password_hash", "password_scheme", "role",
	"phone", "objective", "preferred_language", "created_at", "last_connection", "current_xp", "current_level",
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumnNames)
	for _, u := range users {
		rows.AddRow(
			u.UserID, u.Name, u.Email, u.Username,
			u.Credential.Value, string(u.Credential.Scheme), string(u.Role),
			nil, nil, nil,
			u.CreatedAt, nil, u.CurrentXP, u.CurrentLevel,
		)
	}
	return rows
}

func testUser() models.User {
	return models.User{
		UserID:       testUserID,
		Name:         "Ana",
		Email:        "ana@example.com",
		Username:     "ana",
		Credential:   models.Credential{Scheme: models.SchemeBcrypt, Value: "$2a$10$hash"},
		Role:         models.RoleUser,
		CreatedAt:    testNow,
		CurrentLevel: 1,
	}
}
