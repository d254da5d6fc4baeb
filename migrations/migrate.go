// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the PostgreSQL schema and the seed roadmap and
// applies them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned when no connection pool is given.
var ErrNilDB = errors.New("migration error: db is nil")

// Applied describes one migration run by Migrate.
type Applied struct {
	Version int64
	Source  string
}

// Migrate applies every pending migration to db and reports what was run.
// An up-to-date schema yields an empty slice.
func Migrate(ctx context.Context, db *sql.DB) ([]Applied, error) {
	provider, err := newProvider(db)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]Applied, 0, len(results))
	for _, r := range results {
		applied = append(applied, Applied{Version: r.Source.Version, Source: r.Source.Path})
	}

	return applied, nil
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, embedMigrations)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}
