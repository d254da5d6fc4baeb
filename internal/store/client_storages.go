// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
)

// ClientStorages groups the client-side storage of the CLI.
type ClientStorages struct {
	// SessionStore keeps the login between runs.
	SessionStore ClientSessionStore

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.SessionDSN, creating
// it and its schema if needed.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.SessionDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewSessionRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the SQLite handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
