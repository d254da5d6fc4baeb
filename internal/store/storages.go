// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
)

// Storages groups the server-side repositories so they can be handed to the
// service layer as one value.
type Storages struct {
	UserRepository     UserRepository
	NoteRepository     NoteRepository
	ResourceRepository ResourceRepository
	RoadmapRepository  RoadmapRepository
	ProgressRepository ProgressRepository
	StatsRepository    StatsRepository
	InterestRepository InterestRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// every repository to the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		NoteRepository:     NewNoteRepository(db, logger),
		ResourceRepository: NewResourceRepository(db, logger),
		RoadmapRepository:  NewRoadmapRepository(db, logger),
		ProgressRepository: NewProgressRepository(db, logger),
		StatsRepository:    NewStatsRepository(db, logger),
		InterestRepository: NewInterestRepository(db, logger),
		db:                 db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
