// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

type interestRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInterestRepository constructs an [InterestRepository] backed by db.
func NewInterestRepository(db *DB, logger *logger.Logger) InterestRepository {
	logger.Debug().Msg("creating interest repository")
	return &interestRepository{
		db:     db,
		logger: logger,
	}
}

// ListInterests returns every interest ordered by name, with the user's
// knowledge level where one was recorded.
func (r *interestRepository) ListInterests(ctx context.Context, userID string) ([]models.Interest, error) {
	rows, err := r.db.QueryContext(ctx, listInterests, userID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*interestRepository.ListInterests", "error listing interests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	interests := make([]models.Interest, 0)
	for rows.Next() {
		var interest models.Interest
		if err = rows.Scan(&interest.InterestID, &interest.Name, &interest.KnowledgeLevel); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		interests = append(interests, interest)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return interests, nil
}
