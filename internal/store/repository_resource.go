// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

type resourceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResourceRepository constructs a [ResourceRepository] backed by db.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

func scanResource(row rowScanner) (models.Resource, error) {
	var resource models.Resource
	err := row.Scan(
		&resource.ResourceID,
		&resource.UserID,
		&resource.Title,
		&resource.Type,
		&resource.Link,
		&resource.DurationMinutes,
		&resource.SavedAt,
	)
	return resource, err
}

func (r *resourceRepository) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	row := r.db.QueryRowContext(ctx, createResource,
		resource.UserID,
		resource.Title,
		resource.Type,
		resource.Link,
		resource.DurationMinutes,
	)
	if err := row.Scan(&resource.ResourceID, &resource.SavedAt); err != nil {
		r.db.logQueryError(ctx, err, "*resourceRepository.CreateResource", "error creating resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resource, nil
}

// ListResources returns the user's resources, most recently saved first.
func (r *resourceRepository) ListResources(ctx context.Context, userID string) ([]models.Resource, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listResources, userID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*resourceRepository.ListResources", "error listing resources")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resources := make([]models.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			log.Err(err).Str("func", "*resourceRepository.ListResources").Msg("error scanning resource")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		resources = append(resources, resource)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

func (r *resourceRepository) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	query, args, err := buildResourceUpdate(update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resourceRepository.UpdateResource").Msg("error building update query")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	resource, err := scanResource(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*resourceRepository.UpdateResource", "error updating resource")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resource, nil
}

func (r *resourceRepository) DeleteResource(ctx context.Context, userID string, resourceID int64) error {
	result, err := r.db.ExecContext(ctx, deleteResource, resourceID, userID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*resourceRepository.DeleteResource", "error deleting resource")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
