// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/models"
)

type resourceService struct {
	resourceRepository store.ResourceRepository

	logger *logger.Logger
}

func NewResourceService(resourceRepository store.ResourceRepository, logger *logger.Logger) ResourceService {
	return &resourceService{
		resourceRepository: resourceRepository,
		logger:             logger,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	resource.Type = strings.ToLower(strings.TrimSpace(resource.Type))
	resource.Link = strings.TrimSpace(resource.Link)

	created, err := s.resourceRepository.CreateResource(ctx, resource)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", resource.UserID).Msg("resource creation failed")
		return models.Resource{}, fmt.Errorf("resource creation failed: %w", err)
	}

	return created, nil
}

// ListResources returns the resources of userID, most recently saved first.
func (s *resourceService) ListResources(ctx context.Context, userID string) ([]models.Resource, error) {
	resources, err := s.resourceRepository.ListResources(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	return resources, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	if update.Type != nil {
		normalized := strings.ToLower(strings.TrimSpace(*update.Type))
		update.Type = &normalized
	}

	resource, err := s.resourceRepository.UpdateResource(ctx, update)
	if err != nil {
		return models.Resource{}, fmt.Errorf("resource update failed: %w", err)
	}

	return resource, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, userID string, resourceID int64) error {
	if err := s.resourceRepository.DeleteResource(ctx, userID, resourceID); err != nil {
		return fmt.Errorf("resource deletion failed: %w", err)
	}

	return nil
}
