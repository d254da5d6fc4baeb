// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/validators"
	"github.com/MKhiriev/go-vmind/models"
)

// ResourceValidationService rejects malformed resource input before it
// reaches the wrapped ResourceService.
type ResourceValidationService struct {
	inner     ResourceService
	validator validators.Validator
}

func NewResourceValidationService() ResourceServiceWrapper {
	return &ResourceValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *ResourceValidationService) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if err := v.validator.Validate(ctx, resource); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateResource(ctx, resource)
}

func (v *ResourceValidationService) ListResources(ctx context.Context, userID string) ([]models.Resource, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.ListResources(ctx, userID)
}

func (v *ResourceValidationService) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateResource(ctx, update)
}

func (v *ResourceValidationService) DeleteResource(ctx context.Context, userID string, resourceID int64) error {
	if userID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if resourceID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}

	return v.inner.DeleteResource(ctx, userID, resourceID)
}

func (v *ResourceValidationService) Wrap(inner ResourceService) ResourceService {
	v.inner = inner
	return v
}
