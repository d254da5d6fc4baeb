// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

// ResourceValidator validates saved resources and partial resource updates.
type ResourceValidator struct{}

func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Resource:
		return v.validateResource(value, fields...)
	case *models.Resource:
		return v.validateResource(*value, fields...)

	case models.ResourceUpdate:
		return v.validateResourceUpdate(value, fields...)
	case *models.ResourceUpdate:
		return v.validateResourceUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateResource(res models.Resource, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldType, FieldLink, FieldDuration}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if res.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if isBlank(res.Title) {
				return ErrEmptyTitle
			}
			if tooLong(res.Title, maxShortText) {
				return ErrFieldTooLong
			}
		case FieldType:
			if isBlank(res.Type) {
				return ErrEmptyResourceType
			}
			if tooLong(res.Type, maxTagLength) {
				return ErrFieldTooLong
			}
		case FieldLink:
			if !isValidLink(res.Link) {
				return ErrInvalidLink
			}
		case FieldDuration:
			if res.DurationMinutes != nil && *res.DurationMinutes < 0 {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateResourceUpdate(update models.ResourceUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldAnyUpdate, FieldTitle, FieldType, FieldLink, FieldDuration}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ResourceID <= 0 {
				return ErrInvalidID
			}
		case FieldUserID:
			if update.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldAnyUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil && isBlank(*update.Title) {
				return ErrEmptyTitle
			}
			if err := checkOptionalText(update.Title, maxShortText); err != nil {
				return err
			}
		case FieldType:
			if update.Type != nil && isBlank(*update.Type) {
				return ErrEmptyResourceType
			}
			if err := checkOptionalText(update.Type, maxTagLength); err != nil {
				return err
			}
		case FieldLink:
			if update.Link != nil && !isValidLink(*update.Link) {
				return ErrInvalidLink
			}
		case FieldDuration:
			if update.DurationMinutes != nil && *update.DurationMinutes < 0 {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
