// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/validators"
	"github.com/MKhiriev/go-vmind/models"
)

// NoteValidationService rejects malformed note input before it reaches the
// wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.ListNotes(ctx, userID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID string, noteID int64) error {
	if userID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if noteID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}

	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
