// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

// NoteValidator validates new notes and partial note updates.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldContent, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if note.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if isBlank(note.Title) {
				return ErrEmptyTitle
			}
			if tooLong(note.Title, maxShortText) {
				return ErrFieldTooLong
			}
		case FieldContent:
			if isBlank(note.Content) {
				return ErrEmptyContent
			}
		case FieldTags:
			if err := validateTags(note.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldAnyUpdate, FieldTitle, FieldContent, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.NoteID <= 0 {
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
		case FieldContent:
			if update.Content != nil && isBlank(*update.Content) {
				return ErrEmptyContent
			}
		case FieldTags:
			if update.Tags != nil {
				if err := validateTags(*update.Tags); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTags(tags models.Tags) error {
	for _, tag := range tags {
		if isBlank(tag) || tooLong(tag, maxTagLength) {
			return ErrInvalidTags
		}
	}
	return nil
}
