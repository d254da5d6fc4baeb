// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.Tags = note.Tags.Normalize()

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", note.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// ListNotes returns the notes of userID, most recently updated first.
func (s *noteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	return notes, nil
}

// UpdateNote changes a note of update.UserID. Notes of other users are
// reported as missing.
func (s *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	note, err := s.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID string, noteID int64) error {
	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}
