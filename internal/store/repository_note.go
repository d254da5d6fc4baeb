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

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.NoteID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Tags,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	return note, err
}

// CreateNote stores a note and returns it with its id and timestamps.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.Tags = note.Tags.Normalize()

	row := r.db.QueryRowContext(ctx, createNote, note.UserID, note.Title, note.Content, note.Tags)
	if err := row.Scan(&note.NoteID, &note.CreatedAt, &note.UpdatedAt); err != nil {
		r.db.logQueryError(ctx, err, "*noteRepository.CreateNote", "error creating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// ListNotes returns the user's notes, most recently updated first.
func (r *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listNotes, userID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*noteRepository.ListNotes", "error listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error iterating notes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote applies a partial update to a note the user owns.
// A note owned by somebody else is reported as [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNoteUpdate(update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		r.db.logQueryError(ctx, err, "*noteRepository.UpdateNote", "error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// DeleteNote removes a note the user owns.
func (r *noteRepository) DeleteNote(ctx context.Context, userID string, noteID int64) error {
	result, err := r.db.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		r.db.logQueryError(ctx, err, "*noteRepository.DeleteNote", "error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
