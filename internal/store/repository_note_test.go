// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

var noteColumns = []string{"note_id", "user_id", "title", "content", "tags", "created_at", "updated_at"}

func TestNoteRepository_CreateNote_NormalizesTags(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(testUserID, "Loops", "<p>for</p>", []byte(`["python","basics"]`)).
		WillReturnRows(sqlmock.NewRows([]string{"note_id", "created_at", "updated_at"}).AddRow(7, testNow, testNow))

	note, err := repo.CreateNote(context.Background(), models.Note{
		UserID:  testUserID,
		Title:   "Loops",
		Content: "<p>for</p>",
		Tags:    models.Tags{"python", "", "basics", "python"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), note.NoteID)
	assert.Equal(t, models.Tags{"python", "basics"}, note.Tags)
	assert.Equal(t, testNow, note.UpdatedAt)
}

func TestNoteRepository_ListNotes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectQuery("FROM notes\\s+WHERE user_id = \\$1\\s+ORDER BY updated_at DESC").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(2, testUserID, "newer", "b", []byte(`["x"]`), testNow, testNow).
			AddRow(1, testUserID, "older", "a", []byte(`[]`), testNow, testNow))

	notes, err := repo.ListNotes(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "newer", notes[0].Title)
	assert.Equal(t, models.Tags{"x"}, notes[0].Tags)
	assert.Equal(t, models.Tags{}, notes[1].Tags)
}

func TestNoteRepository_ListNotes_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectQuery("FROM notes").WillReturnRows(sqlmock.NewRows(noteColumns))

	notes, err := repo.ListNotes(context.Background(), testUserID)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_UpdateNote(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())
	title := "Renamed"

	mock.ExpectQuery("UPDATE notes SET updated_at = NOW\\(\\), title = \\$1 WHERE \\(?note_id = \\$2 AND user_id = \\$3").
		WithArgs(title, int64(3), testUserID).
		WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(3, testUserID, title, "c", []byte(`[]`), testNow, testNow))

	note, err := repo.UpdateNote(context.Background(), models.NoteUpdate{NoteID: 3, UserID: testUserID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, note.Title)
}

func TestNoteRepository_UpdateNote_NotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())
	title := "x"

	mock.ExpectQuery("UPDATE notes").WillReturnRows(sqlmock.NewRows(noteColumns))

	_, err := repo.UpdateNote(context.Background(), models.NoteUpdate{NoteID: 3, UserID: "someone-else", Title: &title})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_DeleteNote(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM notes WHERE note_id = \\$1 AND user_id = \\$2").
		WithArgs(int64(3), testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM notes").
		WithArgs(int64(3), testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteNote(ctx, testUserID, 3))
	assert.ErrorIs(t, repo.DeleteNote(ctx, testUserID, 3), ErrNoteNotFound)
}
