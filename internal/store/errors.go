// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateEmail is returned when a new account uses an email that is
	// already registered.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateUsername is returned when a new account uses a username that
	// is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrRefreshTokenNotFound is returned when no user holds the presented
	// refresh token digest.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")

	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user.
	ErrNoteNotFound = errors.New("note not found")

	// ErrResourceNotFound is returned when a resource does not exist or
	// belongs to another user.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrRoadmapNotFound is returned when a roadmap does not exist.
	ErrRoadmapNotFound = errors.New("roadmap not found")

	// ErrTaskNotFound is returned when a task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrStaleProgress is returned when a conditional progress write matched
	// no row, i.e. the stored status differs from the one the change was
	// planned against. The whole transaction is rolled back.
	ErrStaleProgress = errors.New("progress changed concurrently")

	// ErrSessionNotFound is returned by the client session store when no
	// session has been saved yet.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
