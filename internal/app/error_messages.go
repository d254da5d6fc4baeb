// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// V-Mind server handlers and the CLI client.
//
// All Msg* constants are human-readable strings written into the "message"
// member of the JSON response envelope. The client matches on them to tell
// apart failures that share a status code.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoFieldsToUpdate is returned when a partial update carries no
	// recognized field.
	MsgNoFieldsToUpdate = "no fields to update"

	// MsgEmailAlreadyExists is returned when registration uses an email that
	// already belongs to an account.
	MsgEmailAlreadyExists = "email already registered"

	// MsgUsernameAlreadyExists is returned when registration uses a taken
	// username.
	MsgUsernameAlreadyExists = "username already taken"

	// MsgInvalidEmailPassword is returned when the email/password pair does
	// not match any account.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgInvalidRefreshToken is returned when a refresh token is unknown or
	// was already used.
	MsgInvalidRefreshToken = "invalid refresh token"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the caller acts on another user's data
	// or lacks the admin role.
	MsgAccessDenied = "access denied"

	// MsgNotFound is returned when the addressed entity does not exist or is
	// not visible to the caller.
	MsgNotFound = "not found"

	// MsgProgressConflict is returned when the caller's progress changed
	// while a task update was being applied. Retrying is safe.
	MsgProgressConflict = "progress changed concurrently, retry"

	// MsgInternalServerError is returned for failures the client cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgRegistered, MsgLoggedIn and MsgLoggedOut are success messages of the
	// auth endpoints.
	MsgRegistered = "user registered successfully"
	MsgLoggedIn   = "login successful"
	MsgLoggedOut  = "logged out"

	// MsgTaskCompleted, MsgTaskUncompleted and MsgTaskStarted are success
	// messages of the task progress endpoints.
	MsgTaskCompleted   = "task completed"
	MsgTaskUncompleted = "task marked as incomplete"
	MsgTaskStarted     = "task started"

	// MsgEnrolled is returned after a roadmap enrollment.
	MsgEnrolled = "enrolled in roadmap"
)
