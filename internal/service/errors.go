// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-vmind/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoFieldsToUpdate    = validators.ErrNoFieldsToUpdate

	ErrWrongCredentials    = errors.New("invalid email or password")
	ErrUnauthenticated     = errors.New("token is expired or invalid")
	ErrInvalidRefreshToken = errors.New("refresh token is invalid or already used")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrForbidden           = errors.New("access denied")
	ErrNotFound            = errors.New("not found")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// client-side errors
var (
	ErrNotLoggedIn      = errors.New("not logged in: run the login command first")
	ErrSessionExpired   = errors.New("session expired: log in again")
	ErrServerRejected   = errors.New("server rejected the request")
	ErrServerUnavailable = errors.New("server is unavailable")
)
