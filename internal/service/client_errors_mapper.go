// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vmind/internal/adapter"
	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return store.ErrDuplicateEmail
		case app.MsgUsernameAlreadyExists:
			return store.ErrDuplicateUsername
		case app.MsgNoFieldsToUpdate:
			return ErrNoFieldsToUpdate
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailPassword:
			return ErrWrongCredentials
		case app.MsgInvalidRefreshToken:
			return ErrInvalidRefreshToken
		}
		return ErrUnauthenticated

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrStaleProgress

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrUnexpectedResponse):
		return fmt.Errorf("%w: %w", ErrServerRejected, err)
	}

	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
