// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is ordered: the first matching target wins, so specific
// sentinels come before the generic ones that may wrap them.
var errorStatusMap = []errorMapping{
	{store.ErrDuplicateEmail, http.StatusBadRequest, app.MsgEmailAlreadyExists},
	{store.ErrDuplicateUsername, http.StatusBadRequest, app.MsgUsernameAlreadyExists},
	{service.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidUserID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidStatus, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrUnsupportedType, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrInvalidRefreshToken, http.StatusUnauthorized, app.MsgInvalidRefreshToken},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrForbidden, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrResourceNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrRoadmapNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrTaskNotFound, http.StatusNotFound, app.MsgNotFound},
	{service.ErrNotFound, http.StatusNotFound, app.MsgNotFound},

	{store.ErrStaleProgress, http.StatusConflict, app.MsgProgressConflict},
}

// statusFromError returns the response status and envelope message for err.
// Anything unrecognized is an internal error.
func statusFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
