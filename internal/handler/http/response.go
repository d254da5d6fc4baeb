// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/MKhiriev/go-vmind/internal/utils"
	"github.com/MKhiriev/go-vmind/models"
	"github.com/go-chi/chi/v5"
)

// writeData answers with a successful envelope.
func writeData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.Response{Success: true, Message: message, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError classifies err and answers with a failed envelope. Validation
// details are always returned; internal details only in development.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	resp := models.Response{Success: false, Message: message}
	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		if h.development {
			resp.Error = err.Error()
		}
	case message == app.MsgInvalidDataProvided:
		log.Debug().Err(err).Msg("request rejected")
		resp.Error = err.Error()
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON was passed: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// urlID parses the positive integer URL parameter key.
func urlID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", service.ErrInvalidDataProvided, key)
	}
	return id, nil
}

// callerID returns the authenticated user stored by the auth middleware.
func callerID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", service.ErrUnauthenticated
	}
	return userID, nil
}
