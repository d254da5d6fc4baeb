// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	auth, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", auth.User.UserID).Msg("user registered")
	writeData(w, r, http.StatusCreated, app.MsgRegistered, auth)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	auth, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", auth.User.UserID).Msg("user successfully logged in")
	writeData(w, r, http.StatusOK, app.MsgLoggedIn, auth)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", pair)
}

// logout always answers 200. A missing or unknown refresh token leaves
// nothing to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("logout without refresh token")
	}

	if req.RefreshToken != "" {
		if err := h.services.AuthService.Revoke(r.Context(), req.RefreshToken); err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("refresh token revocation failed")
		}
	}

	writeData(w, r, http.StatusOK, app.MsgLoggedOut, nil)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}
	update.UserID = userID

	user, err := h.services.UserService.UpdateProfile(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", user)
}
