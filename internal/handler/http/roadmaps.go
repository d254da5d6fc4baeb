// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/models"
)

func (h *Handler) listRoadmaps(w http.ResponseWriter, r *http.Request) {
	roadmaps, err := h.services.RoadmapService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", roadmaps)
}

// getRoadmap returns the roadmap tree with the caller's level and task
// statuses.
func (h *Handler) getRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	roadmapID, err := urlID(r, "roadmapID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	roadmap, err := h.services.RoadmapService.Get(r.Context(), userID, roadmapID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", roadmap)
}

func (h *Handler) createRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.RoadmapRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	roadmap, err := h.services.RoadmapService.Create(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusCreated, "", roadmap)
}

func (h *Handler) updateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	roadmapID, err := urlID(r, "roadmapID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.RoadmapUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}
	update.RoadmapID = roadmapID

	roadmap, err := h.services.RoadmapService.Update(r.Context(), userID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", roadmap)
}

func (h *Handler) deleteRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	roadmapID, err := urlID(r, "roadmapID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.RoadmapService.Delete(r.Context(), userID, roadmapID); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "roadmap deleted", nil)
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	roadmapID, err := urlID(r, "roadmapID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.ProgressService.Enroll(r.Context(), userID, roadmapID); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, app.MsgEnrolled, nil)
}
