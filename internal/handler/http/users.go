// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vmind/models"
)

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	stats, err := h.services.StatsService.GetUserStats(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", stats)
}

func (h *Handler) getInterests(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	interests, err := h.services.UserService.GetInterests(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", interests)
}

// ── notes ───────────────────────────────────────────────────────────────────

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var note models.Note
	if err = decodeJSON(r, &note); err != nil {
		h.writeError(w, r, err)
		return
	}
	note.UserID = userID

	created, err := h.services.NoteService.CreateNote(r.Context(), note)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusCreated, "", created)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	noteID, err := urlID(r, "noteID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.NoteUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}
	update.NoteID = noteID
	update.UserID = userID

	note, err := h.services.NoteService.UpdateNote(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	noteID, err := urlID(r, "noteID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "note deleted", nil)
}

// ── resources ───────────────────────────────────────────────────────────────

func (h *Handler) listResources(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resources, err := h.services.ResourceService.ListResources(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", resources)
}

func (h *Handler) createResource(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var resource models.Resource
	if err = decodeJSON(r, &resource); err != nil {
		h.writeError(w, r, err)
		return
	}
	resource.UserID = userID

	created, err := h.services.ResourceService.CreateResource(r.Context(), resource)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusCreated, "", created)
}

func (h *Handler) updateResource(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resourceID, err := urlID(r, "resourceID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.ResourceUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}
	update.ResourceID = resourceID
	update.UserID = userID

	resource, err := h.services.ResourceService.UpdateResource(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", resource)
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resourceID, err := urlID(r, "resourceID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.ResourceService.DeleteResource(r.Context(), userID, resourceID); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "resource deleted", nil)
}
