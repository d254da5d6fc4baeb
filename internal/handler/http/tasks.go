// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/MKhiriev/go-vmind/models"
)

type progressCall func(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error)

func (h *Handler) completeTask(w http.ResponseWriter, r *http.Request) {
	h.updateTaskProgress(w, r, h.services.ProgressService.CompleteTask, app.MsgTaskCompleted)
}

func (h *Handler) uncompleteTask(w http.ResponseWriter, r *http.Request) {
	h.updateTaskProgress(w, r, h.services.ProgressService.UncompleteTask, app.MsgTaskUncompleted)
}

func (h *Handler) startTask(w http.ResponseWriter, r *http.Request) {
	h.updateTaskProgress(w, r, h.services.ProgressService.StartTask, app.MsgTaskStarted)
}

// updateTaskProgress reads the optional body ({"level_id", "user_id"}) and
// applies call for the task named in the URL. The service binds the request
// to the authenticated caller.
func (h *Handler) updateTaskProgress(w http.ResponseWriter, r *http.Request, call progressCall, message string) {
	taskID, err := urlID(r, "taskID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.TaskProgressRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, fmt.Errorf("%w: invalid JSON was passed: %w", service.ErrInvalidDataProvided, err))
		return
	}
	req.TaskID = taskID

	result, err := call(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("task_id", result.TaskID).
		Int64("xp_delta", result.XPDelta).
		Bool("already_applied", result.AlreadyApplied).
		Msg(message)
	writeData(w, r, http.StatusOK, message, result)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	filter := models.TaskFilter{UserID: userID, Status: models.TaskStatus(r.URL.Query().Get("status"))}
	if filter.RoadmapID, err = queryID(r, "roadmap_id"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if filter.LevelID, err = queryID(r, "level_id"); err != nil {
		h.writeError(w, r, err)
		return
	}

	tasks, err := h.services.ProgressService.ListTasks(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", tasks)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	taskID, err := urlID(r, "taskID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.services.ProgressService.GetTask(r.Context(), userID, taskID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", task)
}

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	progress, err := h.services.ProgressService.GetProgress(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, "", progress)
}

// queryID parses an optional positive integer query parameter; absent is 0.
func queryID(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", service.ErrInvalidDataProvided, key)
	}
	return id, nil
}
