// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/utils"
	"github.com/MKhiriev/go-vmind/models"
	"github.com/go-resty/resty/v2"
)

// envelope is the response wrapper used by every JSON endpoint of the server.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter]
// bound to cfg.HTTPAddress. A missing scheme defaults to http.
//
// Returns ErrEmptyServerAddress if cfg.HTTPAddress is blank.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	address := strings.TrimSpace(cfg.HTTPAddress)
	if address == "" {
		return nil, ErrEmptyServerAddress
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(address, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = decodeEnvelope(resp, &auth); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = decodeEnvelope(resp, &auth); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Refresh implements [ServerAdapter]. POST /api/auth/refresh.
func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = decodeEnvelope(resp, &pair); err != nil {
		return models.TokenPair{}, err
	}

	h.SetToken(pair.Token)
	return pair, nil
}

// Logout implements [ServerAdapter]. POST /api/auth/logout. The stored
// access token is dropped even if the request fails.
func (h *httpServerAdapter) Logout(ctx context.Context, refreshToken string) error {
	defer h.SetToken("")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetProfile implements [ServerAdapter]. GET /api/auth/profile.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, "/api/auth/profile", nil, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// GetStats implements [ServerAdapter]. GET /api/users/stats.
func (h *httpServerAdapter) GetStats(ctx context.Context) (models.UserStats, error) {
	var stats models.UserStats
	if err := h.getJSON(ctx, "/api/users/stats", nil, &stats); err != nil {
		return models.UserStats{}, err
	}

	return stats, nil
}

// ListTasks implements [ServerAdapter]. GET /api/tasks with the non-zero
// filter fields as query parameters.
func (h *httpServerAdapter) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	params := make(map[string]string)
	if filter.RoadmapID > 0 {
		params["roadmap_id"] = strconv.FormatInt(filter.RoadmapID, 10)
	}
	if filter.LevelID > 0 {
		params["level_id"] = strconv.FormatInt(filter.LevelID, 10)
	}
	if filter.Status != "" {
		params["status"] = string(filter.Status)
	}

	tasks := make([]models.Task, 0)
	if err := h.getJSON(ctx, "/api/tasks", params, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetProgress implements [ServerAdapter]. GET /api/tasks/progress.
func (h *httpServerAdapter) GetProgress(ctx context.Context) ([]models.RoadmapProgress, error) {
	progress := make([]models.RoadmapProgress, 0)
	if err := h.getJSON(ctx, "/api/tasks/progress", nil, &progress); err != nil {
		return nil, err
	}

	return progress, nil
}

// CompleteTask implements [ServerAdapter]. POST /api/tasks/{id}/complete.
func (h *httpServerAdapter) CompleteTask(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	return h.taskAction(ctx, resty.MethodPost, taskPath(taskID, "complete"))
}

// UncompleteTask implements [ServerAdapter]. DELETE /api/tasks/{id}/complete.
func (h *httpServerAdapter) UncompleteTask(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	return h.taskAction(ctx, resty.MethodDelete, taskPath(taskID, "complete"))
}

// StartTask implements [ServerAdapter]. POST /api/tasks/{id}/start.
func (h *httpServerAdapter) StartTask(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	return h.taskAction(ctx, resty.MethodPost, taskPath(taskID, "start"))
}

func (h *httpServerAdapter) taskAction(ctx context.Context, method, path string) (models.ProgressResult, error) {
	var result models.ProgressResult

	resp, err := h.authedRequest(ctx).Execute(method, path)
	if err != nil {
		return models.ProgressResult{}, fmt.Errorf("task request: %w", err)
	}
	if err = decodeEnvelope(resp, &result); err != nil {
		return models.ProgressResult{}, err
	}

	return result, nil
}

// ListRoadmaps implements [ServerAdapter]. GET /api/roadmaps.
func (h *httpServerAdapter) ListRoadmaps(ctx context.Context) ([]models.Roadmap, error) {
	roadmaps := make([]models.Roadmap, 0)
	if err := h.getJSON(ctx, "/api/roadmaps", nil, &roadmaps); err != nil {
		return nil, err
	}

	return roadmaps, nil
}

// Enroll implements [ServerAdapter]. POST /api/roadmaps/{id}/enroll.
func (h *httpServerAdapter) Enroll(ctx context.Context, roadmapID int64) error {
	resp, err := h.authedRequest(ctx).Post("/api/roadmaps/" + strconv.FormatInt(roadmapID, 10) + "/enroll")
	if err != nil {
		return fmt.Errorf("enroll request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter]. GET /api/version/ answers plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return decodeEnvelope(resp, out)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeEnvelope maps error statuses and unpacks the data member of a
// successful envelope into out.
func decodeEnvelope(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrUnexpectedResponse, env.Error)
	}
	if len(env.Data) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return nil
}

func taskPath(taskID int64, action string) string {
	return "/api/tasks/" + strconv.FormatInt(taskID, 10) + "/" + action
}
