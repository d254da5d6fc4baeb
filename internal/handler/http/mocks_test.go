// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/MKhiriev/go-vmind/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks. Each method delegates to the matching func field, so a
// test only fills in what the route under test calls.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	refreshFn      func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	revokeFn       func(ctx context.Context, refreshToken string) error
	issueSessionFn func(ctx context.Context, user models.User) (models.Session, error)
	parseTokenFn   func(ctx context.Context, accessToken string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) Revoke(ctx context.Context, refreshToken string) error {
	return m.revokeFn(ctx, refreshToken)
}

func (m *mockAuthService) IssueSession(ctx context.Context, user models.User) (models.Session, error) {
	return m.issueSessionFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, accessToken string) (models.Token, error) {
	return m.parseTokenFn(ctx, accessToken)
}

type mockUserService struct {
	getProfileFn    func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn func(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	getInterestsFn  func(ctx context.Context, userID string) ([]models.Interest, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, update)
}

func (m *mockUserService) GetInterests(ctx context.Context, userID string) ([]models.Interest, error) {
	return m.getInterestsFn(ctx, userID)
}

type mockProgressService struct {
	completeFn    func(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error)
	uncompleteFn  func(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error)
	startFn       func(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error)
	enrollFn      func(ctx context.Context, userID string, roadmapID int64) error
	listTasksFn   func(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	getTaskFn     func(ctx context.Context, userID string, taskID int64) (models.Task, error)
	getProgressFn func(ctx context.Context, userID string) ([]models.RoadmapProgress, error)
}

func (m *mockProgressService) CompleteTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error) {
	return m.completeFn(ctx, req)
}

func (m *mockProgressService) UncompleteTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error) {
	return m.uncompleteFn(ctx, req)
}

func (m *mockProgressService) StartTask(ctx context.Context, req models.TaskProgressRequest) (models.ProgressResult, error) {
	return m.startFn(ctx, req)
}

func (m *mockProgressService) Enroll(ctx context.Context, userID string, roadmapID int64) error {
	return m.enrollFn(ctx, userID, roadmapID)
}

func (m *mockProgressService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return m.listTasksFn(ctx, filter)
}

func (m *mockProgressService) GetTask(ctx context.Context, userID string, taskID int64) (models.Task, error) {
	return m.getTaskFn(ctx, userID, taskID)
}

func (m *mockProgressService) GetProgress(ctx context.Context, userID string) ([]models.RoadmapProgress, error) {
	return m.getProgressFn(ctx, userID)
}

type mockRoadmapService struct {
	listFn   func(ctx context.Context) ([]models.Roadmap, error)
	getFn    func(ctx context.Context, userID string, roadmapID int64) (models.Roadmap, error)
	createFn func(ctx context.Context, userID string, req models.RoadmapRequest) (models.Roadmap, error)
	updateFn func(ctx context.Context, userID string, update models.RoadmapUpdate) (models.Roadmap, error)
	deleteFn func(ctx context.Context, userID string, roadmapID int64) error
}

func (m *mockRoadmapService) List(ctx context.Context) ([]models.Roadmap, error) {
	return m.listFn(ctx)
}

func (m *mockRoadmapService) Get(ctx context.Context, userID string, roadmapID int64) (models.Roadmap, error) {
	return m.getFn(ctx, userID, roadmapID)
}

func (m *mockRoadmapService) Create(ctx context.Context, userID string, req models.RoadmapRequest) (models.Roadmap, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockRoadmapService) Update(ctx context.Context, userID string, update models.RoadmapUpdate) (models.Roadmap, error) {
	return m.updateFn(ctx, userID, update)
}

func (m *mockRoadmapService) Delete(ctx context.Context, userID string, roadmapID int64) error {
	return m.deleteFn(ctx, userID, roadmapID)
}

type mockNoteService struct {
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	listFn   func(ctx context.Context, userID string) ([]models.Note, error)
	updateFn func(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	deleteFn func(ctx context.Context, userID string, noteID int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.createFn(ctx, note)
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	return m.listFn(ctx, userID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	return m.updateFn(ctx, update)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID string, noteID int64) error {
	return m.deleteFn(ctx, userID, noteID)
}

type mockResourceService struct {
	createFn func(ctx context.Context, resource models.Resource) (models.Resource, error)
	listFn   func(ctx context.Context, userID string) ([]models.Resource, error)
	updateFn func(ctx context.Context, update models.ResourceUpdate) (models.Resource, error)
	deleteFn func(ctx context.Context, userID string, resourceID int64) error
}

func (m *mockResourceService) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	return m.createFn(ctx, resource)
}

func (m *mockResourceService) ListResources(ctx context.Context, userID string) ([]models.Resource, error) {
	return m.listFn(ctx, userID)
}

func (m *mockResourceService) UpdateResource(ctx context.Context, update models.ResourceUpdate) (models.Resource, error) {
	return m.updateFn(ctx, update)
}

func (m *mockResourceService) DeleteResource(ctx context.Context, userID string, resourceID int64) error {
	return m.deleteFn(ctx, userID, resourceID)
}

type mockStatsService struct {
	getUserStatsFn func(ctx context.Context, userID string) (models.UserStats, error)
}

func (m *mockStatsService) GetUserStats(ctx context.Context, userID string) (models.UserStats, error) {
	return m.getUserStatsFn(ctx, userID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID = "0190a0b1-0000-7000-8000-000000000001"
	testToken  = "valid.jwt.token"
)

// acceptingAuth accepts testToken only, as testUserID.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, accessToken string) (models.Token, error) {
			if accessToken != testToken {
				return models.Token{}, service.ErrUnauthenticated
			}
			return models.Token{UserID: testUserID}, nil
		},
	}
}

// newTestRouter wires svcs into a full router. A nil AuthService is replaced
// with acceptingAuth.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = acceptingAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, testConfig(), logger.Nop()).Init()
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{App: config.App{Environment: config.EnvProduction}}
}

// doRequest sends body (marshalled to JSON unless nil) with testToken.
func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// envelopeOf decodes the response envelope, unpacking data into out when
// out is non-nil.
func envelopeOf(t *testing.T, rec *httptest.ResponseRecorder, out any) models.Response {
	t.Helper()

	var raw struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw), "body: %s", rec.Body.String())

	if out != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}

	return models.Response{Success: raw.Success, Message: raw.Message, Error: raw.Error}
}
