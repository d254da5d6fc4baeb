// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/mock"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/internal/validators"
	"github.com/MKhiriev/go-vmind/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoadmapService(t *testing.T) (RoadmapService, *mock.MockRoadmapRepository, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	roadmaps := mock.NewMockRoadmapRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	return NewRoadmapService(roadmaps, users, logger.Nop()), roadmaps, users
}

func roadmapRequest() models.RoadmapRequest {
	return models.RoadmapRequest{
		Title:      "Go Basics",
		Topic:      "go",
		Difficulty: models.DifficultyBeginner,
		Levels: []models.LevelRequest{
			{Title: "Syntax", Tasks: []models.TaskRequest{{Title: "Hello", XPReward: 10}}},
			{Title: "Types", Tasks: []models.TaskRequest{{Title: "Structs", XPReward: 20}}},
		},
	}
}

func TestRoadmapService_Create_Admin(t *testing.T) {
	svc, roadmaps, users := newTestRoadmapService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "admin-1").Return(models.User{UserID: "admin-1", Role: models.RoleAdmin}, nil)
	roadmaps.EXPECT().CreateRoadmap(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Roadmap) (models.Roadmap, error) {
			require.Len(t, r.Levels, 2)
			assert.Equal(t, 0, r.Levels[0].Position)
			assert.Equal(t, 1, r.Levels[1].Position)
			r.RoadmapID = 7
			return r, nil
		})

	created, err := svc.Create(context.Background(), "admin-1", roadmapRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.RoadmapID)
}

func TestRoadmapService_Create_NonAdminIsForbidden(t *testing.T) {
	svc, _, users := newTestRoadmapService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(models.User{UserID: "user-1", Role: models.RoleUser}, nil)

	_, err := svc.Create(context.Background(), "user-1", roadmapRequest())

	require.ErrorIs(t, err, ErrForbidden)
}

func TestRoadmapService_Create_UnknownUserIsForbidden(t *testing.T) {
	svc, _, users := newTestRoadmapService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Create(context.Background(), "ghost", roadmapRequest())

	require.ErrorIs(t, err, ErrForbidden)
}

func TestRoadmapService_Create_InvalidRequest(t *testing.T) {
	svc, _, users := newTestRoadmapService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "admin-1").Return(models.User{Role: models.RoleAdmin}, nil)
	req := roadmapRequest()
	req.Levels = nil

	_, err := svc.Create(context.Background(), "admin-1", req)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRoadmapService_Create_LevelWithoutTasks(t *testing.T) {
	svc, _, users := newTestRoadmapService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "admin-1").Return(models.User{Role: models.RoleAdmin}, nil)
	req := roadmapRequest()
	req.Levels = []models.LevelRequest{req.Levels[0], {Title: "Placeholder"}, req.Levels[1]}

	_, err := svc.Create(context.Background(), "admin-1", req)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrNoTasks)
}

func TestRoadmapService_Update_EmptyUpdate(t *testing.T) {
	svc, _, users := newTestRoadmapService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "admin-1").Return(models.User{Role: models.RoleAdmin}, nil)

	_, err := svc.Update(context.Background(), "admin-1", models.RoadmapUpdate{RoadmapID: 1})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestRoadmapService_Delete(t *testing.T) {
	svc, roadmaps, users := newTestRoadmapService(t)

	users.EXPECT().FindUserByID(gomock.Any(), "admin-1").Return(models.User{Role: models.RoleAdmin}, nil)
	roadmaps.EXPECT().DeleteRoadmap(gomock.Any(), int64(3)).Return(store.ErrRoadmapNotFound)

	err := svc.Delete(context.Background(), "admin-1", 3)

	require.ErrorIs(t, err, store.ErrRoadmapNotFound)
}

func TestRoadmapService_Get(t *testing.T) {
	svc, roadmaps, _ := newTestRoadmapService(t)

	roadmaps.EXPECT().GetRoadmap(gomock.Any(), "user-1", int64(1)).Return(models.Roadmap{RoadmapID: 1}, nil)

	roadmap, err := svc.Get(context.Background(), "user-1", 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), roadmap.RoadmapID)

	_, err = svc.Get(context.Background(), "user-1", -1)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
