// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

type clientTrackerService struct {
	keeper *sessionKeeper
}

func newClientTrackerService(keeper *sessionKeeper) ClientTrackerService {
	return &clientTrackerService{keeper: keeper}
}

func (c *clientTrackerService) Profile(ctx context.Context) (models.User, error) {
	return withSession(ctx, c.keeper, c.keeper.adapter.GetProfile)
}

func (c *clientTrackerService) Stats(ctx context.Context) (models.UserStats, error) {
	return withSession(ctx, c.keeper, c.keeper.adapter.GetStats)
}

func (c *clientTrackerService) Tasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return withSession(ctx, c.keeper, func(ctx context.Context) ([]models.Task, error) {
		return c.keeper.adapter.ListTasks(ctx, filter)
	})
}

func (c *clientTrackerService) Progress(ctx context.Context) ([]models.RoadmapProgress, error) {
	return withSession(ctx, c.keeper, c.keeper.adapter.GetProgress)
}

func (c *clientTrackerService) Complete(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	if taskID <= 0 {
		return models.ProgressResult{}, ErrInvalidDataProvided
	}
	return withSession(ctx, c.keeper, func(ctx context.Context) (models.ProgressResult, error) {
		return c.keeper.adapter.CompleteTask(ctx, taskID)
	})
}

func (c *clientTrackerService) Uncomplete(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	if taskID <= 0 {
		return models.ProgressResult{}, ErrInvalidDataProvided
	}
	return withSession(ctx, c.keeper, func(ctx context.Context) (models.ProgressResult, error) {
		return c.keeper.adapter.UncompleteTask(ctx, taskID)
	})
}

func (c *clientTrackerService) Start(ctx context.Context, taskID int64) (models.ProgressResult, error) {
	if taskID <= 0 {
		return models.ProgressResult{}, ErrInvalidDataProvided
	}
	return withSession(ctx, c.keeper, func(ctx context.Context) (models.ProgressResult, error) {
		return c.keeper.adapter.StartTask(ctx, taskID)
	})
}

func (c *clientTrackerService) Roadmaps(ctx context.Context) ([]models.Roadmap, error) {
	return withSession(ctx, c.keeper, c.keeper.adapter.ListRoadmaps)
}

func (c *clientTrackerService) Enroll(ctx context.Context, roadmapID int64) error {
	if roadmapID <= 0 {
		return ErrInvalidDataProvided
	}
	_, err := withSession(ctx, c.keeper, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.keeper.adapter.Enroll(ctx, roadmapID)
	})
	return err
}

func (c *clientTrackerService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.keeper.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
