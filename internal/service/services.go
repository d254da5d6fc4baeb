// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the learning tracker: sessions,
// progress planning, the roadmap catalogue and the dashboard aggregates.
// Handlers call services; services call the store.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	ProgressService ProgressService
	RoadmapService  RoadmapService
	NoteService     NoteService
	ResourceService ResourceService
	StatsService    StatsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, storages.InterestRepository, logger),
		ProgressService: NewProgressService(storages.ProgressRepository, logger),
		RoadmapService:  NewRoadmapService(storages.RoadmapRepository, storages.UserRepository, logger),
		NoteService:     NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger)),
		ResourceService: NewResourceValidationService().Wrap(NewResourceService(storages.ResourceRepository, logger)),
		StatsService:    NewStatsService(storages.UserRepository, storages.StatsRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
