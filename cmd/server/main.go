// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/handler"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/server"
	"github.com/MKhiriev/go-vmind/internal/service"
	"github.com/MKhiriev/go-vmind/internal/store"
	"github.com/MKhiriev/go-vmind/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("vmind-server", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("vmind-server", cfg.App.IsDevelopment())
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("environment", cfg.App.Environment).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
