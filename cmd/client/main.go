// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vmind/internal/adapter"
	"github.com/MKhiriev/go-vmind/internal/client"
	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
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
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig()
	if err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		return 2
	}

	log := logger.NewClientLogger("vmind-client", cfg.App.LogFile, cfg.App.Environment == config.EnvDevelopment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create server adapter")
		os.Stderr.WriteString(err.Error() + "\n")
		return 2
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create client storages")
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var app client.Client = client.NewApp(services, buildInfo, os.Stdout, log)
	if err = app.Run(ctx, flag.Args()); err != nil {
		return 1
	}

	return 0
}
