// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/service"
)

type Handler struct {
	services *service.Services

	// development exposes internal error details in 500 responses.
	development    bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		development:    cfg.App.IsDevelopment(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
