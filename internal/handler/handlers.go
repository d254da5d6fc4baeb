// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-vmind/internal/config"
	"github.com/MKhiriev/go-vmind/internal/handler/http"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/service"
)

// Handlers groups the inbound transports of the server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. An empty HTTP
// address leaves nothing to serve and is rejected.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
