// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vmind/internal/adapter"
	"github.com/MKhiriev/go-vmind/internal/logger"
	"github.com/MKhiriev/go-vmind/internal/store"
)

// ClientServices groups the services of the CLI client. Both share one
// session keeper, so a refresh done by one is seen by the other.
type ClientServices struct {
	AuthService    ClientAuthService
	TrackerService ClientTrackerService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	keeper := newSessionKeeper(storages.SessionStore, serverAdapter, logger)

	return &ClientServices{
		AuthService:    newClientAuthService(keeper, logger),
		TrackerService: newClientTrackerService(keeper),
	}
}
