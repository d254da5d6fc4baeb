// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ClientSessionStore keeps the CLI login between runs. At most one session
// is stored.
type ClientSessionStore interface {
	SaveSession(ctx context.Context, session models.ClientSession) error
	GetSession(ctx context.Context) (models.ClientSession, error)
	DeleteSession(ctx context.Context) error
}
