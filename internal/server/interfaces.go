// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the API server.
//
// RunServer blocks until a stop signal arrives and the server has drained
// its connections. Shutdown may be called to stop it earlier.
type Server interface {
	RunServer()
	Shutdown()
}
