// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the V-Mind command-line client.
//
// Each run executes one command (login, stats, tasks, complete and so on)
// against the API server through the client services and prints the result
// as styled text. The login survives between runs in a local SQLite session
// store.
package client
