// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of V-Mind.
//
// It wires routes, request handlers and middleware. Authentication, request
// tracing, access logging and response compression are handled here before
// requests reach the service layer. Every JSON answer uses the
// models.Response envelope.
package http
