// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration names no HTTP address. This is a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
