// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Variable names come
// from the `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom reads variables from environ instead of the process
// environment when environ is non-nil. Every malformed variable is reported,
// not only the first one.
func parseEnvFrom(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		return fmt.Errorf("error getting env configs (%d invalid): %w", len(aggErr.Errors), err)
	}
	return fmt.Errorf("error getting env configs: %w", err)
}
