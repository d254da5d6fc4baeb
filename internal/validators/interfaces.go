// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules applied before requests reach
// the storage layer.
//
// Every validator implements Validator and accepts an optional list of field
// names that restricts the check to those fields. Without fields the
// type's default field set is validated.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
