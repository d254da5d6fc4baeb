// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0, CompletionPercentage(0, 0))
	assert.Equal(t, 0, CompletionPercentage(3, 0))
	assert.Equal(t, 33, CompletionPercentage(1, 3))
	assert.Equal(t, 67, CompletionPercentage(2, 3))
	assert.Equal(t, 50, CompletionPercentage(1, 2))
	assert.Equal(t, 100, CompletionPercentage(7, 7))
}
