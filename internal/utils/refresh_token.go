// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const refreshTokenBytes = 64

// GenerateRefreshToken returns a URL-safe random opaque token.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating refresh token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
