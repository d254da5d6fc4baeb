// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vmind/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnknownCredentialScheme is returned for credentials tagged with a
// scheme this build cannot verify.
var ErrUnknownCredentialScheme = errors.New("unknown credential scheme")

// HashPassword produces a bcrypt credential for password with the given cost.
func HashPassword(password string, cost int) (models.Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error hashing password: %w", err)
	}

	return models.Credential{Scheme: models.SchemeBcrypt, Value: string(hash)}, nil
}

// VerifyPassword reports whether password matches the stored credential.
// A mismatch is not an error; err is set only for malformed credentials.
func VerifyPassword(cred models.Credential, password string) (bool, error) {
	switch cred.Scheme {
	case models.SchemeBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(cred.Value), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("error comparing password hash: %w", err)
		}
		return true, nil
	case models.SchemePlaintext:
		return subtle.ConstantTimeCompare([]byte(cred.Value), []byte(password)) == 1, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCredentialScheme, cred.Scheme)
	}
}
