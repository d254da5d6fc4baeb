// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialScheme tags how a stored password was produced.
type CredentialScheme string

const (
	// SchemeBcrypt marks a bcrypt hash.
	SchemeBcrypt CredentialScheme = "bcrypt"

	// SchemePlaintext marks an account created before hashing was introduced.
	// Such credentials are upgraded to bcrypt on the next successful login.
	SchemePlaintext CredentialScheme = "plaintext"
)

// Credential is a stored password in one of the supported schemes.
type Credential struct {
	Scheme CredentialScheme
	Value  string
}

// IsLegacy reports whether the credential still needs to be rehashed.
func (c Credential) IsLegacy() bool {
	return c.Scheme == SchemePlaintext
}
