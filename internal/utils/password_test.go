// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-vmind/models"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesBcrypt(t *testing.T) {
	cred, err := HashPassword("s3cret!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cred.Scheme != models.SchemeBcrypt {
		t.Errorf("expected bcrypt scheme, got %q", cred.Scheme)
	}
	if cred.Value == "s3cret!" {
		t.Error("password must not be stored as is")
	}
	if cred.IsLegacy() {
		t.Error("bcrypt credential must not be legacy")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	if _, err := HashPassword("s3cret!", bcrypt.MaxCost+1); err == nil {
		t.Fatal("expected error for invalid cost")
	}
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	tests := []struct {
		name     string
		cred     models.Credential
		password string
		want     bool
		wantErr  bool
	}{
		{name: "bcrypt match", cred: hashed, password: "s3cret!", want: true},
		{name: "bcrypt mismatch", cred: hashed, password: "wrong", want: false},
		{name: "plaintext match", cred: models.Credential{Scheme: models.SchemePlaintext, Value: "legacy"}, password: "legacy", want: true},
		{name: "plaintext mismatch", cred: models.Credential{Scheme: models.SchemePlaintext, Value: "legacy"}, password: "Legacy", want: false},
		{name: "malformed bcrypt", cred: models.Credential{Scheme: models.SchemeBcrypt, Value: "not-a-hash"}, password: "x", wantErr: true},
		{name: "unknown scheme", cred: models.Credential{Scheme: "md5", Value: "x"}, password: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.cred, tt.password)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVerifyPassword_UnknownSchemeSentinel(t *testing.T) {
	_, err := VerifyPassword(models.Credential{Scheme: "md5"}, "x")
	if !errors.Is(err, ErrUnknownCredentialScheme) {
		t.Errorf("expected ErrUnknownCredentialScheme, got %v", err)
	}
}
