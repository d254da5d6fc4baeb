// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier copied from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the user identifier stored in the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", errors.New("empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Session is an access token paired with its single-use refresh token.
type Session struct {
	AccessToken  Token
	RefreshToken string
}

// ClientSession is the login state the CLI client keeps between runs.
type ClientSession struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	SavedAt      time.Time
}
