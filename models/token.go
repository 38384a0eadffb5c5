// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an observer device.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. The "sub" claim carries the observer ID.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation sent in the
	// Authorization header.
	SignedString string `json:"-"`

	// ObserverID is a cached copy of the "sub" claim.
	ObserverID string `json:"-"`
}

// GetObserverID extracts the observer identifier from the "sub" claim.
func (t *Token) GetObserverID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting ObserverID from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("empty subject in token")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
