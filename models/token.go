// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors for authentication
// flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access. The "sub" claim
// carries the user ID and the "jti" claim carries the server-side session
// ID that makes the token revocable.
//
// SignedString holds the compact serialized form ready to be set as the
// session cookie value.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Internal server-side cache; never serialized.
	UserID int64 `json:"-"`

	// SessionID is the session row identifier extracted from the "jti"
	// claim. Never serialized.
	SessionID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
