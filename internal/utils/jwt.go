// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 session JWT.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): the server-side session row ID, making the token revocable
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	issuer          - identifier of the token issuer (e.g. service name)
//	userID          - ID of the user the token is issued for
//	sessionID       - ID of the persisted session row (becomes the jti claim)
//	sessionDuration - how long the session remains valid
//	signKey         - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
func GenerateJWTToken(issuer string, userID int64, sessionID string, sessionDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || sessionID == "" || sessionDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID, SessionID: sessionID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//   - ID (jti) claim presence, yielding the SessionID
//
// Parameters:
//
//	tokenString   - the raw signed JWT string to validate and parse
//	tokenSignKey  - secret key used to verify the token signature
//	tokenIssuer   - expected issuer value to validate against the iss claim
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object, UserID and SessionID
//	error        - non-nil if validation fails or claims are missing
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to UserID: %w", err)
	}

	if parsed.RegisteredClaims.ID == "" {
		return models.Token{}, errors.New("empty session ID claim error")
	}

	return models.Token{Token: token, UserID: userID, SessionID: parsed.RegisteredClaims.ID}, nil
}
