// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer    = "trade-ledger-pro"
	testSignKey   = "test-sign-key"
	testSessionID = "0192c3a4-5b6c-7d8e-9f00-112233445566"
)

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, testSessionID, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, testSessionID, token.SessionID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		sessionID string
		duration  time.Duration
		signKey   string
	}{
		{name: "empty issuer", sessionID: testSessionID, duration: time.Hour, signKey: testSignKey},
		{name: "empty session ID", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, sessionID: testSessionID, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, sessionID: testSessionID, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 42, tt.sessionID, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, testSessionID, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, testSessionID, parsed.SessionID)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, testSessionID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "other-key", testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, testSessionID, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, "someone-else")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, testSessionID, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	require.Error(t, err)
}
