package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is deliberately generic: an unknown email and a
	// wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNoActiveChallenge      = errors.New("no active verification challenge")
	ErrChallengeExpired       = errors.New("verification code expired")
	ErrCodeMismatch           = errors.New("verification code mismatch")
	ErrDeliveryFailed         = errors.New("verification code delivery failed")
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	ErrUnauthorized        = errors.New("unauthorized")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
