// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/trade-ledger-pro/internal/config"
	"github.com/MKhiriev/trade-ledger-pro/internal/delivery"
	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// authService is the concrete implementation of [AuthService].
//
// Login is a two-step flow. Step one checks the password and issues a
// passcode challenge; step two verifies the passcode and creates a session.
// The session is a JWT in an HttpOnly cookie whose jti claim points at a
// server-side session row, so logout can revoke it.
type authService struct {
	userRepository    store.UserRepository
	otpRepository     store.OtpRepository
	sessionRepository store.SessionRepository

	sender *delivery.Sender
	uuids  *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// sessionDuration controls how long a verified session remains valid.
	sessionDuration time.Duration

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and delivery sender, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, sender *delivery.Sender, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    storages.UserRepository,
		otpRepository:     storages.OtpRepository,
		sessionRepository: storages.SessionRepository,
		sender:            sender,
		uuids:             utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		sessionDuration:   cfg.SessionDuration,
		now:               time.Now,
		logger:            logger,
	}
}

// Signup creates a new user account with a bcrypt-hashed password.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [ErrInvalidDataProvided] if name, email, or password is empty.
//   - [ErrEmailAlreadyRegistered] if the email is already taken.
func (a *authService) Signup(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Name == "" || user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login runs step one of the flow: it verifies the password and issues a
// passcode challenge over the requested channel. Issuing a new challenge
// invalidates every previous one, so only the latest code verifies.
//
// An unknown email and a wrong password both return [ErrInvalidCredentials];
// the caller cannot tell which emails are registered.
//
// When the selected channel has no credentials configured the service
// degrades to demo mode: the challenge is still persisted, nothing is sent,
// and the passcode is returned in the response for the client to display.
func (a *authService) Login(ctx context.Context, email, password string, method models.DeliveryMethod) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Int64("id", user.UserID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	method = a.resolveMethod(user, method)

	return a.issueChallenge(ctx, user, method)
}

// ResendOtp issues a fresh passcode for a user who already passed the
// password step. The new challenge invalidates any previous one. The caller
// may pick a different delivery channel on resend; with no method given the
// channel of the last challenge is reused, or e-mail when there is none.
// A user with no active challenge still receives a fresh code.
func (a *authService) ResendOtp(ctx context.Context, userID int64, method models.DeliveryMethod) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user lookup failed")
		return models.LoginResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if method == "" {
		method = models.DeliveryEmail
		if prev, err := a.otpRepository.FindActiveChallenge(ctx, user.UserID); err == nil {
			method = prev.DeliveryMethod
		}
	}
	method = a.resolveMethod(user, method)

	return a.issueChallenge(ctx, user, method)
}

// VerifyOtp runs step two of the flow: it checks the submitted code against
// the user's single active challenge and, on success, consumes the challenge
// and opens a session.
//
// Consumption is at-most-once: two concurrent verifications of the same code
// race on a conditional update and exactly one wins.
//
// Returns:
//   - [ErrNoActiveChallenge] when the user (or challenge) does not exist or
//     the challenge was already consumed.
//   - [ErrChallengeExpired] when the code is older than its validity window.
//   - [ErrCodeMismatch] when the code does not match.
func (a *authService) VerifyOtp(ctx context.Context, userID int64, code string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if userID == 0 || code == "" {
		return models.User{}, models.Token{}, ErrNoActiveChallenge
	}

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrNoActiveChallenge
		}
		log.Err(err).Msg("user lookup failed")
		return models.User{}, models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	challenge, err := a.otpRepository.FindActiveChallenge(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveChallenge) {
			return models.User{}, models.Token{}, ErrNoActiveChallenge
		}
		log.Err(err).Msg("challenge lookup failed")
		return models.User{}, models.Token{}, fmt.Errorf("challenge lookup failed: %w", err)
	}

	if challenge.Expired(a.now()) {
		// Spent so the same code cannot be retried after the window.
		_ = a.otpRepository.ConsumeChallenge(ctx, challenge.ID)
		return models.User{}, models.Token{}, ErrChallengeExpired
	}

	if challenge.Code != code {
		return models.User{}, models.Token{}, ErrCodeMismatch
	}

	if err := a.otpRepository.ConsumeChallenge(ctx, challenge.ID); err != nil {
		if errors.Is(err, store.ErrChallengeAlreadyConsumed) {
			return models.User{}, models.Token{}, ErrNoActiveChallenge
		}
		log.Err(err).Msg("challenge consumption failed")
		return models.User{}, models.Token{}, fmt.Errorf("challenge consumption failed: %w", err)
	}

	token, err := a.openSession(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Logout revokes the session row. The JWT in the client's cookie keeps its
// signature but no longer authenticates anything.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrUnauthorized
	}

	if err := a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// Authenticate validates a session cookie value: signature, issuer, expiry,
// and the continued existence of the session row its jti points at.
//
// Returns [ErrUnauthorized] for any token that cannot be trusted.
func (a *authService) Authenticate(ctx context.Context, signedToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if signedToken == "" {
		return models.Token{}, ErrUnauthorized
	}

	token, err := utils.ValidateAndParseJWTToken(signedToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrUnauthorized
	}

	session, err := a.sessionRepository.FindSession(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Token{}, ErrUnauthorized
		}
		log.Err(err).Msg("session lookup failed")
		return models.Token{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if a.now().After(session.ExpiresAt) || session.UserID != token.UserID {
		return models.Token{}, ErrUnauthorized
	}

	return token, nil
}

// Profile returns the account behind an authenticated session.
func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// resolveMethod falls back to e-mail when a phone login is requested by a
// user who has no phone number on record.
func (a *authService) resolveMethod(user models.User, method models.DeliveryMethod) models.DeliveryMethod {
	if method == models.DeliveryPhone && user.Phone != "" {
		return models.DeliveryPhone
	}
	return models.DeliveryEmail
}

func (a *authService) issueChallenge(ctx context.Context, user models.User, method models.DeliveryMethod) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	code, err := generateOtpCode()
	if err != nil {
		log.Err(err).Msg("passcode generation failed")
		return models.LoginResponse{}, fmt.Errorf("passcode generation failed: %w", err)
	}

	challenge := models.OtpChallenge{
		UserID:         user.UserID,
		Code:           code,
		DeliveryMethod: method,
		ExpiresAt:      a.now().Add(models.OtpTTL),
	}
	if _, err := a.otpRepository.CreateChallenge(ctx, challenge); err != nil {
		log.Err(err).Msg("challenge creation failed")
		return models.LoginResponse{}, fmt.Errorf("challenge creation failed: %w", err)
	}

	response := models.LoginResponse{
		UserID:      user.UserID,
		OtpMethod:   method,
		Destination: maskDestination(user, method),
	}

	if !a.sender.Configured(method) {
		log.Info().Int64("id", user.UserID).Str("method", string(method)).Msg("delivery channel unconfigured, demo mode")
		response.DemoMode = true
		response.DemoOtp = code
		return response, nil
	}

	if err := a.sender.SendOtp(ctx, user, method, code); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("passcode delivery failed")
		return models.LoginResponse{}, ErrDeliveryFailed
	}

	return response, nil
}

func (a *authService) openSession(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	session := models.Session{
		ID:        a.uuids.Generate(),
		UserID:    user.UserID,
		ExpiresAt: a.now().Add(a.sessionDuration),
	}
	session, err := a.sessionRepository.CreateSession(ctx, session)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		return models.Token{}, fmt.Errorf("session creation failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, session.ID, a.sessionDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// generateOtpCode draws a uniform six-digit passcode from crypto/rand.
// Leading zeros are preserved; "004213" is a valid code.
func generateOtpCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < models.OtpCodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", models.OtpCodeLength, n), nil
}

// maskDestination hides most of the contact the passcode went to.
// E-mail keeps the first rune and the domain; phone keeps the last four
// digits.
func maskDestination(user models.User, method models.DeliveryMethod) string {
	if method == models.DeliveryPhone {
		return maskPhone(user.Phone)
	}
	return maskEmail(user.Email)
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}

	local := []rune(email[:at])
	return string(local[0]) + strings.Repeat("*", 3) + email[at:]
}

func maskPhone(phone string) string {
	digits := len(phone)
	if digits <= 4 {
		return strings.Repeat("*", digits)
	}
	return strings.Repeat("*", digits-4) + phone[digits-4:]
}
