package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

// sessionCookieName is the HttpOnly cookie carrying the session JWT.
const sessionCookieName = "session"

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email          string                `json:"email"`
	Password       string                `json:"password"`
	DeliveryMethod models.DeliveryMethod `json:"deliveryMethod"`
}

type verifyOtpRequest struct {
	UserID int64  `json:"userId"`
	Code   string `json:"code"`
}

type resendOtpRequest struct {
	UserID int64 `json:"userId"`
	// DeliveryMethod lets the user switch channels on resend; empty keeps
	// the channel of the previous challenge.
	DeliveryMethod models.DeliveryMethod `json:"deliveryMethod"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Phone: req.Phone}
	registeredUser, err := h.services.AuthService.Signup(ctx, user, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			http.Error(w, "email already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Login(ctx, req.Email, req.Password, req.DeliveryMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Msg("invalid credentials")
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrDeliveryFailed):
			log.Err(err).Msg("passcode delivery failed")
			http.Error(w, "passcode delivery failed", http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) verifyOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req verifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.VerifyOtp(ctx, req.UserID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveChallenge):
			log.Debug().Msg("no active challenge")
			http.Error(w, "no active verification code, request a new one", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrChallengeExpired):
			log.Debug().Msg("challenge expired")
			http.Error(w, "verification code expired, request a new one", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrCodeMismatch):
			log.Debug().Msg("code mismatch")
			http.Error(w, "wrong verification code", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during verification")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, sessionCookie(token))

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.VerifyResponse{User: user}, http.StatusOK)
}

func (h *Handler) resendOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req resendOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.ResendOtp(ctx, req.UserID, req.DeliveryMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Msg("unknown user on resend")
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrDeliveryFailed):
			log.Err(err).Msg("passcode delivery failed")
			http.Error(w, "passcode delivery failed", http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during resend")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, sessionID); err != nil {
		log.Err(err).Msg("logout failed")
		respondError(w, err)
		return
	}

	http.SetCookie(w, expiredSessionCookie())
	w.WriteHeader(http.StatusNoContent)
}

// me answers GET /api/auth/me with the profile behind the session cookie.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Profile(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.me").Msg("error loading profile")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// sessionCookie wraps the signed session JWT in an HttpOnly cookie scoped
// to the whole API. The cookie expires together with the token.
func sessionCookie(token models.Token) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	return cookie
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	}
}
