package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates the JWT inside it via
// [service.AuthService.Authenticate] (signature, issuer, expiry, and the
// continued existence of the session row), and on success stores the
// authenticated user's ID and session ID in the request context under
// [utils.UserIDCtxKey] and [utils.SessionIDCtxKey] before delegating to
// the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the cookie is
// absent or empty, or when the token inside it cannot be trusted. All
// rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthorized):
				log.Debug().Msg("session rejected")
			default:
				log.Err(err).Msg("error occurred during session validation")
			}
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, token.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest extracts the signed session token from the request's
// session cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] when the cookie is absent.
//   - [ErrEmptySessionCookie] when the cookie exists with an empty value.
func sessionFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}
	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}

	return cookie.Value, nil
}
