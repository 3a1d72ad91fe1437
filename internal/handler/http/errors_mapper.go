package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/trade-ledger-pro/internal/service"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrNoActiveChallenge:      http.StatusBadRequest,
	service.ErrChallengeExpired:       http.StatusBadRequest,
	service.ErrCodeMismatch:           http.StatusBadRequest,
	service.ErrDeliveryFailed:         http.StatusBadGateway,
	service.ErrEmailAlreadyRegistered: http.StatusConflict,
	service.ErrUnauthorized:           http.StatusUnauthorized,

	service.ErrAssistantUnavailable: http.StatusServiceUnavailable,

	store.ErrNoUserWasFound:  http.StatusNotFound,
	store.ErrTradeNotFound:   http.StatusNotFound,
	store.ErrGoalNotFound:    http.StatusNotFound,
	store.ErrMistakeNotFound: http.StatusNotFound,
	store.ErrRuleNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the mapped status with a generic message. Internal
// errors never leak their details to the client.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	http.Error(w, message, status)
}
