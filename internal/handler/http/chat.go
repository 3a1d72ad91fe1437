package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.chat").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	reply, err := h.services.AssistantService.Chat(ctx, userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "empty message", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrAssistantUnavailable):
			log.Debug().Msg("assistant not configured")
			http.Error(w, "assistant is not configured", http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Str("func", "*Handler.chat").Msg("error answering chat message")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ChatResponse{Reply: reply}, http.StatusOK)
}
