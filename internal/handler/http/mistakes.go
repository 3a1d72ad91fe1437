package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

func (h *Handler) createMistake(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var mistake models.Mistake
	if err := json.NewDecoder(r.Body).Decode(&mistake); err != nil {
		log.Err(err).Str("func", "*Handler.createMistake").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	mistake.UserID = userID

	created, err := h.services.PlaybookService.CreateMistake(ctx, mistake)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createMistake").Msg("error creating mistake")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listMistakes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	mistakes, err := h.services.PlaybookService.ListMistakes(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMistakes").Msg("error listing mistakes")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, mistakes, http.StatusOK)
}

func (h *Handler) repeatMistake(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	mistakeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	bumped, err := h.services.PlaybookService.RepeatMistake(ctx, userID, mistakeID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.repeatMistake").Msg("error bumping mistake frequency")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, bumped, http.StatusOK)
}

func (h *Handler) deleteMistake(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	mistakeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.PlaybookService.DeleteMistake(ctx, userID, mistakeID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteMistake").Msg("error deleting mistake")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
