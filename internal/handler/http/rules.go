package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

func (h *Handler) createRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var rule models.TradingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		log.Err(err).Str("func", "*Handler.createRule").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	rule.UserID = userID

	created, err := h.services.PlaybookService.CreateRule(ctx, rule)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRule").Msg("error creating rule")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	rules, err := h.services.PlaybookService.ListRules(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRules").Msg("error listing rules")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, rules, http.StatusOK)
}

func (h *Handler) updateRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ruleID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var rule models.TradingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		log.Err(err).Str("func", "*Handler.updateRule").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	rule.ID = ruleID
	rule.UserID = userID

	updated, err := h.services.PlaybookService.UpdateRule(ctx, rule)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRule").Msg("error updating rule")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ruleID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.PlaybookService.DeleteRule(ctx, userID, ruleID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRule").Msg("error deleting rule")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
