// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/store"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

func (h *Handler) createTrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var trade models.Trade
	if err := json.NewDecoder(r.Body).Decode(&trade); err != nil {
		log.Err(err).Str("func", "*Handler.createTrade").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	trade.UserID = userID

	created, err := h.services.JournalService.CreateTrade(ctx, trade)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTrade").Msg("error creating trade")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getTrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tradeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	trade, err := h.services.JournalService.GetTrade(ctx, userID, tradeID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTrade").Msg("error getting trade")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, trade, http.StatusOK)
}

func (h *Handler) listTrades(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter, err := tradeFilterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trades, err := h.services.JournalService.ListTrades(ctx, userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTrades").Msg("error listing trades")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, trades, http.StatusOK)
}

func (h *Handler) updateTrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tradeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var trade models.Trade
	if err := json.NewDecoder(r.Body).Decode(&trade); err != nil {
		log.Err(err).Str("func", "*Handler.updateTrade").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	trade.ID = tradeID
	trade.UserID = userID

	updated, err := h.services.JournalService.UpdateTrade(ctx, trade)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTrade").Msg("error updating trade")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tradeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.JournalService.DeleteTrade(ctx, userID, tradeID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTrade").Msg("error deleting trade")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleStar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tradeID, err := idFromURL(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	toggled, err := h.services.JournalService.ToggleStar(ctx, userID, tradeID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleStar").Msg("error toggling star")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, toggled, http.StatusOK)
}

func idFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// tradeFilterFromQuery builds a store.TradeFilter from the list endpoint's
// optional query parameters: from, to (RFC 3339 or "2006-01-02"), symbol,
// status, type, starred.
func tradeFilterFromQuery(r *http.Request) (store.TradeFilter, error) {
	var filter store.TradeFilter
	query := r.URL.Query()

	if raw := query.Get("from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return store.TradeFilter{}, err
		}
		filter.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return store.TradeFilter{}, err
		}
		filter.To = &to
	}

	filter.Symbol = query.Get("symbol")
	filter.Status = models.TradeStatus(query.Get("status"))
	filter.TradeType = models.TradeType(query.Get("type"))

	if raw := query.Get("starred"); raw != "" {
		starred, err := strconv.ParseBool(raw)
		if err != nil {
			return store.TradeFilter{}, err
		}
		filter.Starred = &starred
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
