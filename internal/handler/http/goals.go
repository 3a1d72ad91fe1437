package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
	"github.com/MKhiriev/trade-ledger-pro/models"
)

func (h *Handler) upsertGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var goal models.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Err(err).Str("func", "*Handler.upsertGoal").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	goal.UserID = userID

	stored, err := h.services.GoalService.UpsertGoal(ctx, goal)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertGoal").Msg("error upserting goal")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

// getGoal returns the goal for the month given by the month and year query
// parameters, defaulting to the current month.
func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	month, year, err := monthYearFromQuery(r)
	if err != nil {
		http.Error(w, "invalid month/year", http.StatusBadRequest)
		return
	}

	goal, err := h.services.GoalService.GetGoal(ctx, userID, month, year)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getGoal").Msg("goal lookup failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	goals, err := h.services.GoalService.ListGoals(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listGoals").Msg("error listing goals")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, goals, http.StatusOK)
}

// monthYearFromQuery reads the month and year query parameters, defaulting
// both to the current local month when absent.
func monthYearFromQuery(r *http.Request) (int, int, error) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	query := r.URL.Query()
	if raw := query.Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		month = parsed
	}
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		year = parsed
	}

	return month, year, nil
}
