package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/service"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
)

// summary answers GET /api/analytics/summary. Optional query parameters
// narrow the window: day=2006-01-02, or month and year together.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := analyticsQueryFromRequest(r)
	summary, err := h.services.AnalyticsService.Summary(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.summary").Msg("error computing summary")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) risk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	risk, err := h.services.AnalyticsService.Risk(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.risk").Msg("error computing risk metrics")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, risk, http.StatusOK)
}

func (h *Handler) distribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	distribution, err := h.services.AnalyticsService.Distribution(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.distribution").Msg("error computing distribution")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, distribution, http.StatusOK)
}

func (h *Handler) streaks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	streaks, err := h.services.AnalyticsService.Streaks(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.streaks").Msg("error computing streaks")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, streaks, http.StatusOK)
}

// goalProgress answers GET /api/analytics/goal-progress for the month given
// by the month and year query parameters, defaulting to the current month.
func (h *Handler) goalProgress(w http.ResponseWriter, r *http.Request) {
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

	progress, err := h.services.AnalyticsService.GoalProgress(ctx, userID, month, year)
	if err != nil {
		log.Err(err).Str("func", "*Handler.goalProgress").Msg("error computing goal progress")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

func analyticsQueryFromRequest(r *http.Request) service.AnalyticsQuery {
	values := r.URL.Query()

	var query service.AnalyticsQuery
	query.Day = values.Get("day")
	if raw := values.Get("month"); raw != "" {
		query.Month = atoiOrZero(raw)
	}
	if raw := values.Get("year"); raw != "" {
		query.Year = atoiOrZero(raw)
	}

	return query
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
