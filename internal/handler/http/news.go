package http

import (
	"net/http"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/internal/utils"
)

// headlines proxies the configured market news feed. An unconfigured feed
// yields an empty list, not an error, so the dashboard renders without it.
func (h *Handler) headlines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.news.Headlines(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.headlines").Msg("error fetching headlines")
		http.Error(w, "news feed unavailable", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}
