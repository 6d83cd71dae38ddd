// Package handlers provides HTTP handlers for market data.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/cryptoadvisor/internal/modules/market"
	"github.com/rs/zerolog"
)

const maxCoinIDs = 50

// Handler handles market data HTTP requests
type Handler struct {
	quotes market.QuoteSource
	log    zerolog.Logger
}

// NewHandler creates a new market data handler
func NewHandler(quotes market.QuoteSource, log zerolog.Logger) *Handler {
	return &Handler{
		quotes: quotes,
		log:    log.With().Str("handler", "market").Logger(),
	}
}

// HandleGetMarketData handles GET /market-data?ids=bitcoin,ethereum,solana
func (h *Handler) HandleGetMarketData(w http.ResponseWriter, r *http.Request) {
	ids := market.ParseCoinIDs(r.URL.Query().Get("ids"))
	if len(ids) > maxCoinIDs {
		http.Error(w, "too many ids", http.StatusBadRequest)
		return
	}

	quotes, err := h.quotes.GetPrices(r.Context(), ids)
	if err != nil || len(quotes) == 0 {
		h.log.Error().Err(err).Strs("ids", ids).Msg("Failed to fetch market data")
		http.Error(w, "Failed to fetch market data", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": quotes,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"ids":       ids,
		},
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
