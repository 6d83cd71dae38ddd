// Package handlers provides HTTP handlers for portfolio analytics.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/cryptoadvisor/internal/modules/analytics"
	"github.com/rs/zerolog"
)

// Handler handles analytics HTTP requests
type Handler struct {
	service *analytics.Service
	log     zerolog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(service *analytics.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "analytics").Logger(),
	}
}

// HandleGetPortfolioAnalytics handles GET /portfolio/analytics
func (h *Handler) HandleGetPortfolioAnalytics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.PortfolioMetrics(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute portfolio analytics")
		http.Error(w, "Failed to compute portfolio analytics", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": metrics,
		"metadata": map[string]interface{}{
			"timestamp":      time.Now().Format(time.RFC3339),
			"risk_free_rate": analytics.DefaultRiskFreeRate,
			"confidence":     analytics.DefaultConfidence,
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
