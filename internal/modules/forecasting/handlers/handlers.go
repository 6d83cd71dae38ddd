// Package handlers provides HTTP handlers for price forecasts.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/cryptoadvisor/internal/modules/forecasting"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxDays = 365

// Handler handles forecasting HTTP requests
type Handler struct {
	service *forecasting.Service
	log     zerolog.Logger
}

// NewHandler creates a new forecasting handler
func NewHandler(service *forecasting.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "forecasting").Logger(),
	}
}

// HandleGetForecast handles GET /market/forecast/{coinID}
func (h *Handler) HandleGetForecast(w http.ResponseWriter, r *http.Request) {
	coinID := chi.URLParam(r, "coinID")
	if coinID == "" {
		http.Error(w, "coin id is required", http.StatusBadRequest)
		return
	}

	days := forecasting.DefaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed > maxDays {
			http.Error(w, "days must be an integer up to 365", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	forecast, err := h.service.Forecast(r.Context(), coinID, days)
	if err != nil {
		h.log.Error().Err(err).Str("coin_id", coinID).Msg("Failed to build forecast")
		http.Error(w, "Failed to build forecast", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": forecast,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"band":      forecasting.BandMethod,
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
