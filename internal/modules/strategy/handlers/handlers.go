// Package handlers provides HTTP handlers for strategy recommendations.
package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/cryptoadvisor/internal/modules/strategy"
	"github.com/rs/zerolog"
)

// Handler handles strategy HTTP requests
type Handler struct {
	service *strategy.Service
	log     zerolog.Logger
}

// NewHandler creates a new strategy handler
func NewHandler(service *strategy.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "strategy").Logger(),
	}
}

// HandleGetStrategies handles GET /portfolio/strategies
func (h *Handler) HandleGetStrategies(w http.ResponseWriter, r *http.Request) {
	strategies, err := h.service.Strategies(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build strategies")
		http.Error(w, "Failed to build strategies", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": strategies,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"balance":   strategy.MockBalance,
		},
	})
}

// RebalancingRequest is the body of POST /portfolio/rebalancing.
type RebalancingRequest struct {
	Current strategy.Allocation `json:"current"`
	Target  strategy.Allocation `json:"target"`
}

// HandleRebalancing handles POST /portfolio/rebalancing
func (h *Handler) HandleRebalancing(w http.ResponseWriter, r *http.Request) {
	var req RebalancingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Target) == 0 {
		http.Error(w, "target allocation is required", http.StatusBadRequest)
		return
	}

	signals := strategy.RebalancingSignals(req.Current, req.Target)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": signals,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"threshold": strategy.RebalanceThreshold,
		},
	})
}

// HandleGetDCAPlan handles GET /portfolio/dca?risk=&balance=
func (h *Handler) HandleGetDCAPlan(w http.ResponseWriter, r *http.Request) {
	risk := r.URL.Query().Get("risk")
	if risk == "" {
		risk = string(strategy.RiskMedium)
	}

	balance := float64(strategy.MockBalance)
	if raw := r.URL.Query().Get("balance"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			http.Error(w, "balance must be a finite non-negative number", http.StatusBadRequest)
			return
		}
		balance = parsed
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": strategy.NewDCAPlan(risk, balance),
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
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
