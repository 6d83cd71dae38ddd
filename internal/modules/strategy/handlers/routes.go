package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers strategy routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/portfolio/strategies", h.HandleGetStrategies)
	r.Post("/portfolio/rebalancing", h.HandleRebalancing)
	r.Get("/portfolio/dca", h.HandleGetDCAPlan)
}
