package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers forecasting routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/market/forecast/{coinID}", h.HandleGetForecast)
}
