package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers knowledge routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/knowledge/search", h.HandleSearch)
}
