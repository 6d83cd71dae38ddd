package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers profile routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.HandleGetProfile)
	r.Post("/profile", h.HandleUpdateProfile)
}
