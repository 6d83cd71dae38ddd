// Package handlers provides HTTP handlers for the investor profile.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aristath/cryptoadvisor/internal/modules/profile"
	"github.com/rs/zerolog"
)

// Handler handles profile HTTP requests
type Handler struct {
	service *profile.Service
	log     zerolog.Logger
}

// NewHandler creates a new profile handler
func NewHandler(service *profile.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "profile").Logger(),
	}
}

// HandleGetProfile handles GET /profile
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get profile")
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// HandleUpdateProfile handles POST /profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update profile.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Update(r.Context(), update); err != nil {
		if errors.Is(err, profile.ErrInvalidProfile) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Failed to update profile")
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Profile updated successfully",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
