// Package handlers provides the HTTP handler for the chat endpoint.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aristath/cryptoadvisor/internal/modules/chat"
	"github.com/rs/zerolog"
)

// Handler handles chat HTTP requests
type Handler struct {
	service *chat.Service
	log     zerolog.Logger
}

// NewHandler creates a new chat handler
func NewHandler(service *chat.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Request is the body of POST /chat.
type Request struct {
	Message string `json:"message"`
}

// HandleChat handles POST /chat
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Chat(r.Context(), req.Message)
	if err != nil {
		h.log.Error().Err(err).Msg("Chat failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
