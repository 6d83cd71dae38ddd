// Package handlers provides HTTP handlers for knowledge retrieval.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aristath/cryptoadvisor/internal/modules/knowledge"
	"github.com/rs/zerolog"
)

const maxK = 10

// Handler handles knowledge search HTTP requests
type Handler struct {
	index *knowledge.Index
	log   zerolog.Logger
}

// NewHandler creates a new knowledge handler
func NewHandler(index *knowledge.Index, log zerolog.Logger) *Handler {
	return &Handler{
		index: index,
		log:   log.With().Str("handler", "knowledge").Logger(),
	}
}

// HandleSearch handles GET /knowledge/search?q=&k=
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}

	k := knowledge.DefaultK
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxK {
			http.Error(w, "k must be between 1 and 10", http.StatusBadRequest)
			return
		}
		k = parsed
	}

	results, err := h.index.SearchDocuments(r.Context(), query, k)
	if err != nil {
		h.log.Error().Err(err).Str("query", query).Msg("Knowledge search failed")
		http.Error(w, "Knowledge search failed", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": results,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"documents": h.index.Len(),
			"k":         k,
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
