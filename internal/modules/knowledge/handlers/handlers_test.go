package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/aristath/cryptoadvisor/internal/modules/knowledge"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, seed bool) http.Handler {
	idx := knowledge.NewIndex(knowledge.NewHashEmbedder(), zerolog.Nop())
	if seed {
		require.NoError(t, knowledge.Seed(context.Background(), idx))
	}

	router := chi.NewRouter()
	NewHandler(idx, zerolog.Nop()).RegisterRoutes(router)
	return router
}

func TestHandleSearch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/knowledge/search?q="+url.QueryEscape("bitcoin store of value"), nil)
	w := httptest.NewRecorder()
	newRouter(t, true).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data     []knowledge.Result     `json:"data"`
		Metadata map[string]interface{} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, knowledge.DefaultK)
	assert.Equal(t, knowledge.SeedDocuments[2], response.Data[0].Text)
	assert.Equal(t, float64(len(knowledge.SeedDocuments)), response.Metadata["documents"])
}

func TestHandleSearch_EmptyIndex(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/knowledge/search?q=solana&k=3", nil)
	w := httptest.NewRecorder()
	newRouter(t, false).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []knowledge.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Data)
}

func TestHandleSearch_BadRequests(t *testing.T) {
	for _, query := range []string{"", "?q=", "?q=btc&k=0", "?q=btc&k=11", "?q=btc&k=two"} {
		req := httptest.NewRequest(http.MethodGet, "/knowledge/search"+query, nil)
		w := httptest.NewRecorder()
		newRouter(t, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}
