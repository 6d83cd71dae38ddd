package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aristath/cryptoadvisor/internal/clientdata"
	testingpkg "github.com/aristath/cryptoadvisor/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priceResponse = `{"bitcoin":{"usd":65000.5,"usd_24h_change":2.5},"ethereum":{"usd":3500,"usd_24h_change":-1.25}}`

func newTestClient(t *testing.T, serverURL string, withCache bool) *Client {
	t.Helper()
	var cache *clientdata.Repository
	if withCache {
		db := testingpkg.NewTestDB(t, "advisor")
		cache = clientdata.NewRepository(db.Conn())
	}
	c := NewClient(serverURL, cache, time.Minute, zerolog.Nop())
	c.backoff = time.Millisecond
	return c
}

func TestGetPrices_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "true", r.URL.Query().Get("include_24hr_change"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(priceResponse))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, false)
	quotes, err := client.GetPrices(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)

	assert.Equal(t, Quote{USD: 65000.5, USD24hChange: 2.5}, quotes["bitcoin"])
	assert.Equal(t, Quote{USD: 3500, USD24hChange: -1.25}, quotes["ethereum"])
}

func TestGetPrices_EmptyIDs(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0", false)
	quotes, err := client.GetPrices(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestGetPrices_ServesFreshCache(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(priceResponse))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, true)
	ids := []string{"bitcoin", "ethereum"}

	_, err := client.GetPrices(context.Background(), ids)
	require.NoError(t, err)
	quotes, err := client.GetPrices(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 65000.5, quotes["bitcoin"].USD)
}

func TestGetPrices_NonOKStatusIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, false)
	_, err := client.GetPrices(context.Background(), []string{"bitcoin"})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetPrices_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(priceResponse))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, false)
	quotes, err := client.GetPrices(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, 65000.5, quotes["bitcoin"].USD)
}

func TestGetPrices_StaleCacheFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, true)
	require.NoError(t, client.cacheRepo.Store(clientdata.TableMarketQuotes, "solana", Quote{USD: 140}, -time.Hour))

	quotes, err := client.GetPrices(context.Background(), []string{"solana"})
	require.NoError(t, err)
	assert.Equal(t, 140.0, quotes["solana"].USD)

	_, err = client.GetPrices(context.Background(), []string{"solana", "cardano"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
