// Package coingecko provides spot price fetching from the CoinGecko public API
// with a persistent cache-first layer.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aristath/cryptoadvisor/internal/clientdata"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public CoinGecko v3 endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// ErrUnavailable is returned when neither the API nor the cache can answer.
var ErrUnavailable = errors.New("market data unavailable")

// Quote is the USD spot price and 24 hour change of one coin.
type Quote struct {
	USD          float64 `json:"usd" msgpack:"usd"`
	USD24hChange float64 `json:"usd_24h_change" msgpack:"usd_24h_change"`
}

// Client for api.coingecko.com
type Client struct {
	baseURL     string
	client      *http.Client
	log         zerolog.Logger
	cacheRepo   *clientdata.Repository
	cacheTTL    time.Duration
	maxAttempts int
	backoff     time.Duration
}

// NewClient creates a new CoinGecko client.
// cacheRepo is optional - if nil, caching is disabled.
func NewClient(baseURL string, cacheRepo *clientdata.Repository, cacheTTL time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if cacheTTL <= 0 {
		cacheTTL = clientdata.TTLMarketQuote
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      &http.Client{Timeout: 10 * time.Second},
		log:         log.With().Str("client", "coingecko").Logger(),
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		maxAttempts: 3,
		backoff:     500 * time.Millisecond,
	}
}

// GetPrices returns quotes keyed by coin id (e.g. "bitcoin").
// Fresh cache entries are served without a network call. If the API fails and
// every requested id has a cached entry, stale quotes are returned instead.
func (c *Client) GetPrices(ctx context.Context, ids []string) (map[string]Quote, error) {
	if len(ids) == 0 {
		return map[string]Quote{}, nil
	}

	if cached, ok := c.fromCache(ids, true); ok {
		c.log.Debug().Strs("ids", ids).Msg("Cache hit")
		return cached, nil
	}

	quotes, err := c.fetch(ctx, ids)
	if err != nil {
		if stale, ok := c.fromCache(ids, false); ok {
			c.log.Warn().Err(err).Strs("ids", ids).Msg("API failed, using stale cached quotes")
			return stale, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if c.cacheRepo != nil {
		for id, quote := range quotes {
			if err := c.cacheRepo.Store(clientdata.TableMarketQuotes, id, quote, c.cacheTTL); err != nil {
				c.log.Warn().Err(err).Str("coin", id).Msg("Failed to cache quote")
			}
		}
	}

	c.log.Info().Int("coins", len(quotes)).Msg("Fetched quotes")

	return quotes, nil
}

// fetch calls /simple/price, retrying transport errors and 5xx responses
// with a linear backoff.
func (c *Client) fetch(ctx context.Context, ids []string) (map[string]Quote, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")
	endpoint := c.baseURL + "/simple/price?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * c.backoff):
			}
		}

		quotes, retryable, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			return quotes, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		c.log.Debug().Err(err).Int("attempt", attempt).Msg("Retrying price request")
	}

	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) (map[string]Quote, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode >= 500, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var raw map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, false, fmt.Errorf("failed to parse response: %w", err)
	}

	quotes := make(map[string]Quote, len(raw))
	for id, fields := range raw {
		quotes[id] = Quote{
			USD:          fields["usd"],
			USD24hChange: fields["usd_24h_change"],
		}
	}

	return quotes, false, nil
}

// fromCache returns quotes for every id or false if any id is missing.
func (c *Client) fromCache(ids []string, freshOnly bool) (map[string]Quote, bool) {
	if c.cacheRepo == nil {
		return nil, false
	}

	quotes := make(map[string]Quote, len(ids))
	for _, id := range ids {
		var q Quote
		var (
			found bool
			err   error
		)
		if freshOnly {
			found, err = c.cacheRepo.GetIfFresh(clientdata.TableMarketQuotes, id, &q)
		} else {
			found, err = c.cacheRepo.Get(clientdata.TableMarketQuotes, id, &q)
		}
		if err != nil {
			c.log.Warn().Err(err).Str("coin", id).Msg("Failed to read cached quote")
			return nil, false
		}
		if !found {
			return nil, false
		}
		quotes[id] = q
	}

	return quotes, true
}
