// Package market exposes spot prices from the configured quote source.
package market

import (
	"context"
	"strings"

	"github.com/aristath/cryptoadvisor/internal/clients/coingecko"
	"github.com/aristath/cryptoadvisor/internal/utils"
)

// DefaultCoinIDs are the coins quoted when the caller names none.
var DefaultCoinIDs = []string{"bitcoin", "ethereum", "solana"}

// QuoteSource fetches spot quotes keyed by coin id.
type QuoteSource interface {
	GetPrices(ctx context.Context, ids []string) (map[string]coingecko.Quote, error)
}

// ParseCoinIDs splits a comma-separated id list, lower-cases it and drops
// duplicates. An empty list yields DefaultCoinIDs.
func ParseCoinIDs(raw string) []string {
	parsed := utils.ParseCSV(raw)
	if len(parsed) == 0 {
		return append([]string(nil), DefaultCoinIDs...)
	}

	seen := make(map[string]bool, len(parsed))
	ids := make([]string, 0, len(parsed))
	for _, id := range parsed {
		id = strings.ToLower(id)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
