package clientdata

import "time"

// TTLMarketQuote is the default freshness window for cached spot quotes.
// It is overridable via MARKET_CACHE_TTL_SECONDS.
const TTLMarketQuote = 2 * time.Minute
