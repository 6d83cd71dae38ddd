package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/cryptoadvisor/internal/modules/market"
	"github.com/rs/zerolog"
)

// QuoteWarmupJob refreshes the quote cache for the default coins so that the
// first request after a quiet period does not wait on the upstream API.
type QuoteWarmupJob struct {
	quotes  market.QuoteSource
	ids     []string
	timeout time.Duration
	log     zerolog.Logger
}

// NewQuoteWarmupJob creates a new QuoteWarmupJob
func NewQuoteWarmupJob(quotes market.QuoteSource, log zerolog.Logger) *QuoteWarmupJob {
	return &QuoteWarmupJob{
		quotes:  quotes,
		ids:     market.DefaultCoinIDs,
		timeout: 30 * time.Second,
		log:     log.With().Str("job", "quote_warmup").Logger(),
	}
}

// Name returns the job name
func (j *QuoteWarmupJob) Name() string {
	return "quote_warmup"
}

// Run fetches quotes for the default coins.
func (j *QuoteWarmupJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	quotes, err := j.quotes.GetPrices(ctx, j.ids)
	if err != nil {
		return fmt.Errorf("failed to warm quote cache: %w", err)
	}

	j.log.Debug().Int("quotes", len(quotes)).Msg("Quote cache warmed")
	return nil
}
