package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/aristath/cryptoadvisor/internal/clients/coingecko"
	testingpkg "github.com/aristath/cryptoadvisor/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuotes struct {
	ids []string
	err error
}

func (s *stubQuotes) GetPrices(_ context.Context, ids []string) (map[string]coingecko.Quote, error) {
	s.ids = ids
	return map[string]coingecko.Quote{}, s.err
}

func TestQuoteWarmupJob(t *testing.T) {
	quotes := &stubQuotes{}
	job := NewQuoteWarmupJob(quotes, zerolog.Nop())

	assert.Equal(t, "quote_warmup", job.Name())
	require.NoError(t, job.Run())
	assert.Equal(t, []string{"bitcoin", "ethereum", "solana"}, quotes.ids)

	quotes.err = coingecko.ErrUnavailable
	err := job.Run()
	assert.True(t, errors.Is(err, coingecko.ErrUnavailable))
}

func TestWALCheckpointJob(t *testing.T) {
	db := testingpkg.NewTestDB(t, "advisor")
	job := NewWALCheckpointJob(db, zerolog.Nop())

	assert.Equal(t, "wal_checkpoint", job.Name())
	assert.NoError(t, job.Run())
}
