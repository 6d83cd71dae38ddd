package forecasting

import (
	"context"
	"math/rand"
	"strings"
	"sync"
)

// HistoryProvider supplies the current price and recent price history of a coin.
type HistoryProvider interface {
	History(ctx context.Context, coinID string) (current float64, history []float64, err error)
}

var mockPrices = map[string]float64{
	"bitcoin":  65000,
	"ethereum": 3500,
	"solana":   140,
}

const (
	mockDefaultPrice  = 100
	mockHistoryLength = 30
	mockNoise         = 0.01
)

// MockHistoryProvider fabricates a noisy flat history around a fixed price.
type MockHistoryProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockHistoryProvider creates a provider seeded with seed.
func NewMockHistoryProvider(seed int64) *MockHistoryProvider {
	return &MockHistoryProvider{rng: rand.New(rand.NewSource(seed))}
}

// History implements HistoryProvider.
func (p *MockHistoryProvider) History(_ context.Context, coinID string) (float64, []float64, error) {
	current, ok := mockPrices[strings.ToLower(coinID)]
	if !ok {
		current = mockDefaultPrice
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	history := make([]float64, mockHistoryLength)
	for i := range history {
		history[i] = current * (1 + p.rng.NormFloat64()*mockNoise)
	}

	return current, history, nil
}
