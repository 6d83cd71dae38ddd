package analytics

import (
	"context"
	"math/rand"
	"sync"
)

// MockReturnsProvider draws daily returns from a normal distribution.
// It stands in for a real portfolio until positions are tracked.
type MockReturnsProvider struct {
	mu     sync.Mutex
	rng    *rand.Rand
	count  int
	mean   float64
	stdDev float64
}

// NewMockReturnsProvider returns a provider of 100 draws from N(0.001, 0.02).
func NewMockReturnsProvider(seed int64) *MockReturnsProvider {
	return &MockReturnsProvider{
		rng:    rand.New(rand.NewSource(seed)),
		count:  100,
		mean:   0.001,
		stdDev: 0.02,
	}
}

// Returns implements ReturnsProvider.
func (p *MockReturnsProvider) Returns(_ context.Context) ([]float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	returns := make([]float64, p.count)
	for i := range returns {
		returns[i] = p.mean + p.rng.NormFloat64()*p.stdDev
	}
	return returns, nil
}
