package forecasting

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Forecast is a projection for one coin.
type Forecast struct {
	CoinID       string          `json:"coin_id"`
	CurrentPrice float64         `json:"current_price"`
	Forecast     []ForecastPoint `json:"forecast"`
}

// Service produces forecasts from a history provider.
type Service struct {
	history HistoryProvider
	log     zerolog.Logger
}

// NewService creates a new forecasting service
func NewService(history HistoryProvider, log zerolog.Logger) *Service {
	return &Service{
		history: history,
		log:     log.With().Str("service", "forecasting").Logger(),
	}
}

// Forecast projects coinID days ahead.
func (s *Service) Forecast(ctx context.Context, coinID string, days int) (*Forecast, error) {
	current, history, err := s.history.History(ctx, coinID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", coinID, err)
	}

	s.log.Debug().
		Str("coin_id", coinID).
		Int("history", len(history)).
		Int("days", days).
		Msg("Projecting prices")

	return &Forecast{
		CoinID:       coinID,
		CurrentPrice: current,
		Forecast:     Project(current, history, days),
	}, nil
}
