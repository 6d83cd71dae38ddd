package forecasting

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_FallbackWithoutHistory(t *testing.T) {
	for _, history := range [][]float64{nil, {100}} {
		points := Project(100, history, DefaultDays)
		require.Len(t, points, DefaultDays)

		assert.Equal(t, 1, points[0].Day)
		assert.InDelta(t, 100*1.001, points[0].Price, 1e-9)
		assert.InDelta(t, 100*1.007, points[6].Price, 1e-9)
		for _, p := range points {
			assert.Nil(t, p.Lower)
			assert.Nil(t, p.Upper)
		}
	}
}

func TestProject_LinearHistoryExtrapolatesSlope(t *testing.T) {
	history := []float64{10, 12, 14, 16}

	points := Project(16, history, DefaultDays)
	require.Len(t, points, DefaultDays)

	for i, p := range points {
		expected := 16 + 2*float64(i+1)
		assert.Equal(t, i+1, p.Day)
		assert.InDelta(t, expected, p.Price, 1e-9)
		require.NotNil(t, p.Lower)
		require.NotNil(t, p.Upper)
		assert.Equal(t, p.Price*0.95, *p.Lower)
		assert.Equal(t, p.Price*1.05, *p.Upper)
	}
}

func TestProject_NonPositiveDays(t *testing.T) {
	assert.Empty(t, Project(100, []float64{1, 2, 3}, 0))
	assert.Empty(t, Project(100, nil, -3))
}

func TestService_Forecast(t *testing.T) {
	svc := NewService(NewMockHistoryProvider(1), zerolog.Nop())

	forecast, err := svc.Forecast(context.Background(), "bitcoin", 3)
	require.NoError(t, err)

	assert.Equal(t, "bitcoin", forecast.CoinID)
	assert.Equal(t, 65000.0, forecast.CurrentPrice)
	require.Len(t, forecast.Forecast, 3)
	assert.NotNil(t, forecast.Forecast[0].Lower)
}

func TestMockHistoryProvider_UnknownCoin(t *testing.T) {
	current, history, err := NewMockHistoryProvider(1).History(context.Background(), "dogecoin")
	require.NoError(t, err)

	assert.Equal(t, 100.0, current)
	assert.Len(t, history, 30)
}
