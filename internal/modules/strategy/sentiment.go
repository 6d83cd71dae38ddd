package strategy

import (
	"context"
	"fmt"
	"math"

	"github.com/aristath/cryptoadvisor/pkg/formulas"
)

// Sentiment summarizes the market mood.
type Sentiment struct {
	Score      int    `json:"score"`
	Label      string `json:"label"`
	Trend      string `json:"trend"`
	Suggestion string `json:"suggestion"`
}

// SentimentProvider reports current market sentiment.
type SentimentProvider interface {
	Sentiment(ctx context.Context) (Sentiment, error)
}

// StaticSentimentProvider always reports the same moderately greedy market.
type StaticSentimentProvider struct{}

// Sentiment implements SentimentProvider.
func (StaticSentimentProvider) Sentiment(context.Context) (Sentiment, error) {
	return Sentiment{
		Score:      65,
		Label:      "Greed",
		Trend:      "Bullish",
		Suggestion: "Market is showing strength. Continue DCA but avoid lump-sum entries at local peaks.",
	}, nil
}

// PriceSource supplies a chronological price series for sentiment scoring.
type PriceSource interface {
	History(ctx context.Context, coinID string) (current float64, history []float64, err error)
}

// RSIPeriod is the lookback of the indicator sentiment provider.
const RSIPeriod = 14

// IndicatorSentimentProvider scores sentiment with the RSI of a reference coin.
type IndicatorSentimentProvider struct {
	prices PriceSource
	coinID string
}

// NewIndicatorSentimentProvider scores sentiment from coinID's price history.
func NewIndicatorSentimentProvider(prices PriceSource, coinID string) *IndicatorSentimentProvider {
	return &IndicatorSentimentProvider{prices: prices, coinID: coinID}
}

// Sentiment implements SentimentProvider.
func (p *IndicatorSentimentProvider) Sentiment(ctx context.Context) (Sentiment, error) {
	_, history, err := p.prices.History(ctx, p.coinID)
	if err != nil {
		return Sentiment{}, fmt.Errorf("failed to load %s history: %w", p.coinID, err)
	}

	rsi := formulas.CalculateRSI(history, RSIPeriod)
	if rsi == nil {
		return Sentiment{}, fmt.Errorf("not enough history for RSI: need %d prices, got %d", RSIPeriod+1, len(history))
	}

	return SentimentFromRSI(*rsi), nil
}

// SentimentFromRSI maps an RSI reading onto a sentiment.
func SentimentFromRSI(rsi float64) Sentiment {
	s := Sentiment{Score: int(math.Round(rsi))}

	switch {
	case rsi >= 75:
		s.Label, s.Trend = "Extreme Greed", "Bullish"
		s.Suggestion = "Market looks overheated. Pause lump-sum buys and let DCA do the work."
	case rsi >= 55:
		s.Label, s.Trend = "Greed", "Bullish"
		s.Suggestion = "Market is showing strength. Continue DCA but avoid lump-sum entries at local peaks."
	case rsi > 45:
		s.Label, s.Trend = "Neutral", "Sideways"
		s.Suggestion = "No clear direction. Keep the regular DCA schedule."
	case rsi > 25:
		s.Label, s.Trend = "Fear", "Bearish"
		s.Suggestion = "Prices are under pressure. DCA entries are cheaper; keep position sizes small."
	default:
		s.Label, s.Trend = "Extreme Fear", "Bearish"
		s.Suggestion = "Market looks oversold. Consider increasing DCA amounts within your risk limits."
	}

	return s
}
