package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty string", "", nil},
		{"only whitespace", "   ", nil},
		{"only commas", ",,,", nil},
		{"single asset", "BTC", []string{"BTC"}},
		{"default assets", "BTC,ETH", []string{"BTC", "ETH"}},
		{"spaces around values", " BTC , ETH ,SOL ", []string{"BTC", "ETH", "SOL"}},
		{"empty entries skipped", "BTC,,ETH, ,", []string{"BTC", "ETH"}},
		{"duplicates kept", "BTC,BTC", []string{"BTC", "BTC"}},
		{"inner spaces kept", "Wrapped Bitcoin, USD Coin", []string{"Wrapped Bitcoin", "USD Coin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCSV(tt.input))
		})
	}
}

func TestParseCSV_DoesNotModifyInput(t *testing.T) {
	input := "BTC, ETH"
	original := input

	_ = ParseCSV(input)

	assert.Equal(t, original, input)
}
