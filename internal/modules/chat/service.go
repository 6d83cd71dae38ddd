// Package chat answers user questions with a prompt enriched by the user's
// profile, live prices, retrieved knowledge and the recommended strategy.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aristath/cryptoadvisor/internal/clients/llm"
	"github.com/aristath/cryptoadvisor/internal/modules/market"
	"github.com/aristath/cryptoadvisor/internal/modules/profile"
	"github.com/aristath/cryptoadvisor/internal/modules/strategy"
	"github.com/aristath/cryptoadvisor/internal/utils"
	"github.com/rs/zerolog"
)

// StrategyBalance is the balance the chat strategy context is sized for.
const StrategyBalance = 124000

const (
	notConfiguredResponse = "LLM API key is not configured."
	notConfiguredThought  = "Configuration Error"
)

var marketKeywords = []string{"price", "market", "value", "btc", "eth", "sol"}

var marketCoins = []struct {
	id     string
	symbol string
}{
	{"bitcoin", "BTC"},
	{"ethereum", "ETH"},
	{"solana", "SOL"},
}

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Retriever returns reference texts relevant to a query.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}

// ProfileReader loads the current user's profile.
type ProfileReader interface {
	Get(ctx context.Context) (*profile.UserProfile, error)
}

// Response is the reply to a chat message.
type Response struct {
	Response string `json:"response"`
	Thought  string `json:"thought"`
}

// Service composes prompts and calls the generator.
type Service struct {
	generator Generator
	profiles  ProfileReader
	quotes    market.QuoteSource
	retriever Retriever
	log       zerolog.Logger
}

// NewService creates a new chat service. generator may be nil when no LLM
// credentials are configured.
func NewService(generator Generator, profiles ProfileReader, quotes market.QuoteSource, retriever Retriever, log zerolog.Logger) *Service {
	return &Service{
		generator: generator,
		profiles:  profiles,
		quotes:    quotes,
		retriever: retriever,
		log:       log.With().Str("service", "chat").Logger(),
	}
}

// Chat answers message.
func (s *Service) Chat(ctx context.Context, message string) (*Response, error) {
	if s.generator == nil {
		return notConfigured(), nil
	}
	defer utils.OperationTimer("chat", s.log)()

	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	prompt := s.BuildPrompt(ctx, p, message)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return notConfigured(), nil
		}
		return nil, err
	}

	return &Response{
		Response: text,
		Thought:  fmt.Sprintf("Integrated Profile (%s) and RAG context.", p.RiskTolerance),
	}, nil
}

// BuildPrompt assembles the context sections and the question. Market and
// knowledge sections are left out when they are irrelevant or unavailable.
func (s *Service) BuildPrompt(ctx context.Context, p *profile.UserProfile, message string) string {
	sections := []string{
		fmt.Sprintf("User Profile: Risk Tolerance=%s, Goal=%s.", p.RiskTolerance, p.InvestmentGoal),
	}

	if wantsMarketContext(message) {
		if marketContext := s.marketContext(ctx); marketContext != "" {
			sections = append(sections, marketContext)
		}
	}

	if s.retriever != nil {
		results, err := s.retriever.Search(ctx, message, 2)
		if err != nil {
			s.log.Warn().Err(err).Msg("Knowledge search failed, continuing without it")
		} else if len(results) > 0 {
			sections = append(sections, "Knowledge Context: "+strings.Join(results, " "))
		}
	}

	plan := strategy.NewDCAPlan(p.RiskTolerance, StrategyBalance)
	sections = append(sections, fmt.Sprintf("Recommended Strategy: %s at %s frequency targeting %s.",
		plan.Type, plan.Frequency, strings.Join(plan.TargetAssets, ", ")))

	return strings.Join(sections, "\n") + "\n\nUser question: " + message
}

func (s *Service) marketContext(ctx context.Context) string {
	if s.quotes == nil {
		return ""
	}

	ids := make([]string, len(marketCoins))
	for i, c := range marketCoins {
		ids[i] = c.id
	}

	quotes, err := s.quotes.GetPrices(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("Market data unavailable, continuing without it")
		return ""
	}

	parts := make([]string, len(marketCoins))
	for i, c := range marketCoins {
		price := "N/A"
		if q, ok := quotes[c.id]; ok {
			price = strconv.FormatFloat(q.USD, 'f', -1, 64)
		}
		parts[i] = fmt.Sprintf("%s: $%s", c.symbol, price)
	}

	return "Current Market Prices: " + strings.Join(parts, ", ") + "."
}

func wantsMarketContext(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range marketKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func notConfigured() *Response {
	return &Response{Response: notConfiguredResponse, Thought: notConfiguredThought}
}
