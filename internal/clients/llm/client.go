// Package llm wraps the OpenAI API for chat generation and text embeddings.
package llm

import (
	"context"
	"errors"
	"fmt"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned when no API key was supplied.
var ErrNotConfigured = errors.New("llm client is not configured")

const systemPrompt = `You are a modern Crypto Investment Assistant.
Answer using the user's profile, the market prices, the knowledge context and the recommended strategy you are given.
Be concise, mention risks, and never promise returns.`

// Client talks to the OpenAI chat completion and embedding endpoints.
type Client struct {
	cli            oa.Client
	configured     bool
	model          string
	embeddingModel string
	log            zerolog.Logger
}

// NewClient creates a new client. An empty apiKey yields a client whose calls
// fail with ErrNotConfigured.
func NewClient(apiKey, model, embeddingModel string, log zerolog.Logger, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		cli:            oa.NewClient(opts...),
		configured:     apiKey != "",
		model:          model,
		embeddingModel: embeddingModel,
		log:            log.With().Str("client", "openai").Logger(),
	}
}

// Configured reports whether the client has credentials.
func (c *Client) Configured() bool {
	return c != nil && c.configured
}

// Generate sends prompt as a single user turn and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	resp, err := c.cli.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model: oa.ChatModel(c.model),
		Messages: []oa.ChatCompletionMessageParamUnion{
			oa.SystemMessage(systemPrompt),
			oa.UserMessage(prompt),
		},
		MaxTokens: oa.Int(1024),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	c.log.Debug().
		Str("model", c.model).
		Int64("total_tokens", resp.Usage.TotalTokens).
		Msg("Generated completion")

	return resp.Choices[0].Message.Content, nil
}

// Embed returns one embedding per input text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	resp, err := c.cli.Embeddings.New(ctx, oa.EmbeddingNewParams{
		Input: oa.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: oa.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embeddings error: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	vectors := make([][]float64, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || int(item.Index) >= len(texts) {
			return nil, fmt.Errorf("embedding index %d out of range", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}

	return vectors, nil
}
