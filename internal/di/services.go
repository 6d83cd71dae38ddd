package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/cryptoadvisor/internal/clients/coingecko"
	"github.com/aristath/cryptoadvisor/internal/clients/llm"
	"github.com/aristath/cryptoadvisor/internal/config"
	"github.com/aristath/cryptoadvisor/internal/modules/analytics"
	"github.com/aristath/cryptoadvisor/internal/modules/chat"
	"github.com/aristath/cryptoadvisor/internal/modules/forecasting"
	"github.com/aristath/cryptoadvisor/internal/modules/knowledge"
	"github.com/aristath/cryptoadvisor/internal/modules/profile"
	"github.com/aristath/cryptoadvisor/internal/modules/strategy"
	"github.com/aristath/cryptoadvisor/internal/reliability"
	"github.com/rs/zerolog"
)

const seedTimeout = 30 * time.Second

// InitializeServices creates clients, providers and services
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container == nil || container.ProfileRepo == nil {
		return fmt.Errorf("repositories not initialized")
	}

	seed := cfg.MockSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Clients
	container.CoinGeckoClient = coingecko.NewClient(cfg.CoinGeckoURL, container.CacheRepo, cfg.MarketCacheTTL, log)
	container.LLMClient = llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIEmbeddingModel, log)

	if cfg.Backup.Enabled() {
		if err := initializeBackups(container, cfg, log); err != nil {
			return err
		}
	}

	// Mocked data providers
	container.ReturnsProvider = analytics.NewMockReturnsProvider(seed)
	history := forecasting.NewMockHistoryProvider(seed + 1)
	container.HistoryProvider = history

	switch cfg.SentimentProvider {
	case "indicator":
		container.SentimentProvider = strategy.NewIndicatorSentimentProvider(history, "bitcoin")
	default:
		container.SentimentProvider = strategy.StaticSentimentProvider{}
	}

	// Knowledge index
	if err := initializeKnowledge(container, cfg, log); err != nil {
		return err
	}

	// Services
	container.ProfileService = profile.NewService(container.ProfileRepo, log)
	container.AnalyticsService = analytics.NewService(container.ReturnsProvider, log)
	container.ForecastingService = forecasting.NewService(container.HistoryProvider, log)
	container.StrategyService = strategy.NewService(container.ProfileService, container.SentimentProvider, log)

	var generator chat.Generator
	if cfg.LLMConfigured() {
		generator = container.LLMClient
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, chat will answer with a configuration notice")
	}
	container.ChatService = chat.NewService(generator, container.ProfileService, container.CoinGeckoClient, container.KnowledgeIndex, log)

	return nil
}

// initializeKnowledge seeds the index with remote embeddings when an API key is
// configured, falling back to the local hash embedder if that fails.
func initializeKnowledge(container *Container, cfg *config.Config, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if cfg.LLMConfigured() {
		idx := knowledge.NewIndex(container.LLMClient, log)
		err := knowledge.Seed(ctx, idx)
		if err == nil {
			container.Embedder = container.LLMClient
			container.KnowledgeIndex = idx
			log.Info().Int("documents", idx.Len()).Msg("Knowledge index seeded with OpenAI embeddings")
			return nil
		}
		log.Warn().Err(err).Msg("Failed to seed knowledge index with OpenAI embeddings, using hash embeddings")
	}

	embedder := knowledge.NewHashEmbedder()
	idx := knowledge.NewIndex(embedder, log)
	if err := knowledge.Seed(ctx, idx); err != nil {
		return fmt.Errorf("failed to seed knowledge index: %w", err)
	}

	container.Embedder = embedder
	container.KnowledgeIndex = idx
	log.Info().Int("documents", idx.Len()).Msg("Knowledge index seeded")
	return nil
}

// initializeBackups creates the object store client and the backup service
func initializeBackups(container *Container, cfg *config.Config, log zerolog.Logger) error {
	store, err := reliability.NewS3Client(context.Background(), reliability.S3Options{
		Bucket:          cfg.Backup.Bucket,
		Endpoint:        cfg.Backup.Endpoint,
		Region:          cfg.Backup.Region,
		AccessKeyID:     cfg.Backup.AccessKeyID,
		SecretAccessKey: cfg.Backup.SecretAccessKey,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create backup store: %w", err)
	}

	container.BackupStore = store
	container.BackupService = reliability.NewBackupService(store, container.DB, cfg.DataDir, log)
	log.Info().Str("bucket", cfg.Backup.Bucket).Msg("Database backups enabled")
	return nil
}
