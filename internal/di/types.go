// Package di provides dependency injection type definitions.
//
// Container holds every long-lived dependency of the service. It is created by
// Wire and handed to the HTTP server and the scheduler; nothing else in the
// application constructs services or keeps package-level singletons.
package di

import (
	"github.com/aristath/cryptoadvisor/internal/clientdata"
	"github.com/aristath/cryptoadvisor/internal/clients/coingecko"
	"github.com/aristath/cryptoadvisor/internal/clients/llm"
	"github.com/aristath/cryptoadvisor/internal/database"
	"github.com/aristath/cryptoadvisor/internal/modules/analytics"
	"github.com/aristath/cryptoadvisor/internal/modules/chat"
	"github.com/aristath/cryptoadvisor/internal/modules/forecasting"
	"github.com/aristath/cryptoadvisor/internal/modules/knowledge"
	"github.com/aristath/cryptoadvisor/internal/modules/profile"
	"github.com/aristath/cryptoadvisor/internal/modules/strategy"
	"github.com/aristath/cryptoadvisor/internal/reliability"
	"github.com/aristath/cryptoadvisor/internal/scheduler"
)

// Container holds all dependencies for the application.
type Container struct {
	// Database
	DB *database.DB // advisor.db - profiles and quote cache

	// Repositories
	CacheRepo   *clientdata.Repository
	ProfileRepo *profile.Repository

	// Clients
	CoinGeckoClient *coingecko.Client
	LLMClient       *llm.Client
	BackupStore     reliability.ObjectStore // nil when backups are disabled

	// Providers
	ReturnsProvider   analytics.ReturnsProvider
	HistoryProvider   forecasting.HistoryProvider
	SentimentProvider strategy.SentimentProvider
	Embedder          knowledge.Embedder

	// Services
	KnowledgeIndex     *knowledge.Index
	ProfileService     *profile.Service
	AnalyticsService   *analytics.Service
	ForecastingService *forecasting.Service
	StrategyService    *strategy.Service
	ChatService        *chat.Service
	BackupService      *reliability.BackupService // nil when backups are disabled

	Scheduler *scheduler.Scheduler
}

// JobInstances holds the registered jobs for manual triggering and tests.
type JobInstances struct {
	CacheCleanup  scheduler.Job
	WALCheckpoint scheduler.Job
	QuoteWarmup   scheduler.Job
	Backup        scheduler.Job // nil when backups are disabled
}

// Close releases the database. The scheduler must be stopped first.
func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
