package di

import (
	"fmt"
	"time"

	"github.com/aristath/cryptoadvisor/internal/clientdata"
	"github.com/aristath/cryptoadvisor/internal/config"
	"github.com/aristath/cryptoadvisor/internal/reliability"
	"github.com/aristath/cryptoadvisor/internal/scheduler"
	"github.com/rs/zerolog"
)

// Job schedules (six-field cron, seconds first)
const (
	scheduleCacheCleanup  = "0 0 3 * * *"    // daily at 03:00
	scheduleWALCheckpoint = "0 */30 * * * *" // every 30 minutes
	scheduleBackup        = "0 30 2 * * *"   // daily at 02:30
)

type scheduledJob struct {
	schedule string
	job      scheduler.Job
}

// RegisterJobs creates the scheduler and registers the maintenance jobs.
// The scheduler is not started.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	if container == nil {
		return nil, fmt.Errorf("container cannot be nil")
	}

	container.Scheduler = scheduler.New(log)

	instances := &JobInstances{
		CacheCleanup:  clientdata.NewCleanupJob(container.CacheRepo, log),
		WALCheckpoint: scheduler.NewWALCheckpointJob(container.DB, log),
		QuoteWarmup:   scheduler.NewQuoteWarmupJob(container.CoinGeckoClient, log),
	}

	schedules := []scheduledJob{
		{scheduleCacheCleanup, instances.CacheCleanup},
		{scheduleWALCheckpoint, instances.WALCheckpoint},
		{quoteWarmupSchedule(cfg.MarketCacheTTL), instances.QuoteWarmup},
	}

	if container.BackupService != nil {
		instances.Backup = reliability.NewBackupJob(container.BackupService, cfg.Backup.RetentionDays, log)
		schedules = append(schedules, scheduledJob{scheduleBackup, instances.Backup})
	}

	for _, s := range schedules {
		if err := container.Scheduler.AddJob(s.schedule, s.job); err != nil {
			return nil, fmt.Errorf("failed to register job %s: %w", s.job.Name(), err)
		}
	}

	return instances, nil
}

// quoteWarmupSchedule refreshes at half the cache TTL. The warm-up skips a fresh
// cache, so running every full TTL would leave the cache stale for up to a TTL.
func quoteWarmupSchedule(ttl time.Duration) string {
	if ttl <= 0 {
		ttl = clientdata.TTLMarketQuote
	}
	interval := (ttl / 2).Truncate(time.Second)
	if interval < time.Second {
		interval = time.Second
	}
	return fmt.Sprintf("@every %s", interval)
}
