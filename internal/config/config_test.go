package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MARKET_CACHE_TTL_SECONDS", "")
	t.Setenv("SENTIMENT_PROVIDER", "")
	t.Setenv("BACKUP_S3_BUCKET", "")
	t.Setenv("BACKUP_RETENTION_DAYS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.MarketCacheTTL)
	assert.False(t, cfg.LLMConfigured())
	assert.Equal(t, filepath.Join(dir, "advisor.db"), cfg.DatabasePath())
	assert.Equal(t, "static", cfg.SentimentProvider)
	assert.False(t, cfg.Backup.Enabled())
	assert.Equal(t, 30, cfg.Backup.RetentionDays)
	assert.Equal(t, "auto", cfg.Backup.Region)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("PORT", "9100")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MOCK_SEED", "42")
	t.Setenv("SENTIMENT_PROVIDER", "indicator")
	t.Setenv("BACKUP_S3_BUCKET", "advisor-backups")
	t.Setenv("BACKUP_S3_ENDPOINT", "https://example.r2.cloudflarestorage.com")
	t.Setenv("BACKUP_S3_ACCESS_KEY_ID", "key")
	t.Setenv("BACKUP_S3_SECRET_ACCESS_KEY", "secret")
	t.Setenv("BACKUP_RETENTION_DAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.True(t, cfg.DevMode)
	assert.True(t, cfg.LLMConfigured())
	assert.Equal(t, int64(42), cfg.MockSeed)
	assert.Equal(t, "indicator", cfg.SentimentProvider)
	assert.True(t, cfg.Backup.Enabled())
	assert.Equal(t, "https://example.r2.cloudflarestorage.com", cfg.Backup.Endpoint)
	assert.Equal(t, 7, cfg.Backup.RetentionDays)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{Port: 0}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{Port: 8000, MarketCacheTTL: -time.Second}).Validate())
	assert.Error(t, (&Config{Port: 8000, SentimentProvider: "vibes"}).Validate())
	assert.NoError(t, (&Config{Port: 8000}).Validate())
	assert.NoError(t, (&Config{Port: 8000, SentimentProvider: "indicator"}).Validate())
	assert.Error(t, (&Config{Port: 8000, Backup: BackupConfig{Bucket: "b", AccessKeyID: "k"}}).Validate())
	assert.Error(t, (&Config{Port: 8000, Backup: BackupConfig{RetentionDays: -1}}).Validate())
	assert.NoError(t, (&Config{Port: 8000, Backup: BackupConfig{Bucket: "b"}}).Validate())
}
