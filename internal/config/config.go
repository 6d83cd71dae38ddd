// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir              string // Base directory for the SQLite database (always absolute)
	Port                 int
	LogLevel             string
	DevMode              bool
	OpenAIAPIKey         string // Empty disables chat generation and remote embeddings
	OpenAIModel          string
	OpenAIEmbeddingModel string
	CoinGeckoURL         string
	MarketCacheTTL       time.Duration
	MockSeed             int64  // Seed for mocked returns/history; 0 means time based
	SentimentProvider    string // "static" or "indicator"
	Backup               BackupConfig
}

// BackupConfig configures uploads of database snapshots to S3-compatible storage
type BackupConfig struct {
	Bucket          string // Empty disables backups
	Endpoint        string // Custom endpoint for R2/MinIO; empty uses AWS
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	RetentionDays   int // 0 keeps every backup
}

// Enabled reports whether a backup bucket is configured
func (b BackupConfig) Enabled() bool {
	return b.Bucket != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	absDataDir, err := filepath.Abs(getEnv("DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:              absDataDir,
		Port:                 getEnvAsInt("PORT", 8000),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		CoinGeckoURL:         getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3"),
		MarketCacheTTL:       time.Duration(getEnvAsInt("MARKET_CACHE_TTL_SECONDS", 120)) * time.Second,
		MockSeed:             int64(getEnvAsInt("MOCK_SEED", 0)),
		SentimentProvider:    getEnv("SENTIMENT_PROVIDER", "static"),
		Backup: BackupConfig{
			Bucket:          getEnv("BACKUP_S3_BUCKET", ""),
			Endpoint:        getEnv("BACKUP_S3_ENDPOINT", ""),
			Region:          getEnv("BACKUP_S3_REGION", "auto"),
			AccessKeyID:     getEnv("BACKUP_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("BACKUP_S3_SECRET_ACCESS_KEY", ""),
			RetentionDays:   getEnvAsInt("BACKUP_RETENTION_DAYS", 30),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MarketCacheTTL < 0 {
		return fmt.Errorf("market cache TTL must not be negative")
	}
	switch c.SentimentProvider {
	case "", "static", "indicator":
	default:
		return fmt.Errorf("unknown sentiment provider %q", c.SentimentProvider)
	}
	if c.Backup.Enabled() && (c.Backup.AccessKeyID == "") != (c.Backup.SecretAccessKey == "") {
		return fmt.Errorf("backup access key id and secret must be set together")
	}
	if c.Backup.RetentionDays < 0 {
		return fmt.Errorf("backup retention days must not be negative")
	}
	// OPENAI_API_KEY is optional: chat answers with a configuration notice without it
	return nil
}

// DatabasePath returns the path of the service database inside DataDir
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "advisor.db")
}

// LLMConfigured reports whether a generative-text provider key is present
func (c *Config) LLMConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
