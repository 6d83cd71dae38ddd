package di

import (
	"fmt"

	"github.com/aristath/cryptoadvisor/internal/config"
	"github.com/aristath/cryptoadvisor/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens advisor.db and applies its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	db, err := database.New(database.Config{
		Path:    cfg.DatabasePath(),
		Profile: database.ProfileStandard,
		Name:    "advisor",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize advisor database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate advisor database: %w", err)
	}

	log.Info().Str("path", db.Path()).Msg("Database initialized")

	return &Container{DB: db}, nil
}
