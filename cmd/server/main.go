// Package main is the entry point for the crypto investment advisor backend.
// It serves portfolio analytics, price forecasts, investment strategies,
// knowledge search and a chat assistant over a JSON HTTP API.
//
// Startup order:
//   - Configuration is loaded from the environment (and an optional .env file)
//   - The DI container wires the database, clients, services and jobs
//   - The scheduler and HTTP server are started
//   - SIGINT/SIGTERM trigger a graceful shutdown
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/cryptoadvisor/internal/config"
	"github.com/aristath/cryptoadvisor/internal/di"
	"github.com/aristath/cryptoadvisor/internal/server"
	"github.com/aristath/cryptoadvisor/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(logger.Config{Level: "info", Pretty: true})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Int("port", cfg.Port).
		Str("data_dir", cfg.DataDir).
		Bool("llm_configured", cfg.LLMConfigured()).
		Msg("Starting crypto advisor")

	container, _, err := di.Wire(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	container.Scheduler.Start()
	log.Info().Msg("Scheduler started")

	srv := server.New(server.Config{
		Log:       log,
		Config:    cfg,
		Port:      cfg.Port,
		DevMode:   cfg.DevMode,
		Container: container,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	container.Scheduler.Stop()
	log.Info().Msg("Scheduler stopped")

	if err := container.DB.WALCheckpoint("TRUNCATE"); err != nil {
		log.Warn().Err(err).Msg("Final WAL checkpoint failed")
	}

	log.Info().Msg("Server stopped")
}
