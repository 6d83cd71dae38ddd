// Package server provides the HTTP server and routing for the advisor API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/cryptoadvisor/internal/config"
	"github.com/aristath/cryptoadvisor/internal/di"
	analyticshandlers "github.com/aristath/cryptoadvisor/internal/modules/analytics/handlers"
	chathandlers "github.com/aristath/cryptoadvisor/internal/modules/chat/handlers"
	forecastinghandlers "github.com/aristath/cryptoadvisor/internal/modules/forecasting/handlers"
	knowledgehandlers "github.com/aristath/cryptoadvisor/internal/modules/knowledge/handlers"
	markethandlers "github.com/aristath/cryptoadvisor/internal/modules/market/handlers"
	profilehandlers "github.com/aristath/cryptoadvisor/internal/modules/profile/handlers"
	strategyhandlers "github.com/aristath/cryptoadvisor/internal/modules/strategy/handlers"
)

// Handlers call CoinGecko (up to ~32s with retries) and the LLM inline, so the
// write deadline must outlast the request timeout or error responses are lost.
const (
	requestTimeout = 60 * time.Second
	writeTimeout   = requestTimeout + 15*time.Second
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Config    *config.Config
	Port      int
	DevMode   bool
	Container *di.Container // DI container with all services
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	cfg            *config.Config
	port           int
	container      *di.Container
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	var backups BackupLister
	if cfg.Container.BackupService != nil {
		backups = cfg.Container.BackupService
	}

	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		cfg:       cfg.Config,
		port:      cfg.Port,
		container: cfg.Container,
		systemHandlers: NewSystemHandlers(
			cfg.Log,
			cfg.Container.DB,
			cfg.Container.Scheduler,
			backups,
		),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(requestTimeout))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	c := s.container

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/system", func(r chi.Router) {
		r.Get("/status", s.systemHandlers.HandleSystemStatus)
		r.Get("/jobs", s.systemHandlers.HandleJobsStatus)
		r.Post("/jobs/{name}", s.systemHandlers.HandleTriggerJob)
		r.Get("/backups", s.systemHandlers.HandleListBackups)
	})

	markethandlers.NewHandler(c.CoinGeckoClient, s.log).RegisterRoutes(s.router)
	forecastinghandlers.NewHandler(c.ForecastingService, s.log).RegisterRoutes(s.router)
	profilehandlers.NewHandler(c.ProfileService, s.log).RegisterRoutes(s.router)
	chathandlers.NewHandler(c.ChatService, s.log).RegisterRoutes(s.router)
	analyticshandlers.NewHandler(c.AnalyticsService, s.log).RegisterRoutes(s.router)
	strategyhandlers.NewHandler(c.StrategyService, s.log).RegisterRoutes(s.router)
	knowledgehandlers.NewHandler(c.KnowledgeIndex, s.log).RegisterRoutes(s.router)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
