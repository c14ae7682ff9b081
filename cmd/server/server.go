package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"newschat-server/internal/infrastructure/config"
	"newschat-server/internal/infrastructure/logger"
	_ "newschat-server/internal/infrastructure/metrics" // Register Prometheus metrics
	"newschat-server/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
}

func init() {
	// Initialize logger with default settings
	logger.Init("info", "json")
}

func (app *Application) Start(ctx context.Context) error {
	return app.httpServer.Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration; missing provider credentials fail fast here
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Re-initialize logger with config settings
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("log_level", cfg.LogLevel).
		Str("model", cfg.GroqModel).
		Msg("Starting newschat service")

	// Create application with dependency injection
	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
