package main

import (
	"os"
	"os/signal"
	"syscall"

	"shop/internal/app"
	"shop/internal/config"
	"shop/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.ServiceName, cfg.LogLevel)
	if cfg.UsesDevJWTSecret() {
		logger.Warn().Msg("JWT_SECRET is not set, tokens are signed with the development default")
	}

	application, err := app.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := application.StartConsumer(); err != nil {
		logger.Error().Err(err).Msg("Failed to start RabbitMQ consumer")
	}

	go func() {
		logger.Info().Str("port", cfg.AppPort).Msg("Starting server")
		if err := application.Listen(); err != nil {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	if err := application.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("Error during shutdown")
	}
	logger.Info().Msg("Server gracefully stopped")
}
