package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/trackpro/trackpro/internal/pkg/logger"
	"github.com/trackpro/trackpro/internal/server"
)

func main() {
	// A missing .env is fine; config falls back to defaults and real env vars
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
