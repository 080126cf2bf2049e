package main

import (
	"os"

	"github.com/mergington/activities/internal/pkg/logger"
	"github.com/mergington/activities/internal/server"
)

// @title Mergington High School Activities API
// @version 1.0
// @description API for viewing extracurricular activities and managing student signups

// @contact.name API Support
// @contact.email admin@mergington.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
