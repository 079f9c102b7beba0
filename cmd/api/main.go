package main

import (
	"os"

	"github.com/dkravch/studyplan/internal/pkg/logger"
	"github.com/dkravch/studyplan/internal/server"
)

// @title StudyPlan API
// @version 1.0
// @description CRUD backend for students, elective subjects and academic plans.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token, format: "Bearer <token>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup errors are logged in detail inside NewServer.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
