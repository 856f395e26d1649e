package main

import (
	"os"

	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
	"github.com/yigit/collegeadmin/internal/server"
)

// @title College Administration API
// @version 1.0
// @description API for managing the departments, clubs, hostels, library, accounts, canteens and incubator of a college

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := config.GetEnv("CONFIG_PATH", config.DefaultConfigPath)

	srv, err := server.NewServer(configPath)
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
