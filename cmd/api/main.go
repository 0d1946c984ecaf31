package main

import (
	"os"

	_ "mutual_cartera/docs"
	"mutual_cartera/internal/adapter/http/routes"
	"mutual_cartera/internal/infrastructure/config"
	"mutual_cartera/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mutual Portfolio API
// @version         1.0
// @description     Loan portfolio ingestion and dashboards backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		logging.NewLogger("info").Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.NewLogger(cfg.Logging.Level)

	if err := routes.Run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
