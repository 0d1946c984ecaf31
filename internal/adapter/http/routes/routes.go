package routes

import (
	"context"
	"fmt"
	_ "mutual_cartera/docs"
	"mutual_cartera/internal/adapter/http/handlers"
	"mutual_cartera/internal/adapter/http/middleware"
	"mutual_cartera/internal/adapter/persistence/repository"
	"mutual_cartera/internal/infrastructure/config"
	"mutual_cartera/internal/infrastructure/database"
	"mutual_cartera/internal/infrastructure/logging"
	"mutual_cartera/internal/infrastructure/spreadsheet"
	"mutual_cartera/internal/usecase"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg *config.Config, logger *logging.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(cfg, logger); err != nil {
		return err
	}

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func getRoutes(cfg *config.Config, logger *logging.Logger) error {
	ddb, err := database.ConnectDynamoDB(context.Background(), logger)
	if err != nil {
		return err
	}

	installmentRepo := repository.NewInstallmentDynamoRepository(ddb, cfg.Storage.InstallmentsTable, logger)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Storage.ClientsTable, logger)

	importUseCase := usecase.NewImportUseCase(
		spreadsheet.NewExcelReader(),
		installmentRepo,
		clientRepo,
		usecase.ImportOptions{
			BatchSize:            cfg.Import.BatchSize,
			MaxConcurrentBatches: cfg.Import.MaxConcurrentBatches,
			BatchesPerSecond:     cfg.Import.BatchesPerSecond,
			Location:             cfg.Location(),
		},
		logger,
	)
	dashboardUseCase := usecase.NewDashboardUseCase(
		installmentRepo,
		clientRepo,
		usecase.DashboardOptions{
			ProjectionMonths: cfg.Dashboard.ProjectionMonths,
			Location:         cfg.Location(),
		},
		logger,
	)
	clientUseCase := usecase.NewClientUseCase(clientRepo)

	importHandler := handlers.NewImportHandler(importUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase, cfg.Location())
	clientHandler := handlers.NewClientHandler(clientUseCase)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret)
	if !auth.Enabled() {
		logger.Warn().Msg("jwt secret not configured, authentication disabled")
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	addPortfolioRoutes(v1, auth, importHandler, dashboardHandler, clientHandler)
	return nil
}

func setMiddlewares(logger *logging.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.WithComponent("http")))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
