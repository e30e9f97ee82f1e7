package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrackr/fintrackr/internal/pkg/config"
	"github.com/fintrackr/fintrackr/internal/pkg/database"
	"github.com/fintrackr/fintrackr/internal/pkg/health"
	"github.com/fintrackr/fintrackr/internal/pkg/logger"
	"github.com/fintrackr/fintrackr/internal/pkg/middleware"
	"github.com/fintrackr/fintrackr/internal/pkg/server"
	"github.com/fintrackr/fintrackr/services/finance/handler"
	httpHandler "github.com/fintrackr/fintrackr/services/finance/handler/http"
	"github.com/fintrackr/fintrackr/services/finance/repository"
	"github.com/fintrackr/fintrackr/services/finance/usecase"
)

func main() {
	appName := "fintrackr-api"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())
	txRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB())

	// Initialize usecases
	authUC := usecase.NewAuthUC(userRepo, configs)
	txUC := usecase.NewTransactionUC(txRepo, configs)
	dashboardUC := usecase.NewDashboardUC(txRepo)
	exportUC := usecase.NewExportUC(txRepo)

	// Initialize HTTP handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	txHandler := httpHandler.NewTransactionHandler(txUC)
	dashboardHandler := httpHandler.NewDashboardHandler(dashboardUC)
	exportHandler := httpHandler.NewExportHandler(exportUC)

	h := handler.NewHandler(authHandler, txHandler, dashboardHandler, exportHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, postgresClient)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
