package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/internal/api/config"
	delivery "github.com/MEMAtest/horizon-scanner-backend/internal/api/delivery/http"
	_ "github.com/MEMAtest/horizon-scanner-backend/internal/api/docs"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/api/service"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/postgres"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name))

	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize repositories
	profileRepo := repository.NewFirmProfileRepository(db.DB)
	updateRepo := repository.NewRegulatoryUpdateRepository(db.DB)
	watchListRepo := repository.NewWatchListRepository(db.DB)
	alertRepo := repository.NewRegulatoryAlertRepository(db.DB)

	// Initialize services
	profileSvc := service.NewFirmProfileService(profileRepo, appLogger)
	watchListSvc := service.NewWatchListService(watchListRepo, appLogger)
	updateSvc := service.NewUpdateService(updateRepo, appLogger)
	intelligenceSvc := service.NewIntelligenceService(cfg, profileRepo, updateRepo, appLogger)
	alertSvc := service.NewAlertService(alertRepo, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	apiV1 := e.Group("/api/v1")

	profileHandler := delivery.NewFirmProfileHandler(profileSvc, appLogger)
	profileHandler.RegisterRoutes(apiV1.Group("/profiles"))

	watchListHandler := delivery.NewWatchListHandler(watchListSvc, appLogger)
	watchListHandler.RegisterRoutes(apiV1.Group("/watchlists"))
	watchListHandler.RegisterMatchRoutes(apiV1.Group("/matches"))

	updateHandler := delivery.NewUpdateHandler(updateSvc, appLogger)
	updateHandler.RegisterRoutes(apiV1.Group("/updates"))

	intelligenceHandler := delivery.NewIntelligenceHandler(intelligenceSvc, appLogger)
	intelligenceHandler.RegisterRoutes(apiV1.Group("/intelligence"))

	alertHandler := delivery.NewAlertHandler(alertSvc, appLogger)
	alertHandler.RegisterRoutes(apiV1.Group("/alerts"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Regulatory Horizon Scanner API
// @version 1.0
// @description Dashboard API for regulatory intelligence: firm profiles, watch lists, updates, alerts and personalized scoring.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
