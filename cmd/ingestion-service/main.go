package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/config"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/delivery/consumer"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/repository"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/service"
	"github.com/MEMAtest/horizon-scanner-backend/internal/ingestor/strategy"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/common"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/logger"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/postgres"
	pkgRedis "github.com/MEMAtest/horizon-scanner-backend/pkg/redis"
	"github.com/MEMAtest/horizon-scanner-backend/pkg/telegram"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the regulatory feed ingestion service",
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

	appLogger.Info("Starting Ingestion Service", logger.Field("name", cfg.App.Name))

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

	redisCfg := pkgRedis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := pkgRedis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis client", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Ensure the consumer group exists before consuming.
	err = redisClient.Client.XGroupCreateMkStream(ctx, common.RedisStreamUpdateIngested, common.RedisStreamGroup, "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		appLogger.Fatal("Failed to create Redis stream group", logger.ErrorField(err))
	}

	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini client", logger.ErrorField(err))
	}

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	aiRepo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize AI repository", logger.ErrorField(err))
	}
	feedSourceRepo := repository.NewFeedSourceRepository(db.DB)
	updateRepo := repository.NewRegulatoryUpdateRepository(db.DB)
	watchListRepo := repository.NewWatchListRepository(db.DB)
	matchRepo := repository.NewWatchListMatchRepository(db.DB)
	profileRepo := repository.NewFirmProfileRepository(db.DB)
	alertRepo := repository.NewRegulatoryAlertRepository(db.DB)

	// Initialize strategies
	strategies := []strategy.FeedParsingStrategy{
		strategy.NewRSSFeedStrategy(appLogger),
		strategy.NewHTMLFeedStrategy(appLogger),
	}

	// Initialize services
	ingestionService := service.NewIngestionService(cfg, redisClient.Client, feedSourceRepo, updateRepo, aiRepo, notifier, appLogger, strategies)
	alertService := service.NewAlertService(alertRepo, updateRepo, profileRepo, notifier, appLogger)
	matcherService := service.NewWatchListMatcherService(redisClient.Client, updateRepo, watchListRepo, matchRepo, profileRepo, alertService, appLogger)

	if err := ingestionService.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start ingestion schedule", logger.ErrorField(err))
	}

	redisConsumer := consumer.NewRedisConsumer(cfg, redisClient.Client, matcherService, alertService, appLogger)
	redisConsumer.Start(ctx)

	<-ctx.Done()

	appLogger.Info("Shutting down ingestion service...")
	ingestionService.Stop()
	redisConsumer.Stop()
	appLogger.Info("Ingestion service exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "ingestion-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-ingestor.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing ingestion-service CLI: %s\n", err)
		os.Exit(1)
	}
}
