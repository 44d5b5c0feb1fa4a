package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"vise-api-go/internal/api"
	"vise-api-go/internal/config"
	"vise-api-go/internal/eligibility"
	"vise-api-go/internal/idempotency"
	"vise-api-go/internal/purchase"
	"vise-api-go/internal/redisclient"
	"vise-api-go/internal/registry"
	"vise-api-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.InitLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting VISE API",
		zap.String("version", cfg.AppVersion),
		zap.String("log_level", cfg.LogLevel),
	)

	// Optional Redis-backed purchase idempotency cache
	var redis *redisclient.Client
	var idem *idempotency.Store
	if cfg.RedisURL != "" {
		redis, err = redisclient.NewClient(cfg)
		if err != nil {
			logger.Fatal("Failed to create Redis client", zap.Error(err))
		}
		defer redis.Close()
		idem = idempotency.NewStore(redis, cfg.IdempotencyTTL, logger.L())
		logger.Info("Purchase idempotency cache enabled")
	} else {
		logger.Info("REDIS_URL not set, purchase idempotency cache disabled")
	}

	// Wire the core: registry, validator, processor
	reg := registry.NewRegistry(logger.L())
	validator := eligibility.NewValidator()
	processor := purchase.NewProcessor(reg, purchase.NewTransactionIDGenerator(), logger.L())

	// Create router and server
	router := api.NewRouter(validator, reg, processor, idem, redis, cfg, logger.L())
	srv := api.NewServer(cfg, router)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	// Start server
	logger.Info("VISE API is ready to accept requests",
		zap.String("address", cfg.GetServerAddress()),
	)

	if err := srv.Start(ctx); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}

	logger.Info("VISE API shutdown complete")
}
