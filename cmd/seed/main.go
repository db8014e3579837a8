package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/backend"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/dto"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/ingest"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/service"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/auth"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/cache"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/config"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/logger"

	"go.uber.org/zap"
)

const batchSize = 500

func main() {
	file := flag.String("file", "transactions.json", "JSON array of transactions to upsert")
	username := flag.String("username", "", "create a dashboard user with this name")
	password := flag.String("password", "", "password for -username")
	flag.Parse()

	if *username != "" && len(*password) < 6 {
		log.Fatalf("-password must be at least 6 characters when -username is set")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Store.Backend != config.StoreBackendPostgres {
		log.Fatalf("Seeding requires STORE_BACKEND=%s, got %q", config.StoreBackendPostgres, cfg.Store.Backend)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	stores, err := backend.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open store backend", zap.Error(err))
	}
	defer stores.Cleanup()

	appLogger.Info("Starting database seeding...", zap.String("file", *file))

	transactions, err := ingest.LoadFile(*file, time.Now().UTC())
	if err != nil {
		appLogger.Fatal("Failed to load transactions", zap.Error(err))
	}

	for start := 0; start < len(transactions); start += batchSize {
		end := min(start+batchSize, len(transactions))
		if err := stores.Transactions.UpsertBatch(ctx, transactions[start:end]); err != nil {
			appLogger.Fatal("Failed to upsert transactions", zap.Int("offset", start), zap.Error(err))
		}
		appLogger.Info("Upserted batch", zap.Int("from", start), zap.Int("to", end))
	}

	if *username != "" {
		jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
		authService := service.NewAuthService(stores.Users, jwtManager, appLogger)
		_, err := authService.Register(ctx, &dto.RegisterRequest{Username: *username, Password: *password})
		switch {
		case errors.Is(err, service.ErrUserExists):
			appLogger.Info("User already exists, skipping", zap.String("username", *username))
		case err != nil:
			appLogger.Fatal("Failed to create user", zap.Error(err))
		}
	}

	// Cached stats predate this load.
	if redisCache, err := cache.NewRedisCache(ctx, &cfg.Redis, appLogger); err != nil {
		appLogger.Warn("Redis unavailable, cached stats not purged", zap.Error(err))
	} else if redisCache != nil {
		removed, err := redisCache.Purge(ctx, "stats")
		if err != nil {
			appLogger.Warn("Failed to purge cached stats", zap.Error(err))
		}
		appLogger.Info("Purged cached stats", zap.Int("keys", removed))
		_ = redisCache.Close()
	}

	appLogger.Info("Database seeding completed successfully!", zap.Int("transactions", len(transactions)))
}
