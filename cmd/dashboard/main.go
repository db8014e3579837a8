package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/api"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/api/handlers"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/backend"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/service"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/auth"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/cache"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/config"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/logger"

	"go.uber.org/zap"
)

// @title Financial Analytics Dashboard API
// @version 1.0
// @description Filtered listing, CSV/XLSX export and aggregate statistics over financial transactions.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting financial analytics dashboard", zap.String("backend", cfg.Store.Backend))

	ctx := context.Background()

	// Initialize stores
	stores, err := backend.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open store backend", zap.Error(err))
	}
	defer stores.Cleanup()

	// Optional stats cache
	var statsCache service.StatsCache
	redisCache, err := cache.NewRedisCache(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, continuing without stats cache", zap.Error(err))
	} else if redisCache != nil {
		defer redisCache.Close()
		statsCache = redisCache
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(stores.Users, jwtManager, appLogger)
	txService := service.NewTransactionService(stores.Transactions, statsCache, appLogger)

	// Setup router
	app := api.SetupRouter(
		api.RouterConfig{
			AllowOrigins: cfg.Server.AllowOrigins,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			AccessLog:    true,
		},
		api.Handlers{
			Auth:         handlers.NewAuthHandler(authService, appLogger),
			Transactions: handlers.NewTransactionHandler(txService, appLogger),
			Health:       handlers.NewHealthHandler(stores.Transactions, appLogger),
		},
		jwtManager,
		authService,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
