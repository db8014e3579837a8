package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NewPool dials the transaction database, retrying the first ping so the
// dashboard can start alongside a database that is still booting.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	err = pingWithRetry(ctx, pool.Ping, cfg.ConnectRetries, cfg.RetryDelay, logger)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.DBName),
		zap.Int32("max_conns", poolConfig.MaxConns),
	)

	return pool, nil
}

// PoolConfig builds the pgx pool settings from the database section.
func PoolConfig(cfg *config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.ConnConfig.RuntimeParams["application_name"] = "financial-analytics-dashboard"
	poolConfig.ConnConfig.RuntimeParams["timezone"] = "UTC"
	return poolConfig, nil
}

func pingWithRetry(ctx context.Context, ping func(context.Context) error, retries int, delay time.Duration, logger *zap.Logger) error {
	err := ping(ctx)
	for attempt := 1; err != nil && attempt <= retries; attempt++ {
		logger.Warn("Database not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Int("retries", retries),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		err = ping(ctx)
	}
	return err
}
