// Package backend builds the transaction and user stores selected by
// configuration.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/ingest"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/models"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/repository"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/repository/memory"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/service"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/config"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/pkg/postgres"

	"go.uber.org/zap"
)

// TransactionBackend is everything the binaries need from a transaction store.
type TransactionBackend interface {
	service.TransactionStore
	UpsertBatch(ctx context.Context, transactions []*models.Transaction) error
	Ping(ctx context.Context) error
}

type Result struct {
	Transactions TransactionBackend
	Users        service.UserStore
	Cleanup      func()
}

// Open connects the configured backend. Cleanup is always safe to call.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Result, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.StoreBackendMemory:
		return openMemory(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Store.Backend)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Result, error) {
	if cfg.Database.Migrate {
		if err := postgres.RunMigrations(&cfg.Database, logger); err != nil {
			return nil, err
		}
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Initialized postgres backend", zap.String("database", cfg.Database.DBName))

	return &Result{
		Transactions: repository.NewTransactionRepository(db, logger),
		Users:        repository.NewUserRepository(db, logger),
		Cleanup:      db.Close,
	}, nil
}

func openMemory(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Result, error) {
	store := memory.New()

	if cfg.Store.DataFile != "" {
		transactions, err := ingest.LoadFile(cfg.Store.DataFile, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		if err := store.UpsertBatch(ctx, transactions); err != nil {
			return nil, err
		}
		logger.Info("Loaded transactions into memory backend",
			zap.String("file", cfg.Store.DataFile),
			zap.Int("count", len(transactions)),
		)
	}

	logger.Info("Initialized memory backend")

	return &Result{
		Transactions: store,
		Users:        store,
		Cleanup:      func() {},
	}, nil
}
