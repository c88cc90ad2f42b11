// Package app wires configuration, storage and services for the entry points.
package app

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/ElyRami/Loterias/internal/config"
	"github.com/ElyRami/Loterias/internal/database"
	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/services"
	"github.com/ElyRami/Loterias/internal/storage"
)

// App holds the loaded services and the resources backing them.
type App struct {
	Config    *config.Config
	Lotteries services.LotteryServicer
	Sales     services.SaleServicer

	mu sync.Mutex
	db *database.Manager
}

// Open connects the configured backend and loads the catalog and the ledger.
// An unreachable database is not fatal: the catalog starts from the built-in
// lotteries, the ledger starts empty, and writes fail with STORAGE_UNAVAILABLE
// until a reload reaches the database.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	var stores *storage.Stores
	if cfg.StorageBackend == config.BackendJSON {
		var err error
		stores, err = storage.Open(cfg, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
	} else {
		conn := storage.NewConnection(a.connect)
		if _, err := conn.DB(); err != nil {
			logger.Get().Warnw("Database unavailable, starting with the built-in catalog",
				"backend", cfg.StorageBackend,
				"error", err,
			)
		}
		stores = storage.OpenConnection(conn)
	}

	a.Lotteries = services.NewLotteryService(stores.Lotteries)
	if err := a.Lotteries.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load lotteries: %w", err)
	}
	a.Sales = services.NewSaleService(stores.Sales, a.Lotteries)
	if err := a.Sales.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	logger.Get().Infow("Data loaded",
		"backend", cfg.StorageBackend,
		"lotteries", len(a.Lotteries.ListLotteries()),
		"sales", len(a.Sales.ListSales()),
	)
	return a, nil
}

// connect opens and migrates the relational backend.
func (a *App) connect() (*gorm.DB, error) {
	m, err := database.NewManager(a.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := m.RunMigrations(); err != nil {
		closeManager(m)
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	a.mu.Lock()
	a.db = m
	a.mu.Unlock()
	return m.DB(), nil
}

// Close releases the database connection, if any.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db != nil {
		closeManager(a.db)
		a.db = nil
	}
}

func closeManager(m *database.Manager) {
	if err := m.Close(); err != nil {
		logger.Get().Warnf("database close error: %v", err)
	}
}
