package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"github.com/ElyRami/Loterias/internal/config"
	"github.com/ElyRami/Loterias/internal/database"
	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/storage"
)

const usage = "usage: migrate <up|down|version|import-json> [N]"

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return errors.New(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			logger.Get().Warnf("database close error: %v", err)
		}
	}()

	command := os.Args[1]

	switch command {
	case "up":
		if err := dbManager.RunMigrations(); err != nil {
			return err
		}

	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				return fmt.Errorf("invalid step count: %w", err)
			}
		}
		m, err := dbManager.NewMigrate()
		if err != nil {
			return err
		}
		defer closeMigrate(m)
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", steps)

	case "version":
		m, err := dbManager.NewMigrate()
		if err != nil {
			return err
		}
		defer closeMigrate(m)
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	case "import-json":
		if err := dbManager.RunMigrations(); err != nil {
			return err
		}
		if err := importJSON(context.Background(), cfg.DataDir, dbManager); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown command: %s (use up, down, version, or import-json)", command)
	}

	return nil
}

// importJSON copies the flat-file stores in dataDir into the database,
// replacing whatever the tables held.
func importJSON(ctx context.Context, dataDir string, dbManager *database.Manager) error {
	lotteries, err := storage.NewJSONFileStore[models.Lottery](filepath.Join(dataDir, storage.LotteriesFile)).LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read lotteries: %w", err)
	}
	sales, err := storage.NewJSONFileStore[models.Sale](filepath.Join(dataDir, storage.SalesFile)).LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sales: %w", err)
	}

	db := dbManager.DB()
	if err := storage.NewGormStore[models.Lottery](db).SaveAll(ctx, lotteries); err != nil {
		return fmt.Errorf("failed to import lotteries: %w", err)
	}
	if err := storage.NewGormStore[models.Sale](db).SaveAll(ctx, sales); err != nil {
		return fmt.Errorf("failed to import sales: %w", err)
	}

	logger.Get().Infow("JSON data imported", "lotteries", len(lotteries), "sales", len(sales))
	return nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}
