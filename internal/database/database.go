// Package database opens the relational backends and applies their schema.
package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ElyRami/Loterias/internal/config"
	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/models"
)

// Manager handles database operations
type Manager struct {
	db            *gorm.DB
	backend       string
	migrateURL    string
	migrationsDir string
}

// NewManager connects to the relational backend selected in cfg.
func NewManager(cfg *config.Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresURL(),
			PreferSimpleProtocol: true, // Required behind transaction poolers; harmless for direct connections
		})
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage backend %q has no database", cfg.StorageBackend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.StorageBackend == config.BackendSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{
		db:            db,
		backend:       cfg.StorageBackend,
		migrateURL:    cfg.PostgresURL(),
		migrationsDir: cfg.MigrationsDir,
	}, nil
}

// RunMigrations brings the schema up to date. Postgres applies the SQL
// migrations from the migrations directory; SQLite is auto-migrated from the models.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	if m.backend == config.BackendSQLite {
		if err := m.db.AutoMigrate(&models.Lottery{}, &models.Sale{}); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logger.Get().Info("Database migrations completed successfully")
		return nil
	}

	mig, err := m.NewMigrate()
	if err != nil {
		return err
	}
	defer closeMigrate(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// NewMigrate returns a golang-migrate instance over the SQL migrations. The
// caller owns it and must close it.
func (m *Manager) NewMigrate() (*migrate.Migrate, error) {
	if m.backend != config.BackendPostgres {
		return nil, fmt.Errorf("SQL migrations are only available for postgres, not %q", m.backend)
	}

	dir, err := filepath.Abs(m.migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations dir: %w", err)
	}

	mig, err := migrate.New("file://"+filepath.ToSlash(dir), m.migrateURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

func closeMigrate(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
