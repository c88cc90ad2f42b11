// Package storage defines the persistence port used by the services and its
// relational and flat-file implementations. Every implementation treats
// SaveAll as a full-set overwrite: after it returns nil the store holds
// exactly the records passed in.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/ElyRami/Loterias/internal/config"
	"github.com/ElyRami/Loterias/internal/models"
)

// File names used by the JSON backend inside DATA_DIR.
const (
	LotteriesFile = "loterias.json"
	SalesFile     = "ventas.json"
)

var (
	// ErrUnavailable is returned when the store cannot be reached or written.
	ErrUnavailable = errors.New("backing store unavailable")
	// ErrCorruptData is returned when persisted data cannot be decoded.
	ErrCorruptData = errors.New("backing store data is corrupt")
)

// Record is a persisted row identified by an integer primary key.
type Record interface {
	PrimaryKey() uint
}

// Store loads and saves the complete set of records of one entity.
type Store[T Record] interface {
	LoadAll(ctx context.Context) ([]T, error)
	SaveAll(ctx context.Context, records []T) error
}

// Stores bundles the stores of both entities for one backend.
type Stores struct {
	Lotteries Store[models.Lottery]
	Sales     Store[models.Sale]
}

// Open returns the stores for the configured backend. The relational
// backends need an open database handle; the JSON backend ignores it.
func Open(cfg *config.Config, db *gorm.DB) (*Stores, error) {
	switch cfg.StorageBackend {
	case config.BackendJSON:
		return &Stores{
			Lotteries: NewJSONFileStore[models.Lottery](filepath.Join(cfg.DataDir, LotteriesFile)),
			Sales:     NewJSONFileStore[models.Sale](filepath.Join(cfg.DataDir, SalesFile)),
		}, nil
	case config.BackendPostgres, config.BackendSQLite:
		if db == nil {
			return nil, fmt.Errorf("storage backend %q requires a database connection", cfg.StorageBackend)
		}
		return &Stores{
			Lotteries: NewGormStore[models.Lottery](db),
			Sales:     NewGormStore[models.Sale](db),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}

// OpenConnection returns relational stores that dial conn on first use.
func OpenConnection(conn *Connection) *Stores {
	return &Stores{
		Lotteries: NewLazyGormStore[models.Lottery](conn),
		Sales:     NewLazyGormStore[models.Sale](conn),
	}
}
