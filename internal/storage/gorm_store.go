package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const saveBatchSize = 100

// GormStore persists records in a relational table through GORM.
type GormStore[T Record] struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore on db.
func NewGormStore[T Record](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{db: db}
}

// LoadAll returns every row ordered by primary key.
func (s *GormStore[T]) LoadAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return records, nil
}

// SaveAll replaces the table contents with records in one transaction.
// Existing rows are upserted rather than re-inserted, so created_at survives
// and the updated_at trigger fires for changed rows.
func (s *GormStore[T]) SaveAll(ctx context.Context, records []T) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(records) == 0 {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error
		}

		ids := make([]uint, len(records))
		for i, r := range records {
			ids[i] = r.PrimaryKey()
		}
		if err := tx.Where("id NOT IN ?", ids).Delete(new(T)).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&records, saveBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
