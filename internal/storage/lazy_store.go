package storage

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Dialer opens a database handle.
type Dialer func() (*gorm.DB, error)

// Connection dials the database on demand and keeps the first handle that
// works. Failed attempts are not cached; the next caller dials again.
type Connection struct {
	dial Dialer

	mu sync.Mutex
	db *gorm.DB
}

// NewConnection creates a Connection that has not dialed yet.
func NewConnection(dial Dialer) *Connection {
	return &Connection{dial: dial}
}

// DB returns the open handle, dialing first if no attempt has succeeded.
func (c *Connection) DB() (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}
	db, err := c.dial()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	c.db = db
	return db, nil
}

// LazyGormStore is a GormStore over a Connection. SaveAll is refused until a
// LoadAll has succeeded, so a database reached late is never overwritten with
// records that were not read from it.
type LazyGormStore[T Record] struct {
	conn *Connection

	mu     sync.Mutex
	loaded bool
}

// NewLazyGormStore creates a LazyGormStore on conn.
func NewLazyGormStore[T Record](conn *Connection) *LazyGormStore[T] {
	return &LazyGormStore[T]{conn: conn}
}

// LoadAll dials if needed and returns every row ordered by primary key.
func (s *LazyGormStore[T]) LoadAll(ctx context.Context) ([]T, error) {
	db, err := s.conn.DB()
	if err != nil {
		return nil, err
	}
	records, err := NewGormStore[T](db).LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return records, nil
}

// SaveAll replaces the table contents with records.
func (s *LazyGormStore[T]) SaveAll(ctx context.Context, records []T) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if !loaded {
		return fmt.Errorf("%w: table has not been read since startup", ErrUnavailable)
	}

	db, err := s.conn.DB()
	if err != nil {
		return err
	}
	return NewGormStore[T](db).SaveAll(ctx, records)
}
