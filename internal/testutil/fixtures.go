package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ElyRami/Loterias/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestLottery builds a valid lottery without persisting it.
func NewTestLottery(t *testing.T, id uint, fractionsPerTicket int, price int64, inventory int) models.Lottery {
	t.Helper()

	l, err := models.NewLottery(id, fmt.Sprintf("Lotería %d", nextID()), fractionsPerTicket, decimal.NewFromInt(price), inventory)
	if err != nil {
		t.Fatalf("failed to build test lottery: %v", err)
	}
	return *l
}

// NewTestSale builds a valid sale without persisting it.
func NewTestSale(t *testing.T, id, lotteryID uint, fractions int, value int64, date models.Date) models.Sale {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	s := models.Sale{
		ID:            id,
		LotteryID:     lotteryID,
		FractionsSold: fractions,
		Customer:      fmt.Sprintf("Cliente %d", nextID()),
		Seller:        "Vendedor",
		SaleDate:      date,
		Value:         decimal.NewFromInt(value),
	}
	s.Touch(now)
	return s
}

// CreateTestLottery inserts a lottery row directly.
func CreateTestLottery(t *testing.T, db *gorm.DB, id uint, fractionsPerTicket int, price int64, inventory int) models.Lottery {
	t.Helper()

	l := NewTestLottery(t, id, fractionsPerTicket, price, inventory)
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("failed to create test lottery: %v", err)
	}
	return l
}

// CreateTestSale inserts a sale row directly.
func CreateTestSale(t *testing.T, db *gorm.DB, id, lotteryID uint, fractions int, value int64, date models.Date) models.Sale {
	t.Helper()

	s := NewTestSale(t, id, lotteryID, fractions, value, date)
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("failed to create test sale: %v", err)
	}
	return s
}

// MemoryStore is an in-memory store with injectable failures.
type MemoryStore[T any] struct {
	Records   []T
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// LoadAll returns a copy of Records or LoadErr.
func (m *MemoryStore[T]) LoadAll(_ context.Context) ([]T, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]T(nil), m.Records...), nil
}

// SaveAll replaces Records unless SaveErr is set.
func (m *MemoryStore[T]) SaveAll(_ context.Context, records []T) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Records = append([]T(nil), records...)
	return nil
}
