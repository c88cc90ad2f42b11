package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
)

var errPriceScale = apperrors.WithMessage(apperrors.ErrInvalidPrice, "price per fraction cannot have more than 2 decimal places")

// fitsCents reports whether d is representable in the DECIMAL(_,2) money columns.
func fitsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// Lottery is a catalog entry for one lottery product. The last three fields
// are derived from the stored ones and are rewritten by recalculate after
// every mutation, decode and database read.
type Lottery struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name               string          `gorm:"size:255;not null" json:"name"`
	FractionsPerTicket int             `gorm:"not null;check:fractions_per_ticket > 0" json:"fractions_per_ticket"`
	PricePerFraction   decimal.Decimal `gorm:"type:decimal(12,2);not null;check:price_per_fraction >= 0" json:"price_per_fraction"`
	InitialInventory   int             `gorm:"not null;check:initial_inventory >= 0" json:"initial_inventory"`

	// Derived
	TicketsEquivalent   int             `gorm:"not null" json:"tickets_equivalent"`
	TotalInventoryValue decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_inventory_value"`
	PricePerTicket      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_ticket"`
}

// TableName keeps the historical table name.
func (Lottery) TableName() string { return "loterias" }

// PrimaryKey returns the lottery identifier.
func (l Lottery) PrimaryKey() uint { return l.ID }

// NewLottery builds a lottery with its derived fields filled in.
func NewLottery(id uint, name string, fractionsPerTicket int, pricePerFraction decimal.Decimal, initialInventory int) (*Lottery, error) {
	l := &Lottery{
		ID:                 id,
		Name:               strings.TrimSpace(name),
		FractionsPerTicket: fractionsPerTicket,
		PricePerFraction:   pricePerFraction,
		InitialInventory:   initialInventory,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.recalculate()
	return l, nil
}

// Validate checks the stored attributes against the record bounds.
func (l *Lottery) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "lottery name is required")
	}
	if l.FractionsPerTicket <= 0 {
		return apperrors.ErrInvalidFractions
	}
	if l.PricePerFraction.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidPrice, "price per fraction cannot be negative")
	}
	if !fitsCents(l.PricePerFraction) {
		return errPriceScale
	}
	if l.InitialInventory < 0 {
		return apperrors.ErrInvalidInventory
	}
	return nil
}

// SetPricePerFraction changes the price. Zero and negative prices are rejected.
func (l *Lottery) SetPricePerFraction(price decimal.Decimal) error {
	if !price.IsPositive() {
		return apperrors.ErrInvalidPrice
	}
	if !fitsCents(price) {
		return errPriceScale
	}
	l.PricePerFraction = price
	l.recalculate()
	return nil
}

// SetInitialInventory changes the inventory, in fractions. Negative values are rejected.
func (l *Lottery) SetInitialInventory(fractions int) error {
	if fractions < 0 {
		return apperrors.ErrInvalidInventory
	}
	l.InitialInventory = fractions
	l.recalculate()
	return nil
}

func (l *Lottery) recalculate() {
	if l.FractionsPerTicket > 0 {
		l.TicketsEquivalent = l.InitialInventory / l.FractionsPerTicket
	} else {
		l.TicketsEquivalent = 0
	}
	l.TotalInventoryValue = l.PricePerFraction.Mul(decimal.NewFromInt(int64(l.InitialInventory)))
	l.PricePerTicket = l.PricePerFraction.Mul(decimal.NewFromInt(int64(l.FractionsPerTicket)))
}

// UnmarshalJSON decodes a lottery and recomputes its derived fields, so
// hand-edited files cannot carry stale totals.
func (l *Lottery) UnmarshalJSON(data []byte) error {
	type plain Lottery
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*l = Lottery(decoded)
	l.recalculate()
	return nil
}

// AfterFind recomputes derived columns read from the database.
func (l *Lottery) AfterFind(_ *gorm.DB) error {
	l.recalculate()
	return nil
}

// BeforeSave keeps the redundant derived columns in step with the stored ones.
func (l *Lottery) BeforeSave(_ *gorm.DB) error {
	l.recalculate()
	return nil
}

// DefaultLotteries is the built-in catalog used when no backing store has data.
func DefaultLotteries() []Lottery {
	seed := []struct {
		name      string
		fractions int
		price     int64
		inventory int
	}{
		{"Lotería de Bogotá", 3, 5000, 300},
		{"Lotería de Medellín", 3, 6000, 300},
		{"Lotería de Boyacá", 4, 4000, 400},
		{"Lotería del Valle", 3, 4000, 300},
		{"Lotería de Manizales", 3, 4000, 300},
		{"Lotería de Cundinamarca", 3, 3000, 300},
		{"Lotería de la Cruz Roja", 2, 3500, 200},
		{"Lotería del Huila", 3, 3000, 300},
	}

	lotteries := make([]Lottery, 0, len(seed))
	for i, s := range seed {
		l := Lottery{
			ID:                 uint(i + 1),
			Name:               s.name,
			FractionsPerTicket: s.fractions,
			PricePerFraction:   decimal.NewFromInt(s.price),
			InitialInventory:   s.inventory,
		}
		l.recalculate()
		lotteries = append(lotteries, l)
	}
	return lotteries
}
