package models

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
)

// Sale records fractions of one lottery sold to a customer. Value is fixed
// when the sale is created and is not recomputed from the lottery afterwards.
type Sale struct {
	ID            uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	LotteryID     uint            `gorm:"not null;index:idx_ventas_lottery_id" json:"lottery_id"`
	FractionsSold int             `gorm:"not null;check:fractions_sold > 0" json:"fractions_sold"`
	Customer      string          `gorm:"size:100;not null;index:idx_ventas_customer" json:"customer"`
	Seller        string          `gorm:"size:100;not null;index:idx_ventas_seller" json:"seller"`
	SaleDate      Date            `gorm:"not null;index:idx_ventas_sale_date" json:"sale_date"`
	Value         decimal.Decimal `gorm:"column:sale_value;type:decimal(12,2);not null;check:sale_value >= 0" json:"sale_value"`
	Timestamps
}

// TableName keeps the historical table name.
func (Sale) TableName() string { return "ventas" }

// PrimaryKey returns the sale identifier.
func (s Sale) PrimaryKey() uint { return s.ID }

// Validate checks the schema-level constraints of a sale.
func (s *Sale) Validate() error {
	if s.FractionsSold <= 0 {
		return apperrors.ErrInvalidSaleAmount
	}
	if s.Value.IsNegative() {
		return apperrors.ErrInvalidSaleValue
	}
	if !fitsCents(s.Value) {
		return apperrors.WithMessage(apperrors.ErrInvalidSaleValue, "sale value cannot have more than 2 decimal places")
	}
	if strings.TrimSpace(s.Customer) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "customer name is required")
	}
	if strings.TrimSpace(s.Seller) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "seller name is required")
	}
	if s.SaleDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "sale date is required")
	}
	return nil
}

// SaleValue is the amount charged for fractions at pricePerFraction.
func SaleValue(fractions int, pricePerFraction decimal.Decimal) decimal.Decimal {
	return pricePerFraction.Mul(decimal.NewFromInt(int64(fractions)))
}
