package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ElyRami/Loterias/internal/models"
)

// LotteryFinder resolves a lottery by id. The sales ledger depends on the
// catalog only through this lookup.
type LotteryFinder interface {
	GetLotteryByID(id uint) (*models.Lottery, error)
}

// CatalogTotals aggregates the whole catalog.
type CatalogTotals struct {
	Tickets        int             `json:"tickets"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// LotteryServicer defines the contract for the lottery catalog.
type LotteryServicer interface {
	LotteryFinder
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
	ListLotteries() []models.Lottery
	FindLotteryByName(query string) (*models.Lottery, error)
	CreateLottery(ctx context.Context, name string, fractionsPerTicket int, pricePerFraction decimal.Decimal, initialInventory int) (*models.Lottery, error)
	UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) (*models.Lottery, error)
	UpdateInventory(ctx context.Context, id uint, inventory int) (*models.Lottery, error)
	Totals() CatalogTotals
}

// SaleFilter holds optional filters for listing sales. Date bounds are inclusive.
type SaleFilter struct {
	LotteryID *uint
	From      *models.Date
	To        *models.Date
}

// SaleUpdate lists the fields of a sale that may be changed. Nil fields are left alone.
type SaleUpdate struct {
	LotteryID     *uint            `json:"lottery_id"`
	FractionsSold *int             `json:"fractions_sold"`
	Customer      *string          `json:"customer"`
	Seller        *string          `json:"seller"`
	SaleDate      *models.Date     `json:"sale_date"`
	Value         *decimal.Decimal `json:"sale_value"`
}

// IsEmpty reports whether no field is set.
func (u SaleUpdate) IsEmpty() bool {
	return u.LotteryID == nil && u.FractionsSold == nil && u.Customer == nil &&
		u.Seller == nil && u.SaleDate == nil && u.Value == nil
}

// SaleStats summarises the ledger.
type SaleStats struct {
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
	Average   decimal.Decimal `json:"average"`
	FirstSale *models.Date    `json:"first_sale"`
	LastSale  *models.Date    `json:"last_sale"`
}

// SaleServicer defines the contract for the sales ledger.
type SaleServicer interface {
	Load(ctx context.Context) error
	ListSales() []models.Sale
	SearchSales(filter SaleFilter) ([]models.Sale, error)
	GetSaleByID(id uint) (*models.Sale, error)
	GetSalesByLottery(lotteryID uint) []models.Sale
	GetSalesByDateRange(from, to models.Date) ([]models.Sale, error)
	CreateSale(ctx context.Context, lotteryID uint, fractionsSold int, customer, seller string, saleDate models.Date) (*models.Sale, error)
	UpdateSale(ctx context.Context, id uint, update SaleUpdate) (*models.Sale, error)
	DeleteSale(ctx context.Context, id uint) error
	TotalSales() decimal.Decimal
	TotalsByLottery() map[uint]decimal.Decimal
	Stats() SaleStats
}
