package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/storage"
)

// saleService keeps the ledger in memory and writes the full set back to
// its store after every change.
type saleService struct {
	store     storage.Store[models.Sale]
	lotteries LotteryFinder
	now       func() time.Time
	log       *zap.SugaredLogger

	mu    sync.RWMutex
	sales []models.Sale
}

// NewSaleService creates a new SaleServicer. Call Load before use.
func NewSaleService(store storage.Store[models.Sale], lotteries LotteryFinder) SaleServicer {
	return newSaleService(store, lotteries, time.Now)
}

func newSaleService(store storage.Store[models.Sale], lotteries LotteryFinder, now func() time.Time) *saleService {
	return &saleService{
		store:     store,
		lotteries: lotteries,
		now:       now,
		log:       logger.Named("sales"),
	}
}

// Load replaces the in-memory ledger with the store contents. An unreadable
// store leaves the ledger empty.
func (s *saleService) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Warnw("failed to load sales, starting with an empty ledger", "error", err)
		stored = nil
	}

	sales := make([]models.Sale, 0, len(stored))
	seen := make(map[uint]struct{}, len(stored))
	for _, sale := range stored {
		if _, dup := seen[sale.ID]; dup {
			s.log.Warnw("skipping duplicate sale", "id", sale.ID)
			continue
		}
		if err := sale.Validate(); err != nil {
			s.log.Warnw("skipping invalid sale", "id", sale.ID, "error", err)
			continue
		}
		seen[sale.ID] = struct{}{}
		sales = append(sales, sale)
	}

	s.mu.Lock()
	s.sales = sales
	s.mu.Unlock()

	s.log.Infow("loaded sales", "count", len(sales))
	return nil
}

// ListSales returns a copy of the ledger in insertion order.
func (s *saleService) ListSales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// SearchSales returns the sales matching every filter that is set.
func (s *saleService) SearchSales(filter SaleFilter) ([]models.Sale, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start date must not be after end date")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Sale{}
	for _, sale := range s.sales {
		if filter.LotteryID != nil && sale.LotteryID != *filter.LotteryID {
			continue
		}
		if filter.From != nil && sale.SaleDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && sale.SaleDate.After(*filter.To) {
			continue
		}
		out = append(out, sale)
	}
	return out, nil
}

// GetSaleByID returns a sale by its ID.
func (s *saleService) GetSaleByID(id uint) (*models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrSaleNotFound
	}
	sale := s.sales[i]
	return &sale, nil
}

// GetSalesByLottery returns the sales of one lottery in insertion order.
func (s *saleService) GetSalesByLottery(lotteryID uint) []models.Sale {
	sales, _ := s.SearchSales(SaleFilter{LotteryID: &lotteryID})
	return sales
}

// GetSalesByDateRange returns the sales dated between from and to, both inclusive.
func (s *saleService) GetSalesByDateRange(from, to models.Date) ([]models.Sale, error) {
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start and end dates are required")
	}
	return s.SearchSales(SaleFilter{From: &from, To: &to})
}

// CreateSale records a sale. Its value is the fractions sold times the
// lottery's current price and does not follow later price changes.
func (s *saleService) CreateSale(
	ctx context.Context,
	lotteryID uint,
	fractionsSold int,
	customer, seller string,
	saleDate models.Date,
) (*models.Sale, error) {
	customer = strings.TrimSpace(customer)
	seller = strings.TrimSpace(seller)

	if fractionsSold <= 0 {
		return nil, apperrors.ErrInvalidSaleAmount
	}
	if customer == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "customer name is required")
	}
	if seller == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "seller name is required")
	}

	lottery, err := s.lotteries.GetLotteryByID(lotteryID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if saleDate.IsZero() {
		saleDate = models.DateOf(now)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sale := models.Sale{
		ID:            s.nextID(),
		LotteryID:     lottery.ID,
		FractionsSold: fractionsSold,
		Customer:      customer,
		Seller:        seller,
		SaleDate:      saleDate,
		Value:         models.SaleValue(fractionsSold, lottery.PricePerFraction),
	}
	sale.Touch(now)

	candidate := make([]models.Sale, len(s.sales), len(s.sales)+1)
	copy(candidate, s.sales)
	candidate = append(candidate, sale)

	if err := s.persist(ctx, candidate); err != nil {
		return nil, err
	}
	s.sales = candidate

	s.log.Infow("sale created", "id", sale.ID, "lottery_id", sale.LotteryID,
		"fractions", sale.FractionsSold, "value", sale.Value.String())
	return &sale, nil
}

// UpdateSale changes the allow-listed fields of a sale. The stored value is
// kept as is unless a new value is supplied.
func (s *saleService) UpdateSale(ctx context.Context, id uint, update SaleUpdate) (*models.Sale, error) {
	if update.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrSaleNotFound
	}

	updated := s.sales[i]
	if update.LotteryID != nil {
		updated.LotteryID = *update.LotteryID
	}
	if update.FractionsSold != nil {
		updated.FractionsSold = *update.FractionsSold
	}
	if update.Customer != nil {
		updated.Customer = strings.TrimSpace(*update.Customer)
	}
	if update.Seller != nil {
		updated.Seller = strings.TrimSpace(*update.Seller)
	}
	if update.SaleDate != nil {
		updated.SaleDate = *update.SaleDate
	}
	if update.Value != nil {
		updated.Value = *update.Value
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	updated.Touch(s.now())

	candidate := make([]models.Sale, len(s.sales))
	copy(candidate, s.sales)
	candidate[i] = updated

	if err := s.persist(ctx, candidate); err != nil {
		return nil, err
	}
	s.sales = candidate

	s.log.Infow("sale updated", "id", id)
	return &updated, nil
}

// DeleteSale removes a sale from the ledger.
func (s *saleService) DeleteSale(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return apperrors.ErrSaleNotFound
	}

	candidate := make([]models.Sale, 0, len(s.sales)-1)
	candidate = append(candidate, s.sales[:i]...)
	candidate = append(candidate, s.sales[i+1:]...)

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.sales = candidate

	s.log.Infow("sale deleted", "id", id)
	return nil
}

// TotalSales sums the value of every sale.
func (s *saleService) TotalSales() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, sale := range s.sales {
		total = total.Add(sale.Value)
	}
	return total
}

// TotalsByLottery sums sale values per lottery. Lotteries without sales are absent.
func (s *saleService) TotalsByLottery() map[uint]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[uint]decimal.Decimal)
	for _, sale := range s.sales {
		totals[sale.LotteryID] = totals[sale.LotteryID].Add(sale.Value)
	}
	return totals
}

// Stats summarises the ledger. An empty ledger yields zeros and no dates.
func (s *saleService) Stats() SaleStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := SaleStats{Total: decimal.Zero, Average: decimal.Zero}
	if len(s.sales) == 0 {
		return stats
	}

	first := s.sales[0].SaleDate
	last := first
	for _, sale := range s.sales {
		stats.Total = stats.Total.Add(sale.Value)
		if sale.SaleDate.Before(first) {
			first = sale.SaleDate
		}
		if sale.SaleDate.After(last) {
			last = sale.SaleDate
		}
	}

	stats.Count = len(s.sales)
	stats.Average = stats.Total.DivRound(decimal.NewFromInt(int64(stats.Count)), 2)
	stats.FirstSale = &first
	stats.LastSale = &last
	return stats
}

func (s *saleService) persist(ctx context.Context, candidate []models.Sale) error {
	if err := s.store.SaveAll(ctx, candidate); err != nil {
		s.log.Errorw("failed to persist sales", "error", err)
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// indexOf must be called with mu held.
func (s *saleService) indexOf(id uint) int {
	for i := range s.sales {
		if s.sales[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with mu held.
func (s *saleService) nextID() uint {
	var highest uint
	for _, sale := range s.sales {
		if sale.ID > highest {
			highest = sale.ID
		}
	}
	return highest + 1
}
