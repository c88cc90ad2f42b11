package services

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/storage"
	"github.com/ElyRami/Loterias/internal/textutil"
)

// lotteryService keeps the catalog in memory and writes the full set back
// to its store after every change.
type lotteryService struct {
	store storage.Store[models.Lottery]
	log   *zap.SugaredLogger

	mu        sync.RWMutex
	lotteries []models.Lottery
}

// NewLotteryService creates a new LotteryServicer. Call Load before use.
func NewLotteryService(store storage.Store[models.Lottery]) LotteryServicer {
	return &lotteryService{
		store: store,
		log:   logger.Named("lotteries"),
	}
}

// Load replaces the in-memory catalog with the store contents. Load failures
// are not fatal: the built-in catalog is used instead, and it is written back
// only when the store was reachable and empty.
func (s *lotteryService) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Warnw("failed to load lotteries, using default catalog", "error", err)
		s.replace(models.DefaultLotteries())
		return nil
	}

	if len(stored) == 0 {
		seeds := models.DefaultLotteries()
		if err := s.store.SaveAll(ctx, seeds); err != nil {
			s.log.Warnw("failed to persist default catalog", "error", err)
		} else {
			s.log.Infow("seeded default catalog", "count", len(seeds))
		}
		s.replace(seeds)
		return nil
	}

	lotteries := make([]models.Lottery, 0, len(stored))
	seen := make(map[uint]struct{}, len(stored))
	for _, l := range stored {
		if _, dup := seen[l.ID]; dup {
			s.log.Warnw("skipping duplicate lottery", "id", l.ID)
			continue
		}
		if err := l.Validate(); err != nil {
			s.log.Warnw("skipping invalid lottery", "id", l.ID, "error", err)
			continue
		}
		seen[l.ID] = struct{}{}
		lotteries = append(lotteries, l)
	}

	if len(lotteries) == 0 {
		s.log.Warnw("no usable lotteries in store, using default catalog", "rows", len(stored))
		lotteries = models.DefaultLotteries()
	}

	s.replace(lotteries)
	s.log.Infow("loaded lotteries", "count", len(lotteries))
	return nil
}

// Reload discards the in-memory catalog and loads it again.
func (s *lotteryService) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *lotteryService) replace(lotteries []models.Lottery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lotteries = lotteries
}

// ListLotteries returns a copy of the catalog in insertion order.
func (s *lotteryService) ListLotteries() []models.Lottery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Lottery, len(s.lotteries))
	copy(out, s.lotteries)
	return out
}

// GetLotteryByID returns a lottery by its ID.
func (s *lotteryService) GetLotteryByID(id uint) (*models.Lottery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrLotteryNotFound
	}
	l := s.lotteries[i]
	return &l, nil
}

// FindLotteryByName returns the first lottery whose normalized name contains
// the normalized query.
func (s *lotteryService) FindLotteryByName(query string) (*models.Lottery, error) {
	needle := textutil.Normalize(query)
	if needle == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "search text is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.lotteries {
		if textutil.Contains(l.Name, needle) {
			found := l
			return &found, nil
		}
	}
	return nil, apperrors.ErrLotteryNotFound
}

// CreateLottery adds a lottery to the catalog.
func (s *lotteryService) CreateLottery(
	ctx context.Context,
	name string,
	fractionsPerTicket int,
	pricePerFraction decimal.Decimal,
	initialInventory int,
) (*models.Lottery, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "lottery name is required")
	}
	if fractionsPerTicket <= 0 {
		return nil, apperrors.ErrInvalidFractions
	}
	if !pricePerFraction.IsPositive() {
		return nil, apperrors.ErrInvalidPrice
	}
	if initialInventory < 0 {
		return nil, apperrors.ErrInvalidInventory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lottery, err := models.NewLottery(s.nextID(), name, fractionsPerTicket, pricePerFraction, initialInventory)
	if err != nil {
		return nil, err
	}

	candidate := make([]models.Lottery, len(s.lotteries), len(s.lotteries)+1)
	copy(candidate, s.lotteries)
	candidate = append(candidate, *lottery)

	if err := s.persist(ctx, candidate); err != nil {
		return nil, err
	}
	s.lotteries = candidate

	s.log.Infow("lottery created", "id", lottery.ID, "name", lottery.Name)
	return lottery, nil
}

// UpdatePrice changes the price per fraction of a lottery.
func (s *lotteryService) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) (*models.Lottery, error) {
	return s.mutate(ctx, id, func(l *models.Lottery) error {
		return l.SetPricePerFraction(price)
	})
}

// UpdateInventory changes the inventory, in fractions, of a lottery.
func (s *lotteryService) UpdateInventory(ctx context.Context, id uint, inventory int) (*models.Lottery, error) {
	return s.mutate(ctx, id, func(l *models.Lottery) error {
		return l.SetInitialInventory(inventory)
	})
}

// mutate applies change to a copy of one lottery, persists the resulting set
// and only then swaps it in.
func (s *lotteryService) mutate(ctx context.Context, id uint, change func(*models.Lottery) error) (*models.Lottery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrLotteryNotFound
	}

	updated := s.lotteries[i]
	if err := change(&updated); err != nil {
		return nil, err
	}

	candidate := make([]models.Lottery, len(s.lotteries))
	copy(candidate, s.lotteries)
	candidate[i] = updated

	if err := s.persist(ctx, candidate); err != nil {
		return nil, err
	}
	s.lotteries = candidate

	s.log.Infow("lottery updated", "id", id,
		"price_per_fraction", updated.PricePerFraction.String(),
		"initial_inventory", updated.InitialInventory)
	return &updated, nil
}

// Totals sums tickets and inventory value over the catalog.
func (s *lotteryService) Totals() CatalogTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := CatalogTotals{InventoryValue: decimal.Zero}
	for _, l := range s.lotteries {
		totals.Tickets += l.TicketsEquivalent
		totals.InventoryValue = totals.InventoryValue.Add(l.TotalInventoryValue)
	}
	return totals
}

func (s *lotteryService) persist(ctx context.Context, candidate []models.Lottery) error {
	if err := s.store.SaveAll(ctx, candidate); err != nil {
		s.log.Errorw("failed to persist lotteries", "error", err)
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// indexOf must be called with mu held.
func (s *lotteryService) indexOf(id uint) int {
	for i := range s.lotteries {
		if s.lotteries[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with mu held.
func (s *lotteryService) nextID() uint {
	var highest uint
	for _, l := range s.lotteries {
		if l.ID > highest {
			highest = l.ID
		}
	}
	return highest + 1
}
