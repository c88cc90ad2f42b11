package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/testutil"
)

func init() {
	logger.Init("test")
}

// newLoadedCatalog returns a catalog loaded from a memory store holding lotteries.
func newLoadedCatalog(t *testing.T, lotteries ...models.Lottery) (LotteryServicer, *testutil.MemoryStore[models.Lottery]) {
	t.Helper()

	store := &testutil.MemoryStore[models.Lottery]{Records: lotteries}
	svc := NewLotteryService(store)
	testutil.AssertNoError(t, svc.Load(context.Background()))
	store.SaveCalls = 0
	return svc, store
}

func TestLotteryLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_store_is_seeded", func(t *testing.T) {
		store := &testutil.MemoryStore[models.Lottery]{}
		svc := NewLotteryService(store)
		testutil.AssertNoError(t, svc.Load(ctx))

		if got := len(svc.ListLotteries()); got != 8 {
			t.Fatalf("expected 8 default lotteries, got %d", got)
		}
		if store.SaveCalls != 1 || len(store.Records) != 8 {
			t.Errorf("expected defaults to be persisted once, got %d calls and %d records", store.SaveCalls, len(store.Records))
		}
	})

	t.Run("unreadable_store_uses_defaults_without_writing", func(t *testing.T) {
		store := &testutil.MemoryStore[models.Lottery]{LoadErr: errors.New("connection refused")}
		svc := NewLotteryService(store)
		testutil.AssertNoError(t, svc.Load(ctx))

		if got := len(svc.ListLotteries()); got != 8 {
			t.Fatalf("expected 8 default lotteries, got %d", got)
		}
		if store.SaveCalls != 0 {
			t.Errorf("expected no writes, got %d", store.SaveCalls)
		}
	})

	t.Run("stored_rows_win_over_defaults", func(t *testing.T) {
		svc, _ := newLoadedCatalog(t, testutil.NewTestLottery(t, 7, 10, 1000, 500))

		list := svc.ListLotteries()
		if len(list) != 1 || list[0].ID != 7 {
			t.Fatalf("expected only lottery 7, got %+v", list)
		}
	})

	t.Run("skips_invalid_and_duplicate_rows", func(t *testing.T) {
		good := testutil.NewTestLottery(t, 1, 10, 1000, 500)
		dup := testutil.NewTestLottery(t, 1, 5, 2000, 10)
		bad := testutil.NewTestLottery(t, 2, 10, 1000, 500)
		bad.FractionsPerTicket = 0

		svc, _ := newLoadedCatalog(t, good, dup, bad)

		list := svc.ListLotteries()
		if len(list) != 1 {
			t.Fatalf("expected 1 lottery, got %d", len(list))
		}
		if list[0].Name != good.Name {
			t.Errorf("expected first row to win, got %s", list[0].Name)
		}
	})
}

func TestCreateLottery(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		svc, store := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 3, 5000, 300))

		l, err := svc.CreateLottery(ctx, "Lotería Extra", 10, decimal.NewFromInt(1000), 500)
		testutil.AssertNoError(t, err)

		if l.ID != 2 {
			t.Errorf("expected id 2, got %d", l.ID)
		}
		if l.TicketsEquivalent != 50 {
			t.Errorf("expected 50 tickets, got %d", l.TicketsEquivalent)
		}
		testutil.AssertDecimal(t, l.TotalInventoryValue, "500000")
		testutil.AssertDecimal(t, l.PricePerTicket, "10000")

		if store.SaveCalls != 1 || len(store.Records) != 2 {
			t.Errorf("expected full set of 2 persisted, got %d calls and %d records", store.SaveCalls, len(store.Records))
		}
		if len(svc.ListLotteries()) != 2 {
			t.Error("expected lottery to be committed")
		}
	})

	t.Run("id_follows_highest_existing", func(t *testing.T) {
		svc, _ := newLoadedCatalog(t,
			testutil.NewTestLottery(t, 1, 3, 5000, 300),
			testutil.NewTestLottery(t, 5, 3, 5000, 300),
		)

		l, err := svc.CreateLottery(ctx, "Nueva", 3, decimal.NewFromInt(1000), 0)
		testutil.AssertNoError(t, err)
		if l.ID != 6 {
			t.Errorf("expected id 6, got %d", l.ID)
		}
	})

	cases := []struct {
		name      string
		lottery   string
		fractions int
		price     int64
		inventory int
		code      string
	}{
		{"blank_name", "   ", 3, 1000, 10, "INVALID_INPUT"},
		{"zero_fractions", "X", 0, 1000, 10, "INVALID_FRACTIONS"},
		{"zero_price", "X", 3, 0, 10, "INVALID_PRICE"},
		{"negative_price", "X", 3, -5, 10, "INVALID_PRICE"},
		{"negative_inventory", "X", 3, 1000, -1, "INVALID_INVENTORY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 3, 5000, 300))

			_, err := svc.CreateLottery(ctx, tc.lottery, tc.fractions, decimal.NewFromInt(tc.price), tc.inventory)
			testutil.AssertAppError(t, err, tc.code)

			if store.SaveCalls != 0 || len(svc.ListLotteries()) != 1 {
				t.Error("expected nothing to change")
			}
		})
	}

	t.Run("store_failure_leaves_catalog_unchanged", func(t *testing.T) {
		svc, store := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 3, 5000, 300))
		store.SaveErr = errors.New("disk full")

		_, err := svc.CreateLottery(ctx, "Nueva", 3, decimal.NewFromInt(1000), 0)
		testutil.AssertAppError(t, err, "STORAGE_UNAVAILABLE")

		if len(svc.ListLotteries()) != 1 {
			t.Error("expected catalog to be unchanged")
		}
	})
}

func TestUpdatePrice(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes_derived_fields", func(t *testing.T) {
		svc, store := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 10, 1000, 500))

		l, err := svc.UpdatePrice(ctx, 1, decimal.NewFromInt(2000))
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, l.PricePerFraction, "2000")
		testutil.AssertDecimal(t, l.TotalInventoryValue, "1000000")
		testutil.AssertDecimal(t, l.PricePerTicket, "20000")
		testutil.AssertDecimal(t, store.Records[0].PricePerFraction, "2000")
	})

	t.Run("rejects_non_positive", func(t *testing.T) {
		svc, store := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 10, 1000, 500))

		_, err := svc.UpdatePrice(ctx, 1, decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_PRICE")

		got, _ := svc.GetLotteryByID(1)
		testutil.AssertDecimal(t, got.PricePerFraction, "1000")
		if store.SaveCalls != 0 {
			t.Errorf("expected no writes, got %d", store.SaveCalls)
		}
	})

	t.Run("rejects_sub_cent_price", func(t *testing.T) {
		svc, store := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 10, 1000, 500))

		_, err := svc.UpdatePrice(ctx, 1, decimal.RequireFromString("1000.555"))
		testutil.AssertAppError(t, err, "INVALID_PRICE")

		got, _ := svc.GetLotteryByID(1)
		testutil.AssertDecimal(t, got.PricePerFraction, "1000")
		if store.SaveCalls != 0 {
			t.Errorf("expected no writes, got %d", store.SaveCalls)
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		svc, _ := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 10, 1000, 500))

		_, err := svc.UpdatePrice(ctx, 99, decimal.NewFromInt(10))
		testutil.AssertAppError(t, err, "LOTTERY_NOT_FOUND")
	})

	t.Run("store_failure_leaves_price_unchanged", func(t *testing.T) {
		svc, store := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 10, 1000, 500))
		store.SaveErr = errors.New("connection reset")

		_, err := svc.UpdatePrice(ctx, 1, decimal.NewFromInt(2000))
		testutil.AssertAppError(t, err, "STORAGE_UNAVAILABLE")

		got, _ := svc.GetLotteryByID(1)
		testutil.AssertDecimal(t, got.PricePerFraction, "1000")
		testutil.AssertDecimal(t, got.TotalInventoryValue, "500000")
	})
}

func TestUpdateInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes_tickets", func(t *testing.T) {
		svc, _ := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 3, 6000, 300))

		l, err := svc.UpdateInventory(ctx, 1, 301)
		testutil.AssertNoError(t, err)

		if l.TicketsEquivalent != 100 {
			t.Errorf("expected 100 tickets, got %d", l.TicketsEquivalent)
		}
		testutil.AssertDecimal(t, l.TotalInventoryValue, "1806000")
	})

	t.Run("zero_is_allowed", func(t *testing.T) {
		svc, _ := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 3, 6000, 300))

		l, err := svc.UpdateInventory(ctx, 1, 0)
		testutil.AssertNoError(t, err)
		if l.TicketsEquivalent != 0 || !l.TotalInventoryValue.IsZero() {
			t.Errorf("expected empty inventory, got %+v", l)
		}
	})

	t.Run("rejects_negative", func(t *testing.T) {
		svc, _ := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 3, 6000, 300))

		_, err := svc.UpdateInventory(ctx, 1, -1)
		testutil.AssertAppError(t, err, "INVALID_INVENTORY")
	})
}

func TestFindLotteryByName(t *testing.T) {
	svc, _ := newLoadedCatalog(t, models.DefaultLotteries()...)

	t.Run("accent_and_case_insensitive", func(t *testing.T) {
		l, err := svc.FindLotteryByName("  MEDELLIN ")
		testutil.AssertNoError(t, err)
		if l.Name != "Lotería de Medellín" {
			t.Errorf("unexpected match %s", l.Name)
		}
	})

	t.Run("first_in_insertion_order", func(t *testing.T) {
		l, err := svc.FindLotteryByName("loteria")
		testutil.AssertNoError(t, err)
		if l.ID != 1 {
			t.Errorf("expected first lottery, got %d", l.ID)
		}
	})

	t.Run("miss", func(t *testing.T) {
		_, err := svc.FindLotteryByName("Santander")
		testutil.AssertAppError(t, err, "LOTTERY_NOT_FOUND")
	})

	t.Run("blank_query", func(t *testing.T) {
		_, err := svc.FindLotteryByName(" ¿? ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestLotteryTotals(t *testing.T) {
	svc, _ := newLoadedCatalog(t, models.DefaultLotteries()...)

	totals := svc.Totals()
	if totals.Tickets != 800 {
		t.Errorf("expected 800 tickets, got %d", totals.Tickets)
	}
	testutil.AssertDecimal(t, totals.InventoryValue, "9800000")
}

func TestLotteryReadsReturnCopies(t *testing.T) {
	svc, _ := newLoadedCatalog(t, testutil.NewTestLottery(t, 1, 10, 1000, 500))

	l, err := svc.GetLotteryByID(1)
	testutil.AssertNoError(t, err)
	l.InitialInventory = 1

	list := svc.ListLotteries()
	list[0].Name = "changed"

	again, _ := svc.GetLotteryByID(1)
	if again.InitialInventory != 500 || again.Name == "changed" {
		t.Errorf("catalog was modified through a returned value: %+v", again)
	}
}
