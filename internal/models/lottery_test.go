package models_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/testutil"
)

func TestNewLottery(t *testing.T) {
	t.Run("derives_fields", func(t *testing.T) {
		l, err := models.NewLottery(1, "Lotería de Medellín", 10, decimal.NewFromInt(1000), 500)
		testutil.AssertNoError(t, err)

		if l.TicketsEquivalent != 50 {
			t.Errorf("expected 50 tickets, got %d", l.TicketsEquivalent)
		}
		testutil.AssertDecimal(t, l.TotalInventoryValue, "500000")
		testutil.AssertDecimal(t, l.PricePerTicket, "10000")
	})

	t.Run("floor_division", func(t *testing.T) {
		l, err := models.NewLottery(1, "Boyacá", 4, decimal.NewFromInt(4000), 403)
		testutil.AssertNoError(t, err)

		if l.TicketsEquivalent != 100 {
			t.Errorf("expected 100 tickets, got %d", l.TicketsEquivalent)
		}
	})

	t.Run("zero_price_and_inventory_allowed", func(t *testing.T) {
		l, err := models.NewLottery(1, "Gratis", 3, decimal.Zero, 0)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, l.TotalInventoryValue, "0")
	})

	t.Run("rejects_sub_cent_price", func(t *testing.T) {
		_, err := models.NewLottery(1, "Valle", 3, decimal.RequireFromString("1000.555"), 10)
		testutil.AssertAppError(t, err, "INVALID_PRICE")

		l, err := models.NewLottery(1, "Valle", 3, decimal.RequireFromString("1000.55"), 10)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, l.TotalInventoryValue, "10005.5")
	})

	t.Run("rejects_bad_input", func(t *testing.T) {
		cases := []struct {
			name      string
			lottery   string
			fractions int
			price     int64
			inventory int
			code      string
		}{
			{"blank_name", "   ", 3, 1000, 10, "INVALID_INPUT"},
			{"zero_fractions", "Valle", 0, 1000, 10, "INVALID_FRACTIONS"},
			{"negative_price", "Valle", 3, -1, 10, "INVALID_PRICE"},
			{"negative_inventory", "Valle", 3, 1000, -5, "INVALID_INVENTORY"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := models.NewLottery(1, tc.lottery, tc.fractions, decimal.NewFromInt(tc.price), tc.inventory)
				testutil.AssertAppError(t, err, tc.code)
			})
		}
	})
}

func TestLotterySetters(t *testing.T) {
	newLottery := func(t *testing.T) *models.Lottery {
		t.Helper()
		l, err := models.NewLottery(1, "Lotería de Bogotá", 10, decimal.NewFromInt(1000), 500)
		testutil.AssertNoError(t, err)
		return l
	}

	t.Run("price_rederives", func(t *testing.T) {
		l := newLottery(t)
		testutil.AssertNoError(t, l.SetPricePerFraction(decimal.NewFromInt(1500)))

		testutil.AssertDecimal(t, l.PricePerFraction, "1500")
		testutil.AssertDecimal(t, l.TotalInventoryValue, "750000")
		testutil.AssertDecimal(t, l.PricePerTicket, "15000")
	})

	t.Run("price_must_be_positive", func(t *testing.T) {
		l := newLottery(t)
		testutil.AssertAppError(t, l.SetPricePerFraction(decimal.Zero), "INVALID_PRICE")
		testutil.AssertAppError(t, l.SetPricePerFraction(decimal.NewFromInt(-10)), "INVALID_PRICE")

		testutil.AssertDecimal(t, l.PricePerFraction, "1000")
		testutil.AssertDecimal(t, l.TotalInventoryValue, "500000")
	})

	t.Run("inventory_rederives", func(t *testing.T) {
		l := newLottery(t)
		testutil.AssertNoError(t, l.SetInitialInventory(95))

		if l.TicketsEquivalent != 9 {
			t.Errorf("expected 9 tickets, got %d", l.TicketsEquivalent)
		}
		testutil.AssertDecimal(t, l.TotalInventoryValue, "95000")
	})

	t.Run("inventory_zero_allowed_negative_rejected", func(t *testing.T) {
		l := newLottery(t)
		testutil.AssertNoError(t, l.SetInitialInventory(0))
		if l.TicketsEquivalent != 0 {
			t.Errorf("expected 0 tickets, got %d", l.TicketsEquivalent)
		}
		testutil.AssertAppError(t, l.SetInitialInventory(-1), "INVALID_INVENTORY")
		if l.InitialInventory != 0 {
			t.Errorf("rejected update must not change inventory, got %d", l.InitialInventory)
		}
	})
}

func TestLotteryUnmarshalRecalculates(t *testing.T) {
	raw := `{"id":7,"name":"Huila","fractions_per_ticket":3,"price_per_fraction":3000,
		"initial_inventory":30,"tickets_equivalent":999,"total_inventory_value":"1","price_per_ticket":"1"}`

	var l models.Lottery
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if l.ID != 7 || l.Name != "Huila" {
		t.Errorf("unexpected identity %d %q", l.ID, l.Name)
	}
	if l.TicketsEquivalent != 10 {
		t.Errorf("expected stale tickets to be recomputed to 10, got %d", l.TicketsEquivalent)
	}
	testutil.AssertDecimal(t, l.TotalInventoryValue, "90000")
	testutil.AssertDecimal(t, l.PricePerTicket, "9000")
}

func TestDefaultLotteries(t *testing.T) {
	seed := models.DefaultLotteries()
	if len(seed) == 0 {
		t.Fatal("default catalog must not be empty")
	}
	for i, l := range seed {
		if l.ID != uint(i+1) {
			t.Errorf("expected sequential id %d, got %d", i+1, l.ID)
		}
		if err := l.Validate(); err != nil {
			t.Errorf("seed %q invalid: %v", l.Name, err)
		}
		want := l.PricePerFraction.Mul(decimal.NewFromInt(int64(l.FractionsPerTicket)))
		if !l.PricePerTicket.Equal(want) {
			t.Errorf("seed %q has inconsistent price per ticket", l.Name)
		}
	}
}
