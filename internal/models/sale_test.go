package models_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/testutil"
)

func TestSaleValue(t *testing.T) {
	testutil.AssertDecimal(t, models.SaleValue(3, decimal.NewFromInt(1000)), "3000")
	testutil.AssertDecimal(t, models.SaleValue(2, decimal.RequireFromString("2500.50")), "5001")
}

func TestSaleValidate(t *testing.T) {
	valid := func() models.Sale {
		return models.Sale{
			ID:            1,
			LotteryID:     1,
			FractionsSold: 2,
			Customer:      "Ana",
			Seller:        "Luis",
			SaleDate:      models.NewDate(2024, time.March, 1),
			Value:         decimal.NewFromInt(2000),
		}
	}

	s := valid()
	testutil.AssertNoError(t, s.Validate())

	s = valid()
	s.FractionsSold = 0
	testutil.AssertAppError(t, s.Validate(), "INVALID_SALE_AMOUNT")

	s = valid()
	s.Value = decimal.NewFromInt(-1)
	testutil.AssertAppError(t, s.Validate(), "INVALID_SALE_VALUE")

	s = valid()
	s.Value = decimal.RequireFromString("2000.005")
	testutil.AssertAppError(t, s.Validate(), "INVALID_SALE_VALUE")

	s = valid()
	s.Value = decimal.RequireFromString("2000.500")
	testutil.AssertNoError(t, s.Validate())

	s = valid()
	s.Customer = " "
	testutil.AssertAppError(t, s.Validate(), "INVALID_INPUT")

	s = valid()
	s.SaleDate = models.Date{}
	testutil.AssertAppError(t, s.Validate(), "INVALID_INPUT")
}

func TestSaleJSONDateFormat(t *testing.T) {
	s := models.Sale{
		ID:            4,
		LotteryID:     2,
		FractionsSold: 1,
		Customer:      "Marta",
		Seller:        "Luis",
		SaleDate:      models.NewDate(2024, time.December, 24),
		Value:         decimal.NewFromInt(6000),
	}

	data, err := json.Marshal(s)
	testutil.AssertNoError(t, err)
	if !strings.Contains(string(data), `"sale_date":"2024-12-24"`) {
		t.Errorf("expected YYYY-MM-DD sale date, got %s", data)
	}

	var back models.Sale
	testutil.AssertNoError(t, json.Unmarshal(data, &back))
	if !back.SaleDate.Equal(s.SaleDate) {
		t.Errorf("expected %s, got %s", s.SaleDate, back.SaleDate)
	}
	if !back.Value.Equal(s.Value) {
		t.Errorf("expected value %s, got %s", s.Value, back.Value)
	}
}
