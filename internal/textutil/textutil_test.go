package textutil

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LOTERÍA   Médellin", "loteria medellin"},
		{"  Lotería de Boyacá  ", "loteria de boyaca"},
		{"Cruz-Roja!!", "cruzroja"},
		{"Año\t\nNuevo", "ano nuevo"},
		{"", ""},
		{"¡¿?!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"LOTERÍA   Médellin", "Lotería del Valle", "ÑANDÚ 2024"} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("Loteria Medellin", "LOTERÍA   Médellin") {
		t.Error("expected accent and case insensitive match")
	}
	if !Contains("Lotería de Medellín", "medellin") {
		t.Error("expected substring match")
	}
	if Contains("Lotería de Bogotá", "medellin") {
		t.Error("unexpected match")
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromInt(500000), "$500.000"},
		{decimal.NewFromInt(1250000), "$1.250.000"},
		{decimal.NewFromInt(0), "$0"},
		{decimal.RequireFromString("123456.5"), "$123.456,50"},
		{decimal.RequireFromString("100000.07"), "$100.000,07"},
		{decimal.NewFromInt(-250000), "-$250.000"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
