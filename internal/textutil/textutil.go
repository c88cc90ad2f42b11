// Package textutil holds the text helpers shared by search and display.
package textutil

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for name matching: lowercase, diacritics removed, only
// letters, digits and single spaces kept, ends trimmed.
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	// Transformers carry state, so the chain is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Contains reports whether the normalized form of haystack contains the
// normalized form of needle.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// FormatCurrency renders an amount in pesos with "." as the thousands
// separator, e.g. $500.000. Cents are only shown when present.
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	p := message.NewPrinter(language.Spanish)
	whole := amount.Truncate(0)
	out := sign + "$" + p.Sprintf("%d", whole.IntPart())

	cents := amount.Sub(whole).Shift(2).Round(0).IntPart()
	if cents > 0 {
		out += fmt.Sprintf(",%02d", cents)
	}
	return out
}
