package renderer

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultSymbol prefixes amounts when no currency is configured.
const DefaultSymbol = "RS"

// maxMinorUnits is the largest amount, in minor units, go-money can format.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Money formats amounts for display. Amounts are stored currency-agnostic,
// the currency is a presentation choice only.
type Money struct {
	f        *money.Formatter
	fraction int32
}

// NewMoney returns a formatter for the ISO 4217 currency code, e.g. "EUR".
// An empty or unknown code falls back to the DefaultSymbol prefix with two decimals.
func NewMoney(code string) Money {
	if code != "" {
		if cur := money.GetCurrency(code); cur != nil {
			return Money{f: cur.Formatter(), fraction: int32(cur.Fraction)}
		}
	}
	return Money{f: money.NewFormatter(2, ".", "", DefaultSymbol, "$1"), fraction: 2}
}

// Symbol returns the currency symbol, e.g. "RS" or "€".
func (m Money) Symbol() string {
	if m.f == nil {
		return DefaultSymbol
	}
	return m.f.Grapheme
}

// Format returns the amount rounded to the currency fraction, with its symbol.
// Negative amounts are prefixed with "-".
func (m Money) Format(d decimal.Decimal) string {
	if m.f == nil {
		m = NewMoney("")
	}
	minor := d.Round(m.fraction).Shift(m.fraction)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return m.formatLarge(d)
	}
	return m.f.Format(minor.IntPart())
}

// formatLarge formats amounts too large for go-money, with the same layout.
func (m Money) formatLarge(d decimal.Decimal) string {
	units, fraction, _ := strings.Cut(d.Abs().StringFixed(m.fraction), ".")
	if m.f.Thousand != "" {
		var b strings.Builder
		for i, r := range units {
			if i > 0 && (len(units)-i)%3 == 0 {
				b.WriteString(m.f.Thousand)
			}
			b.WriteRune(r)
		}
		units = b.String()
	}
	amount := units
	if fraction != "" {
		amount += m.f.Decimal + fraction
	}

	// The template places the symbol ($) and the amount (1), e.g. "$1" or "1 $".
	before, after, _ := strings.Cut(m.f.Template, "1")
	s := strings.Replace(before, "$", m.f.Grapheme, 1) + amount + strings.Replace(after, "$", m.f.Grapheme, 1)
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// Signed is like Format but also prefixes positive amounts with a "+".
func (m Money) Signed(d decimal.Decimal) string {
	s := m.Format(d)
	if d.Round(m.fraction).IsPositive() {
		return "+" + s
	}
	return s
}
