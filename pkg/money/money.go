// Package money provides exact decimal amounts for price computation.
//
// A Money keeps full precision through Add and Mul. Rounding happens only
// through RoundTo, which uses round-half-to-even so repeated midpoint values
// do not drift totals upward.
package money

import (
	"github.com/shopspring/decimal"

	errx "github.com/markup-chain-poc/server/internal/core/error"
)

// Money is an exact decimal amount. The zero value is 0.
type Money struct {
	d       decimal.Decimal
	scale   int32
	rounded bool
}

// Zero is the zero amount.
var Zero = Money{}

// Parse reads a decimal literal such as "1299.99" or "5432".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, errx.Parse(s, err)
	}
	return Money{d: d}, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromDecimal wraps an existing decimal without rounding it.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Mul returns m × fraction with no intermediate rounding.
func (m Money) Mul(fraction decimal.Decimal) Money {
	return Money{d: m.d.Mul(fraction)}
}

// MulInt returns m × n.
func (m Money) MulInt(n int) Money {
	return m.Mul(decimal.NewFromInt(int64(n)))
}

// RoundTo rounds to scale fractional digits using banker's rounding.
// Rounding an already rounded value at the same scale returns it unchanged.
func (m Money) RoundTo(scale int32) Money {
	if scale < 0 {
		scale = 0
	}
	return Money{d: m.d.RoundBank(scale), scale: scale, rounded: true}
}

// Rounded reports whether m carries a fixed scale from RoundTo.
func (m Money) Rounded() bool {
	return m.rounded
}

// Scale returns the fixed scale set by RoundTo, or the exponent-derived
// number of fractional digits for an unrounded amount.
func (m Money) Scale() int32 {
	if m.Rounded() {
		return m.scale
	}
	if exp := m.d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// Cmp compares m and o: -1 if m < o, 0 if equal, +1 if m > o.
func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

// Equal reports numeric equality, ignoring scale.
func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// Decimal exposes the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// String renders a rounded amount with exactly its scale in fractional
// digits ("105.00"). An unrounded amount keeps the scale carried by its
// arithmetic, so "5432.00" renders as parsed.
func (m Money) String() string {
	return m.d.StringFixed(m.Scale())
}

// MarshalText implements encoding.TextMarshaler so amounts log and encode as
// decimal text, never as binary floating point.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
