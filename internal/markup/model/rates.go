package model

import "github.com/shopspring/decimal"

// RateTable supplies markup fractions to the pipeline stages.
// A RateTable handed to the pipeline must be a usable value. Pointer
// implementations should also provide IsNil() bool so a typed nil is
// rejected at validation instead of panicking in a markup stage.
type RateTable interface {
	// RateFor returns the markup for category; unknown categories get the Other rate.
	RateFor(c Category) decimal.Decimal
	FlatRate() decimal.Decimal
	PerPersonRate() decimal.Decimal
}

// Rates is an immutable RateTable. Build one with NewRates or DefaultRates
// and share it read-only.
type Rates struct {
	flat       decimal.Decimal
	perPerson  decimal.Decimal
	byCategory [categoryCount]decimal.Decimal
}

// NewRates builds a table from the flat, per-person and per-category fractions.
// Categories missing from byCategory are charged nothing.
func NewRates(flat, perPerson decimal.Decimal, byCategory map[Category]decimal.Decimal) *Rates {
	r := &Rates{flat: flat, perPerson: perPerson}
	for c, rate := range byCategory {
		if c.Valid() {
			r.byCategory[c] = rate
		}
	}
	return r
}

// DefaultRates returns the standard markup table.
func DefaultRates() *Rates {
	return NewRates(
		decimal.RequireFromString(DefaultFlatRate),
		decimal.RequireFromString(DefaultPerPersonRate),
		map[Category]decimal.Decimal{
			Food:        decimal.RequireFromString(DefaultFoodRate),
			Pharma:      decimal.RequireFromString(DefaultPharmaRate),
			Electronics: decimal.RequireFromString(DefaultElectronicsRate),
			Other:       decimal.RequireFromString(DefaultOtherRate),
		},
	)
}

// IsNil reports whether r is a nil *Rates held in a RateTable.
func (r *Rates) IsNil() bool { return r == nil }

func (r *Rates) RateFor(c Category) decimal.Decimal {
	if !c.Valid() {
		return r.byCategory[Other]
	}
	return r.byCategory[c]
}

func (r *Rates) FlatRate() decimal.Decimal {
	return r.flat
}

func (r *Rates) PerPersonRate() decimal.Decimal {
	return r.perPerson
}

var _ RateTable = (*Rates)(nil)
