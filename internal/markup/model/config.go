package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	errx "github.com/markup-chain-poc/server/internal/core/error"
)

// Default markup fractions, kept as decimal literals.
const (
	DefaultFlatRate        = "0.05"
	DefaultPerPersonRate   = "0.012"
	DefaultFoodRate        = "0.13"
	DefaultPharmaRate      = "0.075"
	DefaultElectronicsRate = "0.02"
	DefaultOtherRate       = "0.0"
)

// ================ Config ================
type RatesConfig struct {
	Flat        string `envconfig:"MARKUP_FLAT_RATE" default:"0.05"`
	PerPerson   string `envconfig:"MARKUP_PER_PERSON_RATE" default:"0.012"`
	Food        string `envconfig:"MARKUP_FOOD_RATE" default:"0.13"`
	Pharma      string `envconfig:"MARKUP_PHARMA_RATE" default:"0.075"`
	Electronics string `envconfig:"MARKUP_ELECTRONICS_RATE" default:"0.02"`
	Other       string `envconfig:"MARKUP_OTHER_RATE" default:"0.0"`
}

// DefaultRatesConfig mirrors the envconfig defaults for callers that skip the environment.
func DefaultRatesConfig() RatesConfig {
	return RatesConfig{
		Flat:        DefaultFlatRate,
		PerPerson:   DefaultPerPersonRate,
		Food:        DefaultFoodRate,
		Pharma:      DefaultPharmaRate,
		Electronics: DefaultElectronicsRate,
		Other:       DefaultOtherRate,
	}
}

// Table parses the configured fractions into an immutable rate table.
// Rates must be non-negative.
func (c RatesConfig) Table() (*Rates, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"flat", c.Flat},
		{"per-person", c.PerPerson},
		{"food", c.Food},
		{"pharma", c.Pharma},
		{"electronics", c.Electronics},
		{"other", c.Other},
	}

	parsed := make([]decimal.Decimal, len(fields))
	for i, f := range fields {
		d, err := decimal.NewFromString(f.value)
		if err != nil {
			return nil, fmt.Errorf("%s rate: %w", f.name, errx.Parse(f.value, err))
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("%s rate must be non-negative, got %s", f.name, f.value)
		}
		parsed[i] = d
	}

	return NewRates(parsed[0], parsed[1], map[Category]decimal.Decimal{
		Food:        parsed[2],
		Pharma:      parsed[3],
		Electronics: parsed[4],
		Other:       parsed[5],
	}), nil
}
