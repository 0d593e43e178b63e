package stages

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	errx "github.com/markup-chain-poc/server/internal/core/error"
	"github.com/markup-chain-poc/server/internal/markup/model"
)

// FlatMarkup applies the flat rate to the original price and makes the
// result the base for every later percentage markup.
type FlatMarkup struct{}

func NewFlatMarkup() *FlatMarkup { return &FlatMarkup{} }

func (*FlatMarkup) Name() string { return StageFlat }

func (*FlatMarkup) Execute(_ context.Context, inv *model.Invocation) error {
	job := inv.Job
	job.BasePrice = job.OriginalPrice.Add(job.OriginalPrice.Mul(inv.Rates.FlatRate()))
	job.Price = job.BasePrice
	return nil
}

// PerPersonMarkup adds base × per-person rate × headcount to the running price.
type PerPersonMarkup struct{}

func NewPerPersonMarkup() *PerPersonMarkup { return &PerPersonMarkup{} }

func (*PerPersonMarkup) Name() string { return StagePerPerson }

func (*PerPersonMarkup) Execute(_ context.Context, inv *model.Invocation) error {
	job := inv.Job
	if job.Headcount < 0 {
		return errx.InvalidQuantity(job.Headcount)
	}
	job.Price = job.Price.Add(job.BasePrice.Mul(inv.Rates.PerPersonRate()).MulInt(job.Headcount))
	return nil
}

// CategoryMarkup adds base × rate for one category. The rate is resolved
// when the stage is built, not per job.
type CategoryMarkup struct {
	category model.Category
	rate     decimal.Decimal
}

func NewCategoryMarkup(rates model.RateTable, category model.Category) *CategoryMarkup {
	return &CategoryMarkup{
		category: category,
		rate:     rates.RateFor(category),
	}
}

func (s *CategoryMarkup) Name() string {
	return strings.ToLower(s.category.String()) + "_markup"
}

func (s *CategoryMarkup) Category() model.Category { return s.category }

func (s *CategoryMarkup) Rate() decimal.Decimal { return s.rate }

func (s *CategoryMarkup) Execute(_ context.Context, inv *model.Invocation) error {
	job := inv.Job
	job.Price = job.Price.Add(job.BasePrice.Mul(s.rate))
	return nil
}

// Rounding rounds the running price to the currency scale using banker's
// rounding. It must be the last stage that changes the price.
type Rounding struct {
	scale int32
}

func NewRounding(scale int32) *Rounding {
	if scale < 0 {
		scale = DefaultScale
	}
	return &Rounding{scale: scale}
}

func (*Rounding) Name() string { return StageRounding }

func (s *Rounding) Scale() int32 { return s.scale }

func (s *Rounding) Execute(_ context.Context, inv *model.Invocation) error {
	inv.Job.Price = inv.Job.Price.RoundTo(s.scale)
	return nil
}

var (
	_ Stage = (*ValidateContext)(nil)
	_ Stage = (*FlatMarkup)(nil)
	_ Stage = (*PerPersonMarkup)(nil)
	_ Stage = (*CategoryMarkup)(nil)
	_ Stage = (*Rounding)(nil)
)
