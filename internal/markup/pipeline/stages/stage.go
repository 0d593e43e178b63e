package stages

import (
	"context"

	"github.com/cloudwego/eino/compose"

	"github.com/markup-chain-poc/server/internal/markup/model"
)

// Node names
const (
	StageValidate  = "validate_context"
	StageFlat      = "flat_markup"
	StagePerPerson = "per_person_markup"
	StageRounding  = "currency_rounding"
	StageSink      = "sink"
)

// DefaultScale is the number of fractional digits kept for currency amounts.
const DefaultScale int32 = 2

// Stage is one link of the pricing chain: it applies a single adjustment to
// the invocation's job. Stages hold configuration only, never per-job data.
type Stage interface {
	Name() string
	Execute(ctx context.Context, inv *model.Invocation) error
}

// NewLambda wraps s as a chain node. The node passes the same invocation on,
// so later nodes see the adjustments s made.
func NewLambda(s Stage) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, inv *model.Invocation) (*model.Invocation, error) {
		if err := s.Execute(ctx, inv); err != nil {
			return nil, err
		}
		return inv, nil
	})
}

// AppendStages adds each stage to chain as a named lambda node, in order.
func AppendStages(chain *compose.Chain[*model.Invocation, *model.Invocation], ss ...Stage) *compose.Chain[*model.Invocation, *model.Invocation] {
	for _, s := range ss {
		chain.AppendLambda(NewLambda(s), compose.WithNodeName(s.Name()))
	}
	return chain
}
