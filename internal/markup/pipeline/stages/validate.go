package stages

import (
	"context"

	errx "github.com/markup-chain-poc/server/internal/core/error"
	"github.com/markup-chain-poc/server/internal/markup/model"
)

// ValidateContext checks the invocation carries a job and a rate table.
// Placed first in the chain, it lets every later stage read both without
// nil checks.
type ValidateContext struct{}

func NewValidateContext() *ValidateContext { return &ValidateContext{} }

func (*ValidateContext) Name() string { return StageValidate }

func (*ValidateContext) Execute(_ context.Context, inv *model.Invocation) error {
	if inv == nil || inv.Job == nil {
		return errx.MissingState("Job")
	}
	if inv.Rates == nil {
		return errx.MissingState("RateTable")
	}
	// a typed nil still satisfies the interface check above
	if n, ok := inv.Rates.(interface{ IsNil() bool }); ok && n.IsNil() {
		return errx.MissingState("RateTable")
	}
	return nil
}
