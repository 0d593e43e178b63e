package stages

import (
	"context"

	"github.com/markup-chain-poc/server/internal/markup/model"
	logx "github.com/markup-chain-poc/server/pkg/logger"
)

// BranchPassthrough is the branch taken by a category with no markup branch.
// The job leaves the chain untouched: no category markup, rounding or sink.
const BranchPassthrough = "passthrough"

// BranchKey names the dispatch branch serving category.
func BranchKey(category model.Category) string {
	return "branch_" + category.String()
}

// NewCategoryCondition picks the dispatch branch for the job's category.
// The category set is closed, so every declared category has its own branch.
func NewCategoryCondition() func(context.Context, *model.Invocation) (string, error) {
	return func(ctx context.Context, inv *model.Invocation) (string, error) {
		switch c := inv.Job.Category; c {
		case model.Pharma, model.Electronics, model.Food, model.Other:
			return BranchKey(c), nil
		default:
			logx.Debug().Str("category", c.String()).Msg("no branch registered for category; job passes through")
			return BranchPassthrough, nil
		}
	}
}
