package observers

import (
	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/compose"

	"github.com/markup-chain-poc/server/internal/markup/model"
)

// NewAllCallbacks aggregates the observers enabled for tracing.
func NewAllCallbacks() []einocb.Handler {
	return []einocb.Handler{
		NewLoggingHandler(),
	}
}

// IsStage reports whether info describes a pricing stage rather than the
// chain or a branch wrapped around it.
func IsStage(info *einocb.RunInfo) bool {
	return info != nil && info.Component == compose.ComponentOfLambda
}

// InvocationOf extracts the invocation from a callback input or output.
func InvocationOf(v any) *model.Invocation {
	inv, _ := v.(*model.Invocation)
	return inv
}
