package observers

import (
	"context"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"

	"github.com/markup-chain-poc/server/internal/markup/model"
	logx "github.com/markup-chain-poc/server/pkg/logger"
)

type startKey struct{}

// NewLoggingHandler logs the running price around each stage at debug level,
// with the time spent in the stage.
func NewLoggingHandler() einocb.Handler {
	return einocb.NewHandlerBuilder().
		OnStartFn(func(ctx context.Context, info *einocb.RunInfo, input einocb.CallbackInput) context.Context {
			if !IsStage(info) {
				return ctx
			}
			ev := logx.Debug().Str("stage", info.Name)
			if job := jobOf(InvocationOf(input)); job != nil {
				ev = ev.Str("category", job.Category.String()).
					Str("price", job.Price.String())
			}
			ev.Msg("stage start")
			return context.WithValue(ctx, startKey{}, time.Now())
		}).
		OnEndFn(func(ctx context.Context, info *einocb.RunInfo, output einocb.CallbackOutput) context.Context {
			if !IsStage(info) {
				return ctx
			}
			ev := logx.Debug().
				Str("stage", info.Name).
				Dur("elapsed", since(ctx))
			if job := jobOf(InvocationOf(output)); job != nil {
				ev = ev.Str("base_price", job.BasePrice.String()).
					Str("price", job.Price.String())
			}
			ev.Msg("stage end")
			return ctx
		}).
		OnErrorFn(func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			if !IsStage(info) {
				return ctx
			}
			logx.Warn().Err(err).
				Str("stage", info.Name).
				Dur("elapsed", since(ctx)).
				Msg("stage failed")
			return ctx
		}).
		Build()
}

func jobOf(inv *model.Invocation) *model.Job {
	if inv == nil {
		return nil
	}
	return inv.Job
}

func since(ctx context.Context) time.Duration {
	if t, ok := ctx.Value(startKey{}).(time.Time); ok {
		return time.Since(t)
	}
	return 0
}
