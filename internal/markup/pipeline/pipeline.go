package pipeline

import (
	"context"
	"fmt"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/compose"

	errx "github.com/markup-chain-poc/server/internal/core/error"
	"github.com/markup-chain-poc/server/internal/markup/model"
	"github.com/markup-chain-poc/server/internal/markup/pipeline/stages"
	logx "github.com/markup-chain-poc/server/pkg/logger"
)

// GraphName is the name the compiled chain reports to callbacks.
const GraphName = "markup_pipeline"

type chain = compose.Chain[*model.Invocation, *model.Invocation]

// Runner prices one job through the assembled chain.
type Runner interface {
	Run(ctx context.Context, job *model.Job) error
}

// Options holds everything needed to assemble the markup chain.
// Scale is the number of fractional digits kept by the rounding stage and is
// taken as given: 0 rounds to whole units. Use stages.DefaultScale for cents.
type Options struct {
	Rates     model.RateTable
	Sink      stages.Sink
	Scale     int32
	Callbacks []einocb.Handler
}

// Pipeline is the compiled, immutable markup chain:
//
//	validate → flat → per-person → branch{category → rounding → sink}
//
// It keeps no per-job state and may be shared by sequential or concurrent
// runs as long as each run owns its Job.
type Pipeline struct {
	rates     model.RateTable
	scale     int32
	runnable  compose.Runnable[*model.Invocation, *model.Invocation]
	callbacks []einocb.Handler
}

// Builder handles the construction of the markup chain.
type Builder struct {
	opts  Options
	chain *chain
}

// Build validates opts and compiles the chain in its fixed order.
func Build(ctx context.Context, opts Options) (*Pipeline, error) {
	if opts.Rates == nil {
		return nil, fmt.Errorf("rate table is nil")
	}
	if opts.Sink == nil {
		return nil, fmt.Errorf("sink is nil")
	}
	if opts.Scale < 0 {
		return nil, fmt.Errorf("rounding scale must be non-negative, got %d", opts.Scale)
	}

	b := &Builder{
		opts:  opts,
		chain: compose.NewChain[*model.Invocation, *model.Invocation](),
	}
	b.addStages()
	b.addBranches()

	return b.compile(ctx)
}

// addStages appends the stages every job goes through.
func (b *Builder) addStages() {
	stages.AppendStages(b.chain,
		stages.NewValidateContext(),
		stages.NewFlatMarkup(),
		stages.NewPerPersonMarkup(),
	)
}

// newOutput builds the tail of one branch: category markup, rounding, sink.
func (b *Builder) newOutput(c model.Category) *chain {
	return stages.AppendStages(compose.NewChain[*model.Invocation, *model.Invocation](),
		stages.NewCategoryMarkup(b.opts.Rates, c),
		stages.NewRounding(b.opts.Scale),
		stages.NewSinkStage(b.opts.Sink),
	)
}

// addBranches routes each job to the branch of its category.
func (b *Builder) addBranches() {
	branch := compose.NewChainBranch(stages.NewCategoryCondition())
	for _, c := range model.Categories {
		key := stages.BranchKey(c)
		branch.AddGraph(key, b.newOutput(c), compose.WithNodeName(key))
	}
	branch.AddPassthrough(stages.BranchPassthrough)
	b.chain.AppendBranch(branch)
}

// compile finalizes and compiles the chain
func (b *Builder) compile(ctx context.Context) (*Pipeline, error) {
	runnable, err := b.chain.Compile(ctx, compose.WithGraphName(GraphName))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling markup pipeline")
		return nil, fmt.Errorf("error compiling markup pipeline: %w", err)
	}

	logx.Debug().Int("branches", len(model.Categories)).Msg("Markup pipeline compiled successfully")
	return &Pipeline{
		rates:     b.opts.Rates,
		scale:     b.opts.Scale,
		runnable:  runnable,
		callbacks: b.opts.Callbacks,
	}, nil
}

// Run prices job against the pipeline's rate table. On success job.Price
// holds the rounded final price. On failure the job may hold partially
// applied markups and must be discarded.
func (p *Pipeline) Run(ctx context.Context, job *model.Job) error {
	return p.Execute(ctx, &model.Invocation{Job: job, Rates: p.rates})
}

// Execute runs the chain over an explicit invocation. Extra callbacks are
// attached to this run only.
func (p *Pipeline) Execute(ctx context.Context, inv *model.Invocation, cbs ...einocb.Handler) error {
	if inv == nil {
		return errx.MissingState("Job")
	}

	var opts []compose.Option
	if handlers := append(append([]einocb.Handler(nil), p.callbacks...), cbs...); len(handlers) > 0 {
		opts = append(opts, compose.WithCallbacks(handlers...))
	}

	_, err := p.runnable.Invoke(ctx, inv, opts...)
	return err
}

// Rates returns the table the pipeline was assembled with.
func (p *Pipeline) Rates() model.RateTable { return p.rates }

// Scale returns the rounding scale applied to every finished job.
func (p *Pipeline) Scale() int32 { return p.scale }

var _ Runner = (*Pipeline)(nil)
