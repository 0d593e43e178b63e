package stages

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/markup-chain-poc/server/internal/markup/model"
	logx "github.com/markup-chain-poc/server/pkg/logger"
)

// Sink receives finished jobs at the end of the chain.
type Sink interface {
	Consume(ctx context.Context, job *model.Job)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, job *model.Job)

func (f SinkFunc) Consume(ctx context.Context, job *model.Job) { f(ctx, job) }

// SinkStage terminates the chain by handing the job to a Sink.
type SinkStage struct {
	sink Sink
}

func NewSinkStage(sink Sink) *SinkStage {
	return &SinkStage{sink: sink}
}

func (*SinkStage) Name() string { return StageSink }

func (s *SinkStage) Sink() Sink { return s.sink }

func (s *SinkStage) Execute(ctx context.Context, inv *model.Invocation) error {
	s.sink.Consume(ctx, inv.Job)
	return nil
}

// WriterSink prints each finished job on its own line.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Consume(_ context.Context, job *model.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, job.String()); err != nil {
		logx.Warn().Err(err).Msg("failed to write finished job")
	}
}

// LogSink emits each finished job as a structured log event.
type LogSink struct{}

func NewLogSink() *LogSink { return &LogSink{} }

func (*LogSink) Consume(_ context.Context, job *model.Job) {
	logx.Info().
		Str("category", job.Category.String()).
		Str("original_price", job.OriginalPrice.String()).
		Int("headcount", job.Headcount).
		Str("base_price", job.BasePrice.String()).
		Str("price", job.Price.String()).
		Msg("quote priced")
}

// NopSink discards finished jobs.
type NopSink struct{}

func (NopSink) Consume(context.Context, *model.Job) {}

var (
	_ Stage = (*SinkStage)(nil)
	_ Sink  = (*WriterSink)(nil)
	_ Sink  = (*LogSink)(nil)
	_ Sink  = NopSink{}
	_ Sink  = SinkFunc(nil)
)
