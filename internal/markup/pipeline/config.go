package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	einocb "github.com/cloudwego/eino/callbacks"

	"github.com/markup-chain-poc/server/internal/markup/model"
	"github.com/markup-chain-poc/server/internal/markup/pipeline/observers"
	"github.com/markup-chain-poc/server/internal/markup/pipeline/stages"
)

// Sink kinds accepted by PIPELINE_SINK.
const (
	SinkStdout = "stdout"
	SinkLog    = "log"
	SinkNone   = "none"
)

// ================ Config ================
// Config is read by envconfig. PIPELINE_SCALE=0 rounds to whole units.
type Config struct {
	Trace bool   `envconfig:"PIPELINE_TRACE" default:"false"`
	Sink  string `envconfig:"PIPELINE_SINK" default:"stdout"`
	Scale int32  `envconfig:"PIPELINE_SCALE" default:"2"`
}

// NewSink returns the sink named by kind. stdout writes to w.
func NewSink(kind string, w io.Writer) (stages.Sink, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case SinkStdout, "":
		return stages.NewWriterSink(w), nil
	case SinkLog:
		return stages.NewLogSink(), nil
	case SinkNone:
		return stages.NopSink{}, nil
	default:
		return nil, fmt.Errorf("unknown sink %q", kind)
	}
}

// BuildFromConfig assembles a pipeline from environment-driven settings.
func BuildFromConfig(ctx context.Context, cfg Config, rates model.RateTable, w io.Writer) (*Pipeline, error) {
	sink, err := NewSink(cfg.Sink, w)
	if err != nil {
		return nil, err
	}

	var cbs []einocb.Handler
	if cfg.Trace {
		cbs = observers.NewAllCallbacks()
	}

	return Build(ctx, Options{
		Rates:     rates,
		Sink:      sink,
		Scale:     cfg.Scale,
		Callbacks: cbs,
	})
}
