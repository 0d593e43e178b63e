package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/markup-chain-poc/server/internal/markup/model"
	"github.com/markup-chain-poc/server/internal/markup/pipeline"
	logx "github.com/markup-chain-poc/server/pkg/logger"
)

// Request is a raw quote as it arrives from a caller.
type Request struct {
	Price     string
	Headcount int
	Category  string
}

// Manager turns raw quote requests into priced jobs.
type Manager struct {
	runner pipeline.Runner
}

func NewManager(runner pipeline.Runner) *Manager {
	return &Manager{runner: runner}
}

// =========== Single quote ===========
func (m *Manager) Push(ctx context.Context, price string, headcount int, category string) (*model.Job, error) {
	c, err := model.ParseCategory(category)
	if err != nil {
		logx.Warn().Err(err).Str("category", category).Msg("Rejected quote")
		return nil, err
	}

	job, err := model.NewJob(price, headcount, c)
	if err != nil {
		logx.Warn().Err(err).Str("price", price).Msg("Rejected quote")
		return nil, err
	}

	if err := m.runner.Run(ctx, job); err != nil {
		logx.Error().Err(err).Str("category", c.String()).Int("people", headcount).Msg("Failed to price quote")
		return nil, fmt.Errorf("pricing %s quote: %w", c, err)
	}
	return job, nil
}

// =========== Batch ===========

// PushAll prices every request in order. A failed request does not stop
// the batch; its slot in jobs is nil and its error is joined into err.
func (m *Manager) PushAll(ctx context.Context, reqs []Request) ([]*model.Job, error) {
	jobs := make([]*model.Job, len(reqs))
	var errs []error
	for i, r := range reqs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		job, err := m.Push(ctx, r.Price, r.Headcount, r.Category)
		if err != nil {
			errs = append(errs, fmt.Errorf("request %d: %w", i, err))
			continue
		}
		jobs[i] = job
	}
	return jobs, errors.Join(errs...)
}
