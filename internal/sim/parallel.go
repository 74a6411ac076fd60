package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/runefall/internal/rain"
)

// Factory builds one independent engine and its surface for a seed.
type Factory func(seed uint64) (Engine, rain.Surface, error)

// Ensemble runs several seeded engines side by side. Each engine still runs
// on a single goroutine.
type Ensemble struct {
	factory   Factory
	metrics   func() []Metric
	numRuns   int
	seedStart uint64
}

// NewEnsemble runs numRuns engines seeded from seedStart upward. metrics is
// called once per run so runs never share metric state.
func NewEnsemble(factory Factory, metrics func() []Metric, numRuns int, seedStart uint64) *Ensemble {
	return &Ensemble{factory: factory, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		g.Go(func() error {
			engine, surface, err := e.factory(e.seedStart + uint64(i))
			if err != nil {
				return err
			}
			runner := New(engine, surface, nil)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					runner.AddMetric(m)
				}
			}
			results[i], err = runner.Run(ctx, cfg)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
