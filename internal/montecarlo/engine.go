// Package montecarlo estimates expected policy performance by repeated
// sampling: N independent demand paths, each simulated under the same (R, Q)
// policy, aggregated column-wise.
package montecarlo

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"inventory-sim/internal/demand"
	"inventory-sim/internal/model"
	"inventory-sim/internal/simulate"
)

// Engine runs generator → simulator pairs for a fixed policy and forecast.
// Runs are embarrassingly parallel: every run gets its own sub-stream derived
// from the phase seed, so the outcome is identical at any worker count.
type Engine struct {
	Series model.ForecastSeries
	Params model.PolicyParameters

	// Workers caps parallel fan-out. Zero means GOMAXPROCS.
	Workers int
}

// RunSet is the collected outcome of one sampling pass.
type RunSet struct {
	Records []model.KPIRecord

	// Degenerate counts zero-demand runs, which carry no defined service
	// level and are excluded from Records (and so from aggregation).
	Degenerate int
}

// Run executes n independent simulations seeded from one phase stream.
// Sample counts are fixed and caller-supplied; there is no early stopping.
// The label keeps sub-streams of different phases disjoint even if two
// phases were (mis)configured with the same seed.
func (e *Engine) Run(n int, seed int64, label string) (*RunSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample count must be >= 1, got %d", n)
	}
	if err := e.Series.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast: %w", err)
	}
	if err := e.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*model.KPIRecord, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			gen := demand.New(e.Series, demand.DeriveSeed(seed, label, i))
			kpi, err := simulate.Run(gen.Next(), e.Params)
			if err != nil {
				if errors.Is(err, simulate.ErrZeroDemand) {
					return nil // excluded below, counted as degenerate
				}
				return err
			}
			results[i] = &kpi
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := &RunSet{Records: make([]model.KPIRecord, 0, n)}
	for _, r := range results {
		if r == nil {
			set.Degenerate++
			continue
		}
		set.Records = append(set.Records, *r)
	}
	if len(set.Records) == 0 {
		return nil, fmt.Errorf("all %d runs had zero total demand; nothing to aggregate", n)
	}
	return set, nil
}
