// Package search sweeps a 2-D grid of (R, Q) candidates around a baseline
// policy and ranks the ones that clear the service-level constraint.
package search

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"inventory-sim/internal/model"
	"inventory-sim/internal/montecarlo"
)

// Options configures one grid sweep.
type Options struct {
	// HalfWidth W spans [R0-W, R0+W) x [Q0-W, Q0+W), inclusive-exclusive.
	HalfWidth int

	// NSims is the per-cell sample count. Deliberately small relative to the
	// validation sample count: search trades estimator variance for speed, so
	// search decisions are noisier than validation decisions.
	NSims int

	// TargetService is the feasibility constraint on mean service level.
	TargetService float64

	TopN    int
	Seed    int64
	Workers int
}

func (o Options) validate() error {
	if o.HalfWidth < 1 {
		return fmt.Errorf("grid half-width must be >= 1, got %d", o.HalfWidth)
	}
	if o.NSims < 1 {
		return fmt.Errorf("grid sample count must be >= 1, got %d", o.NSims)
	}
	return nil
}

// Candidate is the aggregate outcome for one (R, Q) cell.
type Candidate struct {
	R int
	Q int

	MeanServiceLevel float64
	MeanHoldCost     float64
	MeanOrderCost    float64
	MeanTotalCost    float64
}

// Result holds every evaluated cell plus the ranked feasible subset.
type Result struct {
	All      []Candidate // grid order
	Feasible []Candidate // ranked: total cost asc, service level desc
	Best     Candidate   // Feasible[0]

	Evaluated int
	Skipped   int // cells below the parameter floor (R < 0 or Q < 1)
}

// TopN returns the first n ranked feasible candidates.
func (r *Result) TopN(n int) []Candidate {
	if n > len(r.Feasible) {
		n = len(r.Feasible)
	}
	if n < 0 {
		n = 0
	}
	return r.Feasible[:n]
}

// NoFeasiblePolicyError reports a sweep in which no candidate met the service
// target. Terminal but non-fatal: the caller can retry with a wider grid or a
// lower target.
type NoFeasiblePolicyError struct {
	TargetService float64
	Evaluated     int
	BestService   float64 // highest mean service level seen
}

func (e *NoFeasiblePolicyError) Error() string {
	return fmt.Sprintf(
		"no (R, Q) candidate met the %.2f%% service target (best of %d cells: %.2f%%); widen the grid or lower the target",
		e.TargetService*100, e.Evaluated, e.BestService*100)
}

// Grid evaluates every cell around the baseline policy with a reduced-sample
// Monte Carlo run, filters on the service constraint, and ranks survivors by
// ascending mean total cost with descending service level as the tie-break.
//
// The seed must come from a stream independent of the baseline run's, so
// search noise does not correlate with baseline noise.
func Grid(series model.ForecastSeries, baseline model.PolicyParameters, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast: %w", err)
	}
	if err := baseline.Validate(); err != nil {
		return nil, fmt.Errorf("invalid baseline policy: %w", err)
	}

	type cell struct {
		r, q int
	}
	cells := make([]cell, 0, 4*opts.HalfWidth*opts.HalfWidth)
	skipped := 0
	for r := baseline.R - opts.HalfWidth; r < baseline.R+opts.HalfWidth; r++ {
		for q := baseline.Q - opts.HalfWidth; q < baseline.Q+opts.HalfWidth; q++ {
			if r < 0 || q < 1 {
				skipped++
				continue
			}
			cells = append(cells, cell{r, q})
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("grid around (R=%d, Q=%d) with half-width %d contains no valid cells",
			baseline.R, baseline.Q, opts.HalfWidth)
	}

	// One goroutine per cell, each cell sequential inside, each cell on its
	// own derived sub-stream: results are identical at any worker count.
	candidates := make([]*Candidate, len(cells))
	var g errgroup.Group
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	} else {
		g.SetLimit(8)
	}
	for i, c := range cells {
		i, c := i, c
		g.Go(func() error {
			engine := montecarlo.Engine{
				Series:  series,
				Params:  baseline.WithRQ(c.r, c.q),
				Workers: 1,
			}
			set, err := engine.Run(opts.NSims, opts.Seed, fmt.Sprintf("grid_r%d_q%d", c.r, c.q))
			if err != nil {
				// An all-degenerate cell has no defined service level;
				// treat it like an infeasible candidate.
				return nil
			}
			agg := set.Aggregate()
			candidates[i] = &Candidate{
				R:                c.r,
				Q:                c.q,
				MeanServiceLevel: agg.Mean.ServiceLevel,
				MeanHoldCost:     agg.Mean.AvgHoldCost,
				MeanOrderCost:    agg.Mean.AvgOrderCost,
				MeanTotalCost:    agg.Mean.AvgHoldCost + agg.Mean.AvgOrderCost,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Skipped: skipped}
	bestService := 0.0
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		res.All = append(res.All, *cand)
		res.Evaluated++
		if cand.MeanServiceLevel > bestService {
			bestService = cand.MeanServiceLevel
		}
		if cand.MeanServiceLevel >= opts.TargetService {
			res.Feasible = append(res.Feasible, *cand)
		}
	}

	if len(res.Feasible) == 0 {
		return nil, &NoFeasiblePolicyError{
			TargetService: opts.TargetService,
			Evaluated:     res.Evaluated,
			BestService:   bestService,
		}
	}

	sort.SliceStable(res.Feasible, func(i, j int) bool {
		a, b := res.Feasible[i], res.Feasible[j]
		if a.MeanTotalCost != b.MeanTotalCost {
			return a.MeanTotalCost < b.MeanTotalCost
		}
		return a.MeanServiceLevel > b.MeanServiceLevel
	})
	res.Best = res.Feasible[0]
	return res, nil
}
