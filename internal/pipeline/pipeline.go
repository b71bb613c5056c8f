// Package pipeline composes the three stages of the policy study (baseline,
// grid search, validation) so each is invocable and testable on its own.
// Printing and report formatting are strictly a caller concern.
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"inventory-sim/internal/analysis"
	"inventory-sim/internal/config"
	"inventory-sim/internal/model"
	"inventory-sim/internal/montecarlo"
	"inventory-sim/internal/search"
)

type Pipeline struct {
	series model.ForecastSeries
	costs  model.PolicyParameters
	cfg    config.Config
	log    zerolog.Logger
}

// New validates the configuration and forecast up front; nothing simulates
// until both are well-formed.
func New(series model.ForecastSeries, cfg config.Config, log zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast: %w", err)
	}
	return &Pipeline{
		series: series,
		costs:  cfg.Policy.ToModelParams(),
		cfg:    cfg,
		log:    log,
	}, nil
}

// BaselineReport bundles the closed-form policy with its full-sample
// Monte Carlo aggregate.
type BaselineReport struct {
	Formulas  analysis.BaselinePolicy
	Params    model.PolicyParameters
	Aggregate montecarlo.Aggregate
}

// Baseline computes (R0, Q0) from the forecast summary statistics and
// estimates its performance at the full sample count on the baseline stream.
func (p *Pipeline) Baseline() (*BaselineReport, error) {
	base, err := analysis.ComputeBaseline(p.series, p.costs, p.cfg.Policy.ServiceZ, p.cfg.Search.TargetService)
	if err != nil {
		return nil, err
	}
	params := base.Policy(p.costs)
	p.log.Info().
		Int("r", base.R).
		Int("q", base.Q).
		Int("safety_stock", base.SafetyStock).
		Float64("service_z", base.ServiceZ).
		Msg("baseline policy computed")

	engine := montecarlo.Engine{Series: p.series, Params: params, Workers: p.cfg.Search.Workers}
	set, err := engine.Run(p.cfg.Search.NSims, p.cfg.Seeds.Baseline, "baseline")
	if err != nil {
		return nil, fmt.Errorf("baseline simulation: %w", err)
	}
	agg := set.Aggregate()
	p.log.Info().
		Int("runs", agg.Runs).
		Int("degenerate", agg.Degenerate).
		Float64("service", agg.Mean.ServiceLevel).
		Float64("total_cost_per_day", agg.Mean.AvgTotalCost).
		Msg("baseline simulated")

	return &BaselineReport{Formulas: base, Params: params, Aggregate: agg}, nil
}

// Search sweeps the grid around the baseline policy on its own stream.
// A *search.NoFeasiblePolicyError propagates unchanged so callers can
// distinguish "no feasible policy" from a failed invocation.
func (p *Pipeline) Search(baseline model.PolicyParameters) (*search.Result, error) {
	res, err := search.Grid(p.series, baseline, search.Options{
		HalfWidth:     p.cfg.Search.HalfWidth,
		NSims:         p.cfg.Search.NGridSims,
		TargetService: p.cfg.Search.TargetService,
		TopN:          p.cfg.Search.TopN,
		Seed:          p.cfg.Seeds.Grid,
		Workers:       p.cfg.Search.Workers,
	})
	if err != nil {
		return nil, err
	}
	p.log.Info().
		Int("evaluated", res.Evaluated).
		Int("feasible", len(res.Feasible)).
		Int("best_r", res.Best.R).
		Int("best_q", res.Best.Q).
		Msg("grid search complete")
	return res, nil
}

// ValidationReport is the full-sample re-estimate of the selected policy
// plus its savings against the baseline aggregate.
type ValidationReport struct {
	Params    model.PolicyParameters
	Aggregate montecarlo.Aggregate
	Savings   analysis.Savings
}

// Validate re-simulates only the best policy at the full sample count on the
// validation stream; the baseline aggregate is reused, not recomputed.
func (p *Pipeline) Validate(baseline montecarlo.Aggregate, best model.PolicyParameters) (*ValidationReport, error) {
	engine := montecarlo.Engine{Series: p.series, Params: best, Workers: p.cfg.Search.Workers}
	set, err := engine.Run(p.cfg.Search.NSims, p.cfg.Seeds.Validation, "validation")
	if err != nil {
		return nil, fmt.Errorf("validation simulation: %w", err)
	}
	agg := set.Aggregate()
	savings := analysis.ComputeSavings(baseline, agg, p.series.Days())
	p.log.Info().
		Float64("total_savings_per_day", savings.TotalPerDay).
		Float64("total_savings_per_year", savings.TotalPerYear).
		Msg("validation complete")
	return &ValidationReport{Params: best, Aggregate: agg, Savings: savings}, nil
}

// Report is the outcome of a full pipeline run.
type Report struct {
	Baseline    *BaselineReport
	Search      *search.Result
	Validation  *ValidationReport
	HorizonDays int
}

// Run executes baseline → search → validate.
func (p *Pipeline) Run() (*Report, error) {
	base, err := p.Baseline()
	if err != nil {
		return nil, err
	}
	res, err := p.Search(base.Params)
	if err != nil {
		return nil, err
	}
	best := base.Params.WithRQ(res.Best.R, res.Best.Q)
	val, err := p.Validate(base.Aggregate, best)
	if err != nil {
		return nil, err
	}
	return &Report{
		Baseline:    base,
		Search:      res,
		Validation:  val,
		HorizonDays: p.series.Days(),
	}, nil
}
