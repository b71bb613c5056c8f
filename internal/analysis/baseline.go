// Package analysis holds the closed-form policy formulas and the
// baseline-vs-candidate comparison that bracket the simulation pipeline.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"inventory-sim/internal/model"
)

// BaselinePolicy is the classical starting policy the grid search centers on:
// reorder point from lead-time demand plus a z-scored safety stock, order
// quantity from the EOQ approximation.
type BaselinePolicy struct {
	R           int
	Q           int
	SafetyStock int

	ServiceZ        float64
	MeanDailyDemand float64
	LeadTimeDemand  float64
	LeadTimeStdev   float64
}

// ComputeBaseline derives (R0, Q0) from forecast summary statistics.
//
// Lead-time demand variance under proportional (multiplicative) normal errors
// is scale^2 * sum(mean_t^2) over the lead-time window, not scale^2 * L *
// mean^2: per-day forecasts differ inside the window.
//
// serviceZ overrides the z-score when non-zero; otherwise it is the standard
// normal quantile of targetService.
func ComputeBaseline(series model.ForecastSeries, costs model.PolicyParameters, serviceZ, targetService float64) (BaselinePolicy, error) {
	if err := series.Validate(); err != nil {
		return BaselinePolicy{}, fmt.Errorf("invalid forecast: %w", err)
	}
	if costs.LeadTimeDays < 1 {
		return BaselinePolicy{}, fmt.Errorf("lead time must be >= 1 day, got %d", costs.LeadTimeDays)
	}
	if costs.HoldCostPerUnitDay <= 0 {
		return BaselinePolicy{}, errors.New("holding cost must be > 0 for the EOQ formula")
	}

	z := serviceZ
	if z == 0 {
		if targetService <= 0 || targetService >= 1 {
			return BaselinePolicy{}, fmt.Errorf("cannot derive z-score from target service %.4f", targetService)
		}
		z = distuv.Normal{Mu: 0, Sigma: 1}.Quantile(targetService)
	}

	window := series.LeadTimeWindow(costs.LeadTimeDays)
	leadTimeDemand := 0.0
	sumSquares := 0.0
	for _, m := range window {
		leadTimeDemand += m
		sumSquares += m * m
	}
	leadTimeStdev := series.ResidualScale * math.Sqrt(sumSquares)

	safetyStock := int(math.Round(z * leadTimeStdev))
	r := int(math.Round(leadTimeDemand + float64(safetyStock)))

	meanDaily := series.MeanDaily()
	q := int(math.Round(math.Sqrt(2 * costs.OrderCostPerOrder * meanDaily / costs.HoldCostPerUnitDay)))
	if q < 1 {
		return BaselinePolicy{}, fmt.Errorf("EOQ order quantity rounded to %d; order cost or demand too small", q)
	}

	return BaselinePolicy{
		R:               r,
		Q:               q,
		SafetyStock:     safetyStock,
		ServiceZ:        z,
		MeanDailyDemand: meanDaily,
		LeadTimeDemand:  leadTimeDemand,
		LeadTimeStdev:   leadTimeStdev,
	}, nil
}

// Policy returns the full parameter set with the baseline (R, Q) filled in.
func (b BaselinePolicy) Policy(costs model.PolicyParameters) model.PolicyParameters {
	return costs.WithRQ(b.R, b.Q)
}
