package analysis

import "inventory-sim/internal/montecarlo"

// Savings compares a validated candidate policy against the baseline
// aggregate. Positive values mean the candidate is cheaper. Totals are the
// sum of the holding and ordering components, exactly.
type Savings struct {
	HoldingPerDay  float64
	OrderingPerDay float64
	TotalPerDay    float64

	HoldingPerYear  float64
	OrderingPerYear float64
	TotalPerYear    float64

	OrdersPerYearBaseline float64
	OrdersPerYearBest     float64
}

// ComputeSavings takes the baseline aggregate as computed earlier in the
// pipeline (it is reused, not re-simulated) and the best policy's full-sample
// aggregate. nDays is the simulation horizon.
func ComputeSavings(baseline, best montecarlo.Aggregate, nDays int) Savings {
	s := Savings{
		HoldingPerDay:  baseline.Mean.AvgHoldCost - best.Mean.AvgHoldCost,
		OrderingPerDay: baseline.Mean.AvgOrderCost - best.Mean.AvgOrderCost,

		OrdersPerYearBaseline: baseline.OrdersPerYear(nDays),
		OrdersPerYearBest:     best.OrdersPerYear(nDays),
	}
	s.TotalPerDay = s.HoldingPerDay + s.OrderingPerDay
	s.HoldingPerYear = s.HoldingPerDay * 365
	s.OrderingPerYear = s.OrderingPerDay * 365
	s.TotalPerYear = s.HoldingPerYear + s.OrderingPerYear
	return s
}
