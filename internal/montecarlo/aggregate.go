package montecarlo

import "gonum.org/v1/gonum/stat"

// Columns holds one float per KPI column; used for both means and standard
// deviations of a run set.
type Columns struct {
	ServiceLevel  float64
	StockoutUnits float64
	AvgHoldCost   float64
	OrderCount    float64
	AvgOrderCost  float64
	AvgTotalCost  float64
}

// Aggregate is the column-wise summary of a run set.
type Aggregate struct {
	Mean Columns
	Std  Columns

	Runs       int
	Degenerate int
}

// Aggregate computes column-wise mean and (sample) standard deviation over
// the non-degenerate runs.
func (s *RunSet) Aggregate() Aggregate {
	n := len(s.Records)
	cols := [6][]float64{}
	for i := range cols {
		cols[i] = make([]float64, 0, n)
	}
	for _, r := range s.Records {
		cols[0] = append(cols[0], r.ServiceLevel)
		cols[1] = append(cols[1], float64(r.StockoutUnits))
		cols[2] = append(cols[2], r.AvgHoldCost)
		cols[3] = append(cols[3], float64(r.OrderCount))
		cols[4] = append(cols[4], r.AvgOrderCost)
		cols[5] = append(cols[5], r.AvgTotalCost)
	}
	return Aggregate{
		Mean: Columns{
			ServiceLevel:  mean(cols[0]),
			StockoutUnits: mean(cols[1]),
			AvgHoldCost:   mean(cols[2]),
			OrderCount:    mean(cols[3]),
			AvgOrderCost:  mean(cols[4]),
			AvgTotalCost:  mean(cols[5]),
		},
		Std: Columns{
			ServiceLevel:  stddev(cols[0]),
			StockoutUnits: stddev(cols[1]),
			AvgHoldCost:   stddev(cols[2]),
			OrderCount:    stddev(cols[3]),
			AvgOrderCost:  stddev(cols[4]),
			AvgTotalCost:  stddev(cols[5]),
		},
		Runs:       n,
		Degenerate: s.Degenerate,
	}
}

// OrdersPerYear annualizes the mean order count over a horizon of nDays.
func (a Aggregate) OrdersPerYear(nDays int) float64 {
	if nDays == 0 {
		return 0
	}
	return a.Mean.OrderCount / float64(nDays) * 365
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
