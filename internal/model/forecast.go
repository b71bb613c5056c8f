package model

import "errors"

// ForecastSeries is the demand forecast the simulation consumes:
// one mean per day over the horizon, plus a single proportional residual
// scale shared by all days. Daily demand is sampled as
// max(0, round(Normal(mean_t, ResidualScale*mean_t))).
type ForecastSeries struct {
	Means         []float64
	ResidualScale float64
}

func (s ForecastSeries) Validate() error {
	if len(s.Means) == 0 {
		return errors.New("forecast series is empty")
	}
	for _, m := range s.Means {
		if m < 0 {
			return errors.New("forecast means must be >= 0")
		}
	}
	if s.ResidualScale < 0 {
		return errors.New("residual scale must be >= 0")
	}
	return nil
}

// Days returns the simulation horizon length.
func (s ForecastSeries) Days() int { return len(s.Means) }

// MeanDaily returns the average forecast demand per day.
func (s ForecastSeries) MeanDaily() float64 {
	if len(s.Means) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range s.Means {
		sum += m
	}
	return sum / float64(len(s.Means))
}

// LeadTimeWindow returns the first n daily means, clamped to the horizon.
// The baseline reorder point is sized from this window.
func (s ForecastSeries) LeadTimeWindow(n int) []float64 {
	if n > len(s.Means) {
		n = len(s.Means)
	}
	if n < 0 {
		n = 0
	}
	return s.Means[:n]
}
