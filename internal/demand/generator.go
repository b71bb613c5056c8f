// Package demand samples integer daily demand paths from a forecast.
//
// Each phase of the pipeline (baseline, grid search, validation) owns its own
// seeded generator; streams are never shared across phases so their estimates
// stay independent.
package demand

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"inventory-sim/internal/model"
)

// Generator produces demand paths for one forecast series from one seeded
// random stream. Not safe for concurrent use; derive per-worker generators
// with DeriveSeed instead of sharing one.
type Generator struct {
	series model.ForecastSeries
	rng    *rand.Rand
}

func New(series model.ForecastSeries, seed int64) *Generator {
	return &Generator{
		series: series,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Next samples one demand path: for each day t, draw
// Normal(mean_t, scale*mean_t), clip at zero, round to the nearest integer.
// Days are independent; there is no cross-day correlation.
func (g *Generator) Next() []int {
	path := make([]int, len(g.series.Means))
	scale := g.series.ResidualScale
	for t, mean := range g.series.Means {
		x := mean + scale*mean*g.rng.NormFloat64()
		if x < 0 {
			x = 0
		}
		path[t] = int(math.Round(x))
	}
	return path
}

// DeriveSeed maps a phase seed and a label to an isolated sub-stream seed.
// Two sims with the same phase seed and labels produce identical paths no
// matter how runs are scheduled across workers.
func DeriveSeed(phaseSeed int64, label string, index int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s_%d", label, index)
	return phaseSeed ^ int64(h.Sum64())
}
