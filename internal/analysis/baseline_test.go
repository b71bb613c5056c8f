package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-sim/internal/model"
)

func flatSeries(days int, mean, scale float64) model.ForecastSeries {
	means := make([]float64, days)
	for i := range means {
		means[i] = mean
	}
	return model.ForecastSeries{Means: means, ResidualScale: scale}
}

func testCosts() model.PolicyParameters {
	return model.PolicyParameters{
		LeadTimeDays:       5,
		HoldCostPerUnitDay: 1.0,
		OrderCostPerOrder:  50.0,
	}
}

func TestComputeBaseline_FlatForecast_KnownValues(t *testing.T) {
	series := flatSeries(30, 10, 0.2)
	b, err := ComputeBaseline(series, testCosts(), 1.65, 0.95)
	require.NoError(t, err)

	// Lead-time demand 5*10=50; stdev 0.2*sqrt(5*100)=4.4721...;
	// safety stock round(1.65*4.4721)=7; R=57; EOQ round(sqrt(2*50*10/1))=32.
	assert.InDelta(t, 50.0, b.LeadTimeDemand, 1e-12)
	assert.InDelta(t, 0.2*math.Sqrt(500), b.LeadTimeStdev, 1e-12)
	assert.Equal(t, 7, b.SafetyStock)
	assert.Equal(t, 57, b.R)
	assert.Equal(t, 32, b.Q)
	assert.InDelta(t, 10.0, b.MeanDailyDemand, 1e-12)
	assert.Equal(t, 1.65, b.ServiceZ)
}

func TestComputeBaseline_VaryingWindow_SumOfSquares(t *testing.T) {
	// Per-day means differ inside the window: variance is scale^2 * sum(m^2),
	// not scale^2 * L * mean^2.
	series := model.ForecastSeries{
		Means:         []float64{10, 20, 30, 10, 10, 10},
		ResidualScale: 0.1,
	}
	costs := testCosts()
	costs.LeadTimeDays = 3

	b, err := ComputeBaseline(series, costs, 1.65, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, b.LeadTimeDemand, 1e-12)
	assert.InDelta(t, 0.1*math.Sqrt(100+400+900), b.LeadTimeStdev, 1e-12)
}

func TestComputeBaseline_ZeroServiceZ_DerivedFromTarget(t *testing.T) {
	b, err := ComputeBaseline(flatSeries(30, 10, 0.2), testCosts(), 0, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 1.6449, b.ServiceZ, 1e-3)
}

func TestComputeBaseline_LeadTimeLongerThanHorizon_Clamped(t *testing.T) {
	series := flatSeries(3, 10, 0.2)
	b, err := ComputeBaseline(series, testCosts(), 1.65, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, b.LeadTimeDemand, 1e-12)
}

func TestComputeBaseline_InvalidInputs(t *testing.T) {
	costs := testCosts()
	costs.HoldCostPerUnitDay = 0
	_, err := ComputeBaseline(flatSeries(30, 10, 0.2), costs, 1.65, 0.95)
	require.Error(t, err)

	costs = testCosts()
	costs.LeadTimeDays = 0
	_, err = ComputeBaseline(flatSeries(30, 10, 0.2), costs, 1.65, 0.95)
	require.Error(t, err)

	_, err = ComputeBaseline(model.ForecastSeries{}, testCosts(), 1.65, 0.95)
	require.Error(t, err)

	// Cannot derive a z-score from a degenerate target.
	_, err = ComputeBaseline(flatSeries(30, 10, 0.2), testCosts(), 0, 1.0)
	require.Error(t, err)
}

func TestComputeBaseline_TinyDemand_EOQFloor(t *testing.T) {
	costs := testCosts()
	costs.OrderCostPerOrder = 0.001
	_, err := ComputeBaseline(flatSeries(30, 0.001, 0), costs, 1.65, 0.95)
	require.Error(t, err)
}

func TestBaselinePolicy_Policy_FillsRQ(t *testing.T) {
	b := BaselinePolicy{R: 57, Q: 32}
	p := b.Policy(testCosts())
	assert.Equal(t, 57, p.R)
	assert.Equal(t, 32, p.Q)
	assert.Equal(t, 5, p.LeadTimeDays)
	require.NoError(t, p.Validate())
}
