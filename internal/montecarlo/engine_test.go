package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-sim/internal/model"
)

func testSeries() model.ForecastSeries {
	means := make([]float64, 30)
	for i := range means {
		means[i] = 10
	}
	return model.ForecastSeries{Means: means, ResidualScale: 0.3}
}

func testParams() model.PolicyParameters {
	return model.PolicyParameters{
		R: 50, Q: 30, LeadTimeDays: 3, HoldCostPerUnitDay: 1, OrderCostPerOrder: 25,
	}
}

func TestEngine_SameSeed_IdenticalAggregates(t *testing.T) {
	a := Engine{Series: testSeries(), Params: testParams()}
	b := Engine{Series: testSeries(), Params: testParams()}

	setA, err := a.Run(100, 42, "test")
	require.NoError(t, err)
	setB, err := b.Run(100, 42, "test")
	require.NoError(t, err)

	require.Equal(t, setA.Records, setB.Records)
	require.Equal(t, setA.Aggregate(), setB.Aggregate())
}

func TestEngine_WorkerCount_DoesNotChangeResults(t *testing.T) {
	serial := Engine{Series: testSeries(), Params: testParams(), Workers: 1}
	parallel := Engine{Series: testSeries(), Params: testParams(), Workers: 8}

	setS, err := serial.Run(100, 42, "test")
	require.NoError(t, err)
	setP, err := parallel.Run(100, 42, "test")
	require.NoError(t, err)

	require.Equal(t, setS.Records, setP.Records)
}

func TestEngine_DifferentSeeds_DifferentAggregates(t *testing.T) {
	e := Engine{Series: testSeries(), Params: testParams()}
	setA, err := e.Run(100, 42, "test")
	require.NoError(t, err)
	setB, err := e.Run(100, 7, "test")
	require.NoError(t, err)
	assert.NotEqual(t, setA.Aggregate(), setB.Aggregate())
}

func TestEngine_LargerReorderPoint_ServiceDoesNotDrop(t *testing.T) {
	low := Engine{Series: testSeries(), Params: testParams().WithRQ(20, 30)}
	high := Engine{Series: testSeries(), Params: testParams().WithRQ(80, 30)}

	setLow, err := low.Run(200, 42, "test")
	require.NoError(t, err)
	setHigh, err := high.Run(200, 42, "test")
	require.NoError(t, err)

	assert.GreaterOrEqual(t,
		setHigh.Aggregate().Mean.ServiceLevel,
		setLow.Aggregate().Mean.ServiceLevel)
}

func TestEngine_MoreDemandVariance_ServiceDoesNotImprove(t *testing.T) {
	// Same buffer, noisier demand: expected service can only stay or drop.
	// Statistical property; small tolerance band for sampling noise.
	calm := testSeries()
	calm.ResidualScale = 0.1
	wild := testSeries()
	wild.ResidualScale = 0.8

	params := testParams().WithRQ(55, 32)
	setCalm, err := (&Engine{Series: calm, Params: params}).Run(300, 42, "test")
	require.NoError(t, err)
	setWild, err := (&Engine{Series: wild, Params: params}).Run(300, 42, "test")
	require.NoError(t, err)

	assert.LessOrEqual(t,
		setWild.Aggregate().Mean.ServiceLevel,
		setCalm.Aggregate().Mean.ServiceLevel+0.02)
}

func TestEngine_AllRunsDegenerate_Error(t *testing.T) {
	series := model.ForecastSeries{Means: []float64{0, 0, 0}, ResidualScale: 0}
	e := Engine{Series: series, Params: testParams()}
	_, err := e.Run(10, 42, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero total demand")
}

func TestEngine_InvalidInputs_Rejected(t *testing.T) {
	e := Engine{Series: testSeries(), Params: testParams()}
	_, err := e.Run(0, 42, "test")
	require.Error(t, err)

	e = Engine{Series: model.ForecastSeries{}, Params: testParams()}
	_, err = e.Run(10, 42, "test")
	require.Error(t, err)

	e = Engine{Series: testSeries(), Params: model.PolicyParameters{}}
	_, err = e.Run(10, 42, "test")
	require.Error(t, err)
}

func TestAggregate_ColumnStats(t *testing.T) {
	set := &RunSet{
		Records: []model.KPIRecord{
			{ServiceLevel: 0.9, StockoutUnits: 10, AvgHoldCost: 20, OrderCount: 4, AvgOrderCost: 5, AvgTotalCost: 25},
			{ServiceLevel: 1.0, StockoutUnits: 0, AvgHoldCost: 30, OrderCount: 6, AvgOrderCost: 7, AvgTotalCost: 37},
		},
		Degenerate: 1,
	}
	agg := set.Aggregate()
	assert.InDelta(t, 0.95, agg.Mean.ServiceLevel, 1e-12)
	assert.InDelta(t, 25.0, agg.Mean.AvgHoldCost, 1e-12)
	assert.InDelta(t, 5.0, agg.Mean.StockoutUnits, 1e-12)
	assert.Equal(t, 2, agg.Runs)
	assert.Equal(t, 1, agg.Degenerate)

	// Sample (n-1) standard deviation.
	assert.InDelta(t, 7.0710678, agg.Std.AvgHoldCost, 1e-6)
}

func TestAggregate_SingleRun_ZeroStd(t *testing.T) {
	set := &RunSet{Records: []model.KPIRecord{{ServiceLevel: 1, AvgHoldCost: 10}}}
	agg := set.Aggregate()
	assert.Zero(t, agg.Std.ServiceLevel)
	assert.Zero(t, agg.Std.AvgHoldCost)
}

func TestAggregate_OrdersPerYear(t *testing.T) {
	agg := Aggregate{Mean: Columns{OrderCount: 10}}
	assert.InDelta(t, 50.0, agg.OrdersPerYear(73), 1e-9)
	assert.Zero(t, Aggregate{}.OrdersPerYear(0))
}
