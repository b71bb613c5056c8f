package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-sim/internal/model"
)

func steadyParams() model.PolicyParameters {
	return model.PolicyParameters{
		R:                  40,
		Q:                  20,
		LeadTimeDays:       5,
		HoldCostPerUnitDay: 1.0,
		OrderCostPerOrder:  50.0,
	}
}

// Hand-traced scenario: constant demand of 10 for 5 days, R=40, Q=20, L=5.
// Start at R+Q=60. On-hand ends 50,40,30,20,10; position crosses R on days
// 1 and 3 (zero-based), so exactly two orders are placed and neither arrives
// inside the horizon.
func TestRun_SteadyDemand_GoldenTrace(t *testing.T) {
	demand := []int{10, 10, 10, 10, 10}
	res, err := RunWithLedger(demand, steadyParams())
	require.NoError(t, err)

	k := res.KPI
	assert.Equal(t, 1.0, k.ServiceLevel)
	assert.Equal(t, 0, k.StockoutUnits)
	assert.Equal(t, 2, k.OrderCount)
	assert.InDelta(t, 30.0, k.AvgHoldCost, 1e-12)  // 150 unit-days over 5 days
	assert.InDelta(t, 20.0, k.AvgOrderCost, 1e-12) // 2 * $50 over 5 days
	assert.InDelta(t, 50.0, k.AvgTotalCost, 1e-12)

	require.Len(t, res.Ledger, 5)
	wantOnHand := []int{50, 40, 30, 20, 10}
	wantOrdered := []bool{false, true, false, true, false}
	for i, row := range res.Ledger {
		assert.Equal(t, i, row.Day)
		assert.Equal(t, wantOnHand[i], row.OnHandEnd, "day %d", i)
		assert.Equal(t, wantOrdered[i], row.Ordered, "day %d", i)
	}
	assert.InDelta(t, 150.0, res.Ledger[4].CumHoldCost, 1e-12)
	assert.Equal(t, 2, res.Ledger[4].OrdersPlaced)
}

func TestRun_ShipmentArrivesBeforeDemandIsServed(t *testing.T) {
	// R=9, Q=10, L=1: every day ends at position 9, ordering 10 that lands
	// the next morning. Demand of 10/day is always served in full.
	params := model.PolicyParameters{
		R: 9, Q: 10, LeadTimeDays: 1, HoldCostPerUnitDay: 1, OrderCostPerOrder: 10,
	}
	res, err := RunWithLedger([]int{10, 10, 10, 10}, params)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.KPI.ServiceLevel)
	assert.Equal(t, 0, res.KPI.StockoutUnits)
	for i, row := range res.Ledger {
		if i > 0 {
			assert.Equal(t, 10, row.ReceivedUnits, "day %d", i)
		}
		assert.True(t, row.Ordered, "day %d", i)
	}
}

func TestRun_DemandConservation(t *testing.T) {
	demand := []int{37, 0, 112, 54, 9, 88, 130, 2, 61, 45}
	params := model.PolicyParameters{
		R: 30, Q: 40, LeadTimeDays: 3, HoldCostPerUnitDay: 0.5, OrderCostPerOrder: 25,
	}
	res, err := RunWithLedger(demand, params)
	require.NoError(t, err)

	total := 0
	soldPlusShort := 0
	for _, row := range res.Ledger {
		total += row.Demand
		soldPlusShort += row.Sold + row.Shortfall
		assert.GreaterOrEqual(t, row.OnHandEnd, 0)
		assert.Equal(t, row.OnHandEnd+row.PipelineUnits, row.InventoryPosition)
	}
	assert.Equal(t, total, soldPlusShort)
	assert.Equal(t, total-res.KPI.StockoutUnits, sumSold(res.Ledger))
}

func sumSold(rows []DayRow) int {
	s := 0
	for _, r := range rows {
		s += r.Sold
	}
	return s
}

func TestRun_UndersizedPolicy_Stockouts(t *testing.T) {
	// Q far below daily demand: stock drains and stays empty most days.
	params := model.PolicyParameters{
		R: 5, Q: 2, LeadTimeDays: 4, HoldCostPerUnitDay: 1, OrderCostPerOrder: 10,
	}
	kpi, err := Run([]int{50, 50, 50, 50, 50, 50}, params)
	require.NoError(t, err)
	assert.Less(t, kpi.ServiceLevel, 0.5)
	assert.Positive(t, kpi.StockoutUnits)
}

func TestRun_AtMostOneOrderPerDay(t *testing.T) {
	// A single huge demand day pushes the position far below R, but only one
	// order of exactly Q may go out per day.
	params := model.PolicyParameters{
		R: 100, Q: 10, LeadTimeDays: 5, HoldCostPerUnitDay: 1, OrderCostPerOrder: 10,
	}
	res, err := RunWithLedger([]int{500, 0, 0}, params)
	require.NoError(t, err)
	for _, row := range res.Ledger {
		assert.True(t, row.Ordered)
	}
	assert.Equal(t, 3, res.KPI.OrderCount)
}

func TestRun_ZeroDemandPath_ErrZeroDemand(t *testing.T) {
	_, err := Run([]int{0, 0, 0}, steadyParams())
	require.ErrorIs(t, err, ErrZeroDemand)
}

func TestRun_InvalidPolicy_Rejected(t *testing.T) {
	p := steadyParams()
	p.Q = 0
	_, err := Run([]int{10, 10}, p)
	require.Error(t, err)

	p = steadyParams()
	p.LeadTimeDays = 0
	_, err = Run([]int{10, 10}, p)
	require.Error(t, err)
}

func TestRun_EmptyPath_Rejected(t *testing.T) {
	_, err := Run(nil, steadyParams())
	require.Error(t, err)
}
