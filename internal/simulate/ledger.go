package simulate

import "inventory-sim/internal/model"

// DayRow is one day of per-run output.
// This is the primary artifact for "what happened" on a single demand path.
type DayRow struct {
	Day int

	Demand    int
	Sold      int
	Shortfall int

	ReceivedUnits int
	Ordered       bool
	Action        model.DayAction

	OnHandEnd         int
	PipelineUnits     int
	InventoryPosition int

	HoldCost    float64
	CumHoldCost float64

	OrdersPlaced int
}
