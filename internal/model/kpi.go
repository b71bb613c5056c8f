package model

// KPIRecord is the outcome of simulating one demand path under one policy.
// Produced once per run; immutable thereafter.
type KPIRecord struct {
	ServiceLevel  float64 // fraction of demand served from stock, in [0,1]
	StockoutUnits int     // total unmet demand over the horizon
	AvgHoldCost   float64 // $/day
	OrderCount    int     // purchase orders placed over the horizon
	AvgOrderCost  float64 // $/day
	AvgTotalCost  float64 // AvgHoldCost + AvgOrderCost
}
