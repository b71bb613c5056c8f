package models

// KPIColumns carries one float per KPI column (means or standard deviations).
type KPIColumns struct {
	ServiceLevel  float64 `json:"service_level"`
	StockoutUnits float64 `json:"stockout_units"`
	AvgHoldCost   float64 `json:"avg_hold_cost"`
	OrderCount    float64 `json:"order_count"`
	AvgOrderCost  float64 `json:"avg_order_cost"`
	AvgTotalCost  float64 `json:"avg_total_cost"`
}

// AggregateSummary is the column-wise summary of a Monte Carlo run set.
type AggregateSummary struct {
	Mean       KPIColumns `json:"mean"`
	Std        KPIColumns `json:"std"`
	Runs       int        `json:"runs"`
	Degenerate int        `json:"degenerate"`
}

// KPIRow is one simulation run's KPI record.
type KPIRow struct {
	ServiceLevel  float64 `json:"service_level"`
	StockoutUnits int     `json:"stockout_units"`
	AvgHoldCost   float64 `json:"avg_hold_cost"`
	OrderCount    int     `json:"order_count"`
	AvgOrderCost  float64 `json:"avg_order_cost"`
	AvgTotalCost  float64 `json:"avg_total_cost"`
}

// SimulateResponse is the outcome of a one-off Monte Carlo simulation.
type SimulateResponse struct {
	Status    string           `json:"status"`
	Policy    PolicyInput      `json:"policy"`
	Horizon   int              `json:"horizon_days"`
	Aggregate AggregateSummary `json:"aggregate"`
	Records   []KPIRow         `json:"records,omitempty"`
}

// BaselineSummary describes the closed-form starting policy.
type BaselineSummary struct {
	R               int     `json:"r"`
	Q               int     `json:"q"`
	SafetyStock     int     `json:"safety_stock"`
	ServiceZ        float64 `json:"service_z"`
	MeanDailyDemand float64 `json:"mean_daily_demand"`
	LeadTimeDemand  float64 `json:"lead_time_demand"`
	LeadTimeStdev   float64 `json:"lead_time_stdev"`

	Aggregate AggregateSummary `json:"aggregate"`
}

// CandidateRow is one ranked grid cell.
type CandidateRow struct {
	R                int     `json:"r"`
	Q                int     `json:"q"`
	MeanServiceLevel float64 `json:"mean_service_level"`
	MeanHoldCost     float64 `json:"mean_hold_cost"`
	MeanOrderCost    float64 `json:"mean_order_cost"`
	MeanTotalCost    float64 `json:"mean_total_cost"`
}

// SavingsSummary reports baseline-minus-best differences; positive means the
// best policy is cheaper.
type SavingsSummary struct {
	HoldingPerDay  float64 `json:"holding_per_day"`
	OrderingPerDay float64 `json:"ordering_per_day"`
	TotalPerDay    float64 `json:"total_per_day"`

	HoldingPerYear  float64 `json:"holding_per_year"`
	OrderingPerYear float64 `json:"ordering_per_year"`
	TotalPerYear    float64 `json:"total_per_year"`

	OrdersPerYearBaseline float64 `json:"orders_per_year_baseline"`
	OrdersPerYearBest     float64 `json:"orders_per_year_best"`
}

// OptimizeResponse is the outcome of a full pipeline run.
type OptimizeResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Horizon int    `json:"horizon_days"`

	Baseline BaselineSummary `json:"baseline"`

	Evaluated int            `json:"evaluated_cells"`
	Feasible  int            `json:"feasible_cells"`
	Top       []CandidateRow `json:"top"`
	Best      CandidateRow   `json:"best"`

	BestAggregate AggregateSummary `json:"best_aggregate"`
	Savings       SavingsSummary   `json:"savings"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
