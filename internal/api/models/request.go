package models

// ForecastInput selects the forecast either by dataset ID (a file under the
// forecast directory) or inline.
type ForecastInput struct {
	Dataset       string    `json:"dataset,omitempty"`
	Means         []float64 `json:"means,omitempty"`
	ResidualStdev float64   `json:"residual_stdev,omitempty"`
}

// PolicyInput is a fully specified (R, Q) policy for a one-off simulation.
type PolicyInput struct {
	R                  int     `json:"r"`
	Q                  int     `json:"q" binding:"required"`
	LeadTimeDays       int     `json:"lead_time_days" binding:"required"`
	HoldCostPerUnitDay float64 `json:"hold_cost_per_unit_day"`
	OrderCostPerOrder  float64 `json:"order_cost_per_order"`
}

// SimulateRequest runs the Monte Carlo engine for one policy.
type SimulateRequest struct {
	Forecast ForecastInput   `json:"forecast" binding:"required"`
	Policy   PolicyInput     `json:"policy" binding:"required"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions tunes one simulation request.
type SimulateOptions struct {
	NSims          int   `json:"n_sims,omitempty"` // 0 = server default
	Seed           int64 `json:"seed,omitempty"`
	IncludeRecords bool  `json:"include_records,omitempty"` // per-run KPI rows in the response
}

// PolicyOverrides adjusts the default cost constants for an optimization.
// Zero-valued fields keep the server defaults.
type PolicyOverrides struct {
	LeadTimeDays       int     `json:"lead_time_days,omitempty"`
	HoldCostPerUnitDay float64 `json:"hold_cost_per_unit_day,omitempty"`
	OrderCostPerOrder  float64 `json:"order_cost_per_order,omitempty"`
	ServiceZ           float64 `json:"service_z,omitempty"`
}

// SearchOverrides adjusts the default search configuration.
type SearchOverrides struct {
	HalfWidth     int     `json:"half_width,omitempty"`
	NSims         int     `json:"n_sims,omitempty"`
	NGridSims     int     `json:"n_grid_sims,omitempty"`
	TargetService float64 `json:"target_service,omitempty"`
	TopN          int     `json:"top_n,omitempty"`
	Workers       int     `json:"workers,omitempty"`
}

// OptimizeRequest runs the full baseline → grid search → validation pipeline.
type OptimizeRequest struct {
	Forecast ForecastInput   `json:"forecast" binding:"required"`
	Policy   PolicyOverrides `json:"policy,omitempty"`
	Search   SearchOverrides `json:"search,omitempty"`
}
