package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-sim/internal/api/models"
	"inventory-sim/internal/model"
	"inventory-sim/internal/montecarlo"
)

const (
	defaultSimulateNSims = 1000
	defaultSimulateSeed  = 42
)

// SimulateHandler runs one-off Monte Carlo simulations for a fixed policy.
type SimulateHandler struct {
	forecastDir string
}

func NewSimulateHandler(forecastDir string) *SimulateHandler {
	return &SimulateHandler{forecastDir: forecastDir}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	series, err := resolveForecast(h.forecastDir, req.Forecast)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_FORECAST",
				Message: err.Error(),
			},
		})
		return
	}

	params := model.PolicyParameters{
		R:                  req.Policy.R,
		Q:                  req.Policy.Q,
		LeadTimeDays:       req.Policy.LeadTimeDays,
		HoldCostPerUnitDay: req.Policy.HoldCostPerUnitDay,
		OrderCostPerOrder:  req.Policy.OrderCostPerOrder,
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_POLICY",
				Message: err.Error(),
			},
		})
		return
	}

	n := req.Options.NSims
	if n <= 0 {
		n = defaultSimulateNSims
	}
	seed := req.Options.Seed
	if seed == 0 {
		seed = defaultSimulateSeed
	}

	engine := montecarlo.Engine{Series: series, Params: params}
	set, err := engine.Run(n, seed, "simulate")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SimulateResponse{
		Status:    "completed",
		Policy:    req.Policy,
		Horizon:   series.Days(),
		Aggregate: toAggregate(set.Aggregate()),
	}
	if req.Options.IncludeRecords {
		resp.Records = make([]models.KPIRow, len(set.Records))
		for i, r := range set.Records {
			resp.Records[i] = models.KPIRow{
				ServiceLevel:  r.ServiceLevel,
				StockoutUnits: r.StockoutUnits,
				AvgHoldCost:   r.AvgHoldCost,
				OrderCount:    r.OrderCount,
				AvgOrderCost:  r.AvgOrderCost,
				AvgTotalCost:  r.AvgTotalCost,
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}
