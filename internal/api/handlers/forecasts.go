package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-sim/internal/api/models"
	"inventory-sim/internal/config"
	"inventory-sim/internal/data"
)

// ForecastHandler serves the forecast datasets available on this server.
type ForecastHandler struct {
	forecastDir string
}

func NewForecastHandler(forecastDir string) *ForecastHandler {
	return &ForecastHandler{forecastDir: forecastDir}
}

// ListForecasts handles GET /api/v1/forecasts
func (h *ForecastHandler) ListForecasts(c *gin.Context) {
	infos, err := data.ListForecasts(h.forecastDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "FORECAST_DIR_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"forecasts": infos,
		"count":     len(infos),
	})
}

// GetDefaults handles GET /api/v1/defaults and reports the server's default
// policy costs, search configuration and phase seeds.
func (h *ForecastHandler) GetDefaults(c *gin.Context) {
	cfg := config.Default()
	c.JSON(http.StatusOK, gin.H{
		"policy": gin.H{
			"lead_time_days":         cfg.Policy.LeadTimeDays,
			"hold_cost_per_unit_day": cfg.Policy.HoldCostPerUnitDay,
			"order_cost_per_order":   cfg.Policy.OrderCostPerOrder,
			"service_z":              cfg.Policy.ServiceZ,
		},
		"search": gin.H{
			"half_width":     cfg.Search.HalfWidth,
			"n_sims":         cfg.Search.NSims,
			"n_grid_sims":    cfg.Search.NGridSims,
			"target_service": cfg.Search.TargetService,
			"top_n":          cfg.Search.TopN,
		},
		"seeds": gin.H{
			"baseline":   cfg.Seeds.Baseline,
			"grid":       cfg.Seeds.Grid,
			"validation": cfg.Seeds.Validation,
		},
	})
}
