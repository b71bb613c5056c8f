package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"inventory-sim/internal/api/models"
	"inventory-sim/internal/api/store"
	"inventory-sim/internal/config"
	"inventory-sim/internal/pipeline"
	"inventory-sim/internal/search"
)

// OptimizeHandler runs the full baseline/search/validation pipeline and
// keeps finished reports around for follow-up GETs.
type OptimizeHandler struct {
	forecastDir string
	results     *store.ResultStore
	log         zerolog.Logger
}

func NewOptimizeHandler(forecastDir string, results *store.ResultStore, log zerolog.Logger) *OptimizeHandler {
	return &OptimizeHandler{forecastDir: forecastDir, results: results, log: log}
}

// RunOptimization handles POST /api/v1/optimize
func (h *OptimizeHandler) RunOptimization(c *gin.Context) {
	var req models.OptimizeRequest
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

	cfg := config.Default()
	cfg.Policy = config.MergePolicy(cfg.Policy, config.PolicyConfig{
		LeadTimeDays:       req.Policy.LeadTimeDays,
		HoldCostPerUnitDay: req.Policy.HoldCostPerUnitDay,
		OrderCostPerOrder:  req.Policy.OrderCostPerOrder,
		ServiceZ:           req.Policy.ServiceZ,
	})
	cfg.Search = config.MergeSearch(cfg.Search, config.SearchConfig{
		HalfWidth:     req.Search.HalfWidth,
		NSims:         req.Search.NSims,
		NGridSims:     req.Search.NGridSims,
		TargetService: req.Search.TargetService,
		TopN:          req.Search.TopN,
		Workers:       req.Search.Workers,
	})

	p, err := pipeline.New(series, cfg, h.log)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	report, err := p.Run()
	if err != nil {
		var nf *search.NoFeasiblePolicyError
		if errors.As(err, &nf) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "NO_FEASIBLE_POLICY",
					Message: nf.Error(),
					Details: map[string]interface{}{
						"target_service": nf.TargetService,
						"evaluated":      nf.Evaluated,
						"best_service":   nf.BestService,
					},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "OPTIMIZE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	id := h.results.Put(report)
	c.JSON(http.StatusOK, toOptimizeResponse(id, report, cfg.Search.TopN))
}

// GetOptimization handles GET /api/v1/optimize/:id
func (h *OptimizeHandler) GetOptimization(c *gin.Context) {
	id := c.Param("id")
	report, ok := h.results.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no optimization result with that ID (results expire)",
			},
		})
		return
	}
	c.JSON(http.StatusOK, toOptimizeResponse(id, report, config.Default().Search.TopN))
}
