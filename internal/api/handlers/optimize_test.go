package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-sim/internal/api/models"
	"inventory-sim/internal/api/store"
)

func optimizeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewOptimizeHandler(t.TempDir(), store.New(time.Minute), zerolog.Nop())
	r := gin.New()
	r.POST("/api/v1/optimize", h.RunOptimization)
	r.GET("/api/v1/optimize/:id", h.GetOptimization)
	return r
}

// Small sample counts so the full pipeline stays fast under test.
func smallOptimizeRequest() models.OptimizeRequest {
	return models.OptimizeRequest{
		Forecast: models.ForecastInput{
			Means: []float64{
				10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
				10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
			},
			ResidualStdev: 0.2,
		},
		Search: models.SearchOverrides{
			HalfWidth: 3,
			NSims:     100,
			NGridSims: 20,
			TopN:      5,
		},
	}
}

func TestRunOptimization_EndToEnd(t *testing.T) {
	r := optimizeRouter(t)
	w := postJSON(t, r, "/api/v1/optimize", smallOptimizeRequest())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 20, resp.Horizon)
	assert.Positive(t, resp.Evaluated)
	assert.Positive(t, resp.Feasible)
	assert.NotEmpty(t, resp.Top)
	assert.Equal(t, resp.Top[0], resp.Best)
	assert.Positive(t, resp.Baseline.R)
	assert.Positive(t, resp.BestAggregate.Runs)
}

func TestGetOptimization_RoundTrip(t *testing.T) {
	r := optimizeRouter(t)
	w := postJSON(t, r, "/api/v1/optimize", smallOptimizeRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var created models.OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/optimize/"+created.ID, nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	require.Equal(t, http.StatusOK, got.Code)
	var fetched models.OptimizeResponse
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Best, fetched.Best)
}

func TestGetOptimization_UnknownID_NotFound(t *testing.T) {
	r := optimizeRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/optimize/doesnotexist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestRunOptimization_MissingForecast_BadRequest(t *testing.T) {
	r := optimizeRouter(t)
	w := postJSON(t, r, "/api/v1/optimize", models.OptimizeRequest{
		Forecast: models.ForecastInput{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
