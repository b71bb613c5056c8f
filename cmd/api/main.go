package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"inventory-sim/internal/api/handlers"
	"inventory-sim/internal/api/middleware"
	"inventory-sim/internal/api/store"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	forecastDir := os.Getenv("FORECAST_DIR")
	if forecastDir == "" {
		wd, _ := os.Getwd()
		forecastDir = filepath.Join(wd, "examples", "forecasts")
	}
	if info, err := os.Stat(forecastDir); err != nil || !info.IsDir() {
		log.Warn().Str("dir", forecastDir).Msg("forecast directory not found; dataset requests will fail")
	} else {
		log.Info().Str("dir", forecastDir).Msg("forecast directory")
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	results := store.New(time.Hour)
	simulateHandler := handlers.NewSimulateHandler(forecastDir)
	optimizeHandler := handlers.NewOptimizeHandler(forecastDir, results, log)
	forecastHandler := handlers.NewForecastHandler(forecastDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/optimize", optimizeHandler.RunOptimization)
		api.GET("/optimize/:id", optimizeHandler.GetOptimization)

		api.GET("/forecasts", forecastHandler.ListForecasts)
		api.GET("/defaults", forecastHandler.GetDefaults)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
