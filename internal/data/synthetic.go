package data

import (
	"math"
	"time"
)

// SyntheticForecast builds a seasonal forecast dataset for demos and tests:
// a base level with a weekly sine swing, dated from start.
func SyntheticForecast(name string, start time.Time, days int, baseLevel, weeklySwing, residualStdev float64) *ForecastDocument {
	doc := &ForecastDocument{
		Name:          name,
		ResidualStdev: residualStdev,
		Data:          make([]ForecastDay, days),
	}
	for i := 0; i < days; i++ {
		mean := baseLevel + weeklySwing*math.Sin(2*math.Pi*float64(i)/7)
		if mean < 0 {
			mean = 0
		}
		doc.Data[i] = ForecastDay{
			Date:     start.AddDate(0, 0, i).Format("2006-01-02"),
			Forecast: math.Round(mean*100) / 100,
		}
	}
	return doc
}
