package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inventory-sim/internal/model"
)

// ForecastDocument matches the JSON shape of a forecast dataset file.
//
// Example:
//
//	{
//	  "name": "sku-4711 90-day forecast",
//	  "residual_stdev": 0.12,
//	  "data": [ {"date": "2025-01-01", "forecast": 118.4}, ... ]
//	}
type ForecastDocument struct {
	Name          string        `json:"name"`
	ResidualStdev float64       `json:"residual_stdev"`
	Data          []ForecastDay `json:"data"`
}

// ForecastDay is one row of the forecast table.
type ForecastDay struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Forecast float64 `json:"forecast"`
}

func LoadForecastJSON(path string) (*ForecastDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast file: %w", err)
	}
	var doc ForecastDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse forecast file: %w", err)
	}
	return &doc, nil
}

func SaveForecastJSON(doc *ForecastDocument, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal forecast: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write forecast file: %w", err)
	}
	return nil
}

// Series converts the document into the simulation input.
func (d *ForecastDocument) Series() model.ForecastSeries {
	means := make([]float64, len(d.Data))
	for i, row := range d.Data {
		means[i] = row.Forecast
	}
	return model.ForecastSeries{
		Means:         means,
		ResidualScale: d.ResidualStdev,
	}
}

// ForecastInfo summarizes one dataset file for listings.
type ForecastInfo struct {
	ID            string  `json:"id"` // filename without extension
	Name          string  `json:"name"`
	Days          int     `json:"days"`
	ResidualStdev float64 `json:"residual_stdev"`
}

// ListForecasts scans a directory for *.json forecast datasets.
// Unparseable files are skipped rather than failing the listing.
func ListForecasts(dir string) ([]ForecastInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]ForecastInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		doc, err := LoadForecastJSON(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, ForecastInfo{
			ID:            strings.TrimSuffix(e.Name(), ".json"),
			Name:          doc.Name,
			Days:          len(doc.Data),
			ResidualStdev: doc.ResidualStdev,
		})
	}
	return out, nil
}
