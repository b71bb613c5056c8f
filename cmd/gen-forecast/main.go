package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"inventory-sim/internal/data"
)

// gen-forecast writes a synthetic forecast dataset JSON for demos and tests.
func main() {
	outPath := flag.String("out", "", "Output JSON path (required)")
	name := flag.String("name", "synthetic forecast", "Dataset display name")
	days := flag.Int("days", 90, "Forecast horizon in days")
	base := flag.Float64("base", 120, "Base daily demand level")
	swing := flag.Float64("swing", 25, "Weekly seasonal swing amplitude")
	stdev := flag.Float64("stdev", 0.12, "Residual stdev as a fraction of the mean")
	startStr := flag.String("start", "", "First forecast date YYYY-MM-DD (default: today)")
	flag.Parse()

	if *outPath == "" {
		fmt.Println("--out is required")
		os.Exit(2)
	}

	start := time.Now()
	if *startStr != "" {
		t, err := time.Parse("2006-01-02", *startStr)
		if err != nil {
			panic(err)
		}
		start = t
	}

	doc := data.SyntheticForecast(*name, start, *days, *base, *swing, *stdev)
	if err := data.SaveForecastJSON(doc, *outPath); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d days to %s\n", len(doc.Data), *outPath)
}
