package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"inventory-sim/internal/api/models"
	"inventory-sim/internal/data"
	"inventory-sim/internal/model"
	"inventory-sim/internal/montecarlo"
	"inventory-sim/internal/pipeline"
	"inventory-sim/internal/search"
)

// resolveForecast turns a request's forecast input into a series, either
// from a dataset file under dir or from inline means.
func resolveForecast(dir string, in models.ForecastInput) (model.ForecastSeries, error) {
	if in.Dataset != "" {
		doc, err := data.LoadForecastJSON(filepath.Join(dir, in.Dataset+".json"))
		if err != nil {
			return model.ForecastSeries{}, fmt.Errorf("dataset %q: %w", in.Dataset, err)
		}
		series := doc.Series()
		if in.ResidualStdev != 0 {
			series.ResidualScale = in.ResidualStdev
		}
		return series, nil
	}
	if len(in.Means) == 0 {
		return model.ForecastSeries{}, errors.New("forecast requires either a dataset ID or inline means")
	}
	return model.ForecastSeries{Means: in.Means, ResidualScale: in.ResidualStdev}, nil
}

func toColumns(c montecarlo.Columns) models.KPIColumns {
	return models.KPIColumns{
		ServiceLevel:  c.ServiceLevel,
		StockoutUnits: c.StockoutUnits,
		AvgHoldCost:   c.AvgHoldCost,
		OrderCount:    c.OrderCount,
		AvgOrderCost:  c.AvgOrderCost,
		AvgTotalCost:  c.AvgTotalCost,
	}
}

func toAggregate(a montecarlo.Aggregate) models.AggregateSummary {
	return models.AggregateSummary{
		Mean:       toColumns(a.Mean),
		Std:        toColumns(a.Std),
		Runs:       a.Runs,
		Degenerate: a.Degenerate,
	}
}

func toCandidate(c search.Candidate) models.CandidateRow {
	return models.CandidateRow{
		R:                c.R,
		Q:                c.Q,
		MeanServiceLevel: c.MeanServiceLevel,
		MeanHoldCost:     c.MeanHoldCost,
		MeanOrderCost:    c.MeanOrderCost,
		MeanTotalCost:    c.MeanTotalCost,
	}
}

func toOptimizeResponse(id string, report *pipeline.Report, topN int) models.OptimizeResponse {
	top := report.Search.TopN(topN)
	rows := make([]models.CandidateRow, len(top))
	for i, c := range top {
		rows[i] = toCandidate(c)
	}
	b := report.Baseline
	return models.OptimizeResponse{
		ID:      id,
		Status:  "completed",
		Horizon: report.HorizonDays,
		Baseline: models.BaselineSummary{
			R:               b.Formulas.R,
			Q:               b.Formulas.Q,
			SafetyStock:     b.Formulas.SafetyStock,
			ServiceZ:        b.Formulas.ServiceZ,
			MeanDailyDemand: b.Formulas.MeanDailyDemand,
			LeadTimeDemand:  b.Formulas.LeadTimeDemand,
			LeadTimeStdev:   b.Formulas.LeadTimeStdev,
			Aggregate:       toAggregate(b.Aggregate),
		},
		Evaluated:     report.Search.Evaluated,
		Feasible:      len(report.Search.Feasible),
		Top:           rows,
		Best:          toCandidate(report.Search.Best),
		BestAggregate: toAggregate(report.Validation.Aggregate),
		Savings: models.SavingsSummary{
			HoldingPerDay:         report.Validation.Savings.HoldingPerDay,
			OrderingPerDay:        report.Validation.Savings.OrderingPerDay,
			TotalPerDay:           report.Validation.Savings.TotalPerDay,
			HoldingPerYear:        report.Validation.Savings.HoldingPerYear,
			OrderingPerYear:       report.Validation.Savings.OrderingPerYear,
			TotalPerYear:          report.Validation.Savings.TotalPerYear,
			OrdersPerYearBaseline: report.Validation.Savings.OrdersPerYearBaseline,
			OrdersPerYearBest:     report.Validation.Savings.OrdersPerYearBest,
		},
	}
}
