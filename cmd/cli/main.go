package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"inventory-sim/internal/analysis"
	"inventory-sim/internal/config"
	"inventory-sim/internal/data"
	"inventory-sim/internal/demand"
	"inventory-sim/internal/model"
	"inventory-sim/internal/montecarlo"
	"inventory-sim/internal/pipeline"
	"inventory-sim/internal/search"
	"inventory-sim/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "trace":
		cmdTrace(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml [--r 650 --q 300] [--sims 10000]")
	fmt.Println("  cli optimize --config examples/config.yaml")
	fmt.Println("  cli trace    --config examples/config.yaml [--r 650 --q 300] [--out results/ledger.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate estimates KPIs for one (R, Q) policy by Monte Carlo")
	fmt.Println("  - omit --r/--q to use the closed-form baseline policy")
	fmt.Println("  - optimize runs baseline, grid search and validation end to end")
	fmt.Println("  - trace writes a single demand path's day-by-day ledger")
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// loadInputs reads the config and its forecast dataset.
func loadInputs(cfgPath string) (*config.Config, model.ForecastSeries) {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	if cfg.ForecastFile == "" {
		fmt.Println("config has no forecast_file")
		os.Exit(2)
	}
	doc, err := data.LoadForecastJSON(cfg.ForecastFile)
	if err != nil {
		panic(err)
	}
	return cfg, doc.Series()
}

// resolvePolicy fills (R, Q) either from flags or from the baseline formulas.
func resolvePolicy(cfg *config.Config, series model.ForecastSeries, r, q int) model.PolicyParameters {
	costs := cfg.Policy.ToModelParams()
	if r >= 0 && q >= 1 {
		return costs.WithRQ(r, q)
	}
	base, err := analysis.ComputeBaseline(series, costs, cfg.Policy.ServiceZ, cfg.Search.TargetService)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Using baseline policy R=%d Q=%d (safety stock %d, z=%.2f)\n\n",
		base.R, base.Q, base.SafetyStock, base.ServiceZ)
	return base.Policy(costs)
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	r := fs.Int("r", -1, "Reorder point (default: baseline formula)")
	q := fs.Int("q", -1, "Order quantity (default: baseline formula)")
	sims := fs.Int("sims", 0, "Override sample count (0 = config n_sims)")
	_ = fs.Parse(args)

	cfg, series := loadInputs(*cfgPath)
	params := resolvePolicy(cfg, series, *r, *q)

	n := cfg.Search.NSims
	if *sims > 0 {
		n = *sims
	}
	engine := montecarlo.Engine{Series: series, Params: params, Workers: cfg.Search.Workers}
	set, err := engine.Run(n, cfg.Seeds.Baseline, "simulate")
	if err != nil {
		panic(err)
	}
	agg := set.Aggregate()

	fmt.Printf("Policy R=%d Q=%d over %d days, %d runs (%d degenerate)\n\n",
		params.R, params.Q, series.Days(), agg.Runs, agg.Degenerate)
	printAggregate(agg)
	fmt.Printf("\nOrders per year: %.1f\n", agg.OrdersPerYear(series.Days()))
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	cfg, series := loadInputs(*cfgPath)

	p, err := pipeline.New(series, *cfg, newLogger())
	if err != nil {
		panic(err)
	}
	report, err := p.Run()
	if err != nil {
		var nf *search.NoFeasiblePolicyError
		if errors.As(err, &nf) {
			fmt.Println(nf.Error())
			os.Exit(1)
		}
		panic(err)
	}

	b := report.Baseline
	fmt.Printf("Baseline policy: R=%d Q=%d (safety stock %d, z=%.2f)\n",
		b.Formulas.R, b.Formulas.Q, b.Formulas.SafetyStock, b.Formulas.ServiceZ)
	fmt.Printf("  lead-time demand %.1f, stdev %.2f, mean daily demand %.2f\n\n",
		b.Formulas.LeadTimeDemand, b.Formulas.LeadTimeStdev, b.Formulas.MeanDailyDemand)
	printAggregate(b.Aggregate)

	fmt.Printf("\nGrid: %d cells evaluated, %d feasible at service >= %.2f\n\n",
		report.Search.Evaluated, len(report.Search.Feasible), cfg.Search.TargetService)
	top := report.Search.TopN(cfg.Search.TopN)
	fmt.Printf("%-4s %-6s %-6s %-10s %-10s %-10s %-10s\n",
		"rank", "R", "Q", "service", "hold$/d", "order$/d", "total$/d")
	for i, c := range top {
		fmt.Printf("%-4d %-6d %-6d %-10.4f %-10.2f %-10.2f %-10.2f\n",
			i+1, c.R, c.Q, c.MeanServiceLevel, c.MeanHoldCost, c.MeanOrderCost, c.MeanTotalCost)
	}

	v := report.Validation
	fmt.Printf("\nBest policy R=%d Q=%d validated at full sample count:\n\n", v.Params.R, v.Params.Q)
	printAggregate(v.Aggregate)

	s := v.Savings
	fmt.Printf("\nSavings vs baseline (positive = cheaper):\n")
	fmt.Printf("  holding   %8.2f $/day  %10.2f $/year\n", s.HoldingPerDay, s.HoldingPerYear)
	fmt.Printf("  ordering  %8.2f $/day  %10.2f $/year\n", s.OrderingPerDay, s.OrderingPerYear)
	fmt.Printf("  total     %8.2f $/day  %10.2f $/year\n", s.TotalPerDay, s.TotalPerYear)
	fmt.Printf("  orders/year: %.1f baseline, %.1f best\n", s.OrdersPerYearBaseline, s.OrdersPerYearBest)
}

func cmdTrace(args []string) {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	r := fs.Int("r", -1, "Reorder point (default: baseline formula)")
	q := fs.Int("q", -1, "Order quantity (default: baseline formula)")
	seed := fs.Int64("seed", 42, "Demand path seed")
	n := fs.Int("n", 0, "Optional: print only the first N days (0=all)")
	outPath := fs.String("out", "", "Optional path to write ledger CSV")
	_ = fs.Parse(args)

	cfg, series := loadInputs(*cfgPath)
	params := resolvePolicy(cfg, series, *r, *q)

	path := demand.New(series, *seed).Next()
	res, err := simulate.RunWithLedger(path, params)
	if err != nil {
		panic(err)
	}

	rows := res.Ledger
	limit := len(rows)
	if *n > 0 && *n < limit {
		limit = *n
	}
	fmt.Printf("%-5s %-7s %-6s %-6s %-5s %-14s %-8s %-6s %-5s %-10s\n",
		"day", "demand", "sold", "short", "recv", "action", "on-hand", "pipe", "pos", "cum-hold$")
	for i := 0; i < limit; i++ {
		row := rows[i]
		fmt.Printf("%-5d %-7d %-6d %-6d %-5d %-14s %-8d %-6d %-5d %-10.2f\n",
			row.Day, row.Demand, row.Sold, row.Shortfall, row.ReceivedUnits,
			string(row.Action), row.OnHandEnd, row.PipelineUnits, row.InventoryPosition, row.CumHoldCost)
	}

	k := res.KPI
	fmt.Printf("\nService=%.4f  stockouts=%d  orders=%d  total $/day=%.2f\n",
		k.ServiceLevel, k.StockoutUnits, k.OrderCount, k.AvgTotalCost)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := simulate.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	}
}

func printAggregate(agg montecarlo.Aggregate) {
	fmt.Printf("%-16s %-12s %-12s\n", "kpi", "mean", "std")
	fmt.Printf("%-16s %-12.4f %-12.4f\n", "service level", agg.Mean.ServiceLevel, agg.Std.ServiceLevel)
	fmt.Printf("%-16s %-12.2f %-12.2f\n", "stockout units", agg.Mean.StockoutUnits, agg.Std.StockoutUnits)
	fmt.Printf("%-16s %-12.2f %-12.2f\n", "hold $/day", agg.Mean.AvgHoldCost, agg.Std.AvgHoldCost)
	fmt.Printf("%-16s %-12.2f %-12.2f\n", "orders placed", agg.Mean.OrderCount, agg.Std.OrderCount)
	fmt.Printf("%-16s %-12.2f %-12.2f\n", "order $/day", agg.Mean.AvgOrderCost, agg.Std.AvgOrderCost)
	fmt.Printf("%-16s %-12.2f %-12.2f\n", "total $/day", agg.Mean.AvgTotalCost, agg.Std.AvgTotalCost)
}
