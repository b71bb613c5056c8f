package simulate

import (
	"errors"
	"fmt"

	"inventory-sim/internal/model"
)

// ErrZeroDemand marks a degenerate run: a demand path whose total demand is
// zero leaves the service level undefined. Callers (the Monte Carlo engine)
// exclude such runs from aggregation rather than letting them corrupt means.
var ErrZeroDemand = errors.New("zero total demand over horizon; service level undefined")

// Run simulates one demand path under a continuous-review (R, Q) policy and
// returns its KPI record. Pure function over its inputs: each call owns its
// state exclusively, so independent paths may run concurrently.
//
// Per-day update order, which is load-bearing for both cost and service:
//  1. receive: advance every in-transit shipment one day; shipments reaching
//     zero are credited to on-hand stock before demand is served
//  2. serve: sell up to on-hand, accumulate shortfall and end-of-day holding
//     cost on the post-sale stock
//  3. reorder: if on-hand plus pipeline is at or below R, place one order of
//     exactly Q (at most one order per day, regardless of the shortfall)
func Run(demandPath []int, params model.PolicyParameters) (model.KPIRecord, error) {
	res, err := run(demandPath, params, false)
	if err != nil {
		return model.KPIRecord{}, err
	}
	return res.KPI, nil
}

// RunWithLedger is Run plus a per-day ledger row trace, for inspection and
// CSV output. Monte Carlo runs use Run to avoid allocating ledgers.
func RunWithLedger(demandPath []int, params model.PolicyParameters) (*Result, error) {
	return run(demandPath, params, true)
}

// Result bundles the KPI record with the optional day ledger.
type Result struct {
	KPI    model.KPIRecord
	Ledger []DayRow
}

func run(demandPath []int, params model.PolicyParameters, withLedger bool) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}
	if len(demandPath) == 0 {
		return nil, errors.New("empty demand path")
	}

	// Start topped up to R+Q so a short horizon is not dominated by an
	// initial-stockout transient.
	onHand := params.R + params.Q
	inTransit := make([]model.Shipment, 0, 4)
	pipelineUnits := 0
	stockoutUnits := 0
	cumHoldCost := 0.0
	ordersPlaced := 0
	totalDemand := 0

	var ledger []DayRow
	if withLedger {
		ledger = make([]DayRow, 0, len(demandPath))
	}

	for day, d := range demandPath {
		// 1) Advance the pipeline; every shipment hitting zero days is
		// received before today's demand is served.
		received := 0
		live := inTransit[:0]
		for _, sh := range inTransit {
			sh.DaysRemaining--
			if sh.DaysRemaining <= 0 {
				received += sh.Quantity
			} else {
				live = append(live, sh)
			}
		}
		inTransit = live
		onHand += received
		pipelineUnits -= received

		// 2) Serve demand up to available stock; shortfall is a stockout.
		// Holding cost is charged on the post-sale end-of-day stock.
		sold := d
		if sold > onHand {
			sold = onHand
		}
		onHand -= sold
		stockoutUnits += d - sold
		totalDemand += d
		dayHoldCost := float64(onHand) * params.HoldCostPerUnitDay
		cumHoldCost += dayHoldCost

		// 3) Continuous-review reorder rule on inventory position.
		position := onHand + pipelineUnits
		ordered := false
		if position <= params.R {
			inTransit = append(inTransit, model.Shipment{
				DaysRemaining: params.LeadTimeDays,
				Quantity:      params.Q,
			})
			pipelineUnits += params.Q
			ordersPlaced++
			ordered = true
		}

		if withLedger {
			ledger = append(ledger, DayRow{
				Day:               day,
				Demand:            d,
				Sold:              sold,
				Shortfall:         d - sold,
				ReceivedUnits:     received,
				Ordered:           ordered,
				Action:            model.DayActionFor(received, ordered),
				OnHandEnd:         onHand,
				PipelineUnits:     pipelineUnits,
				InventoryPosition: onHand + pipelineUnits,
				HoldCost:          dayHoldCost,
				CumHoldCost:       cumHoldCost,
				OrdersPlaced:      ordersPlaced,
			})
		}
	}

	if totalDemand == 0 {
		return nil, ErrZeroDemand
	}

	nDays := float64(len(demandPath))
	avgHold := cumHoldCost / nDays
	avgOrder := float64(ordersPlaced) * params.OrderCostPerOrder / nDays
	return &Result{
		KPI: model.KPIRecord{
			ServiceLevel:  1 - float64(stockoutUnits)/float64(totalDemand),
			StockoutUnits: stockoutUnits,
			AvgHoldCost:   avgHold,
			OrderCount:    ordersPlaced,
			AvgOrderCost:  avgOrder,
			AvgTotalCost:  avgHold + avgOrder,
		},
		Ledger: ledger,
	}, nil
}
