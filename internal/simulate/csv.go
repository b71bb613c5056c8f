package simulate

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []DayRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"day",
		"demand",
		"sold",
		"shortfall",
		"received_units",
		"action",
		"on_hand_end",
		"pipeline_units",
		"inventory_position",
		"hold_cost",
		"cum_hold_cost",
		"orders_placed",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Demand),
			strconv.Itoa(r.Sold),
			strconv.Itoa(r.Shortfall),
			strconv.Itoa(r.ReceivedUnits),
			string(r.Action),
			strconv.Itoa(r.OnHandEnd),
			strconv.Itoa(r.PipelineUnits),
			strconv.Itoa(r.InventoryPosition),
			fmtFloat(r.HoldCost),
			fmtFloat(r.CumHoldCost),
			strconv.Itoa(r.OrdersPlaced),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
