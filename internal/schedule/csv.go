package schedule

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteScheduleCSV writes the schedule rows to a CSV file.
func WriteScheduleCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"hour",
		"action",
		"amount_mw",
		"efficiency_pct",
		"grid_balance_mw",
		"decision",
		"soc_start",
		"soc_end",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			r.Hour,
			string(r.Action),
			strconv.Itoa(r.AmountMW),
			strconv.Itoa(r.EfficiencyPct),
			strconv.Itoa(r.GridBalanceMW),
			strconv.FormatFloat(r.Decision, 'f', 1, 64),
			strconv.FormatFloat(r.SOCStart, 'f', 4, 64),
			strconv.FormatFloat(r.SOCEnd, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
