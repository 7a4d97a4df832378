package schedule

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-dispatch/internal/model"
)

func TestWriteScheduleCSV(t *testing.T) {
	rows := []Row{
		{Index: 0, Hour: "00:00", Action: model.ActionCharge, AmountMW: 80, EfficiencyPct: 95, GridBalanceMW: 120, Decision: 1, SOCStart: 0.5, SOCEnd: 0.9},
		{Index: 1, Hour: "01:00", Action: model.ActionDischarge, AmountMW: 80, EfficiencyPct: 95, GridBalanceMW: -80, Decision: 0, SOCStart: 0.9, SOCEnd: 0.14},
	}

	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, WriteScheduleCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "hour", records[0][1])
	assert.Equal(t, []string{"0", "00:00", "Charge", "80", "95", "120", "1.0", "0.5000", "0.9000"}, records[1])
	assert.Equal(t, "Discharge", records[2][2])
}
