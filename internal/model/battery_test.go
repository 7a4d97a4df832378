package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatteryValidates(t *testing.T) {
	_, err := NewBattery(DefaultBatteryParams(0), 0.5)
	assert.Error(t, err)

	_, err = NewBattery(DefaultBatteryParams(100), 0.05) // below MinSOC
	assert.Error(t, err)

	b, err := NewBattery(DefaultBatteryParams(100), 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, b.State.SOC)
}

func TestApplyDecisionCharge(t *testing.T) {
	b, err := NewBattery(DefaultBatteryParams(100), 0.5)
	require.NoError(t, err)

	res, err := b.ApplyDecision(ActionCharge, 20)
	require.NoError(t, err)
	assert.Equal(t, ActionCharge, res.Action)
	assert.InDelta(t, 20, res.EnergyMWh, 1e-9)
	assert.InDelta(t, 0.5, res.SOCStart, 1e-9)
	// 20 MWh from grid stores 19 MWh at 95% efficiency.
	assert.InDelta(t, 0.69, res.SOCEnd, 1e-9)
}

func TestApplyDecisionChargeClippedAtMaxSOC(t *testing.T) {
	b, err := NewBattery(DefaultBatteryParams(100), 0.85)
	require.NoError(t, err)

	res, err := b.ApplyDecision(ActionCharge, 50)
	require.NoError(t, err)
	// Only 5 MWh of headroom: grid-side limit is 5/0.95.
	assert.InDelta(t, 5/0.95, res.EnergyMWh, 1e-9)
	assert.InDelta(t, 0.9, res.SOCEnd, 1e-9)
}

func TestApplyDecisionDischargeClippedAtMinSOC(t *testing.T) {
	b, err := NewBattery(DefaultBatteryParams(100), 0.15)
	require.NoError(t, err)

	res, err := b.ApplyDecision(ActionDischarge, 50)
	require.NoError(t, err)
	// 5 MWh above the floor delivers 5*0.95 to the grid.
	assert.InDelta(t, 5*0.95, res.EnergyMWh, 1e-9)
	assert.InDelta(t, 0.1, res.SOCEnd, 1e-9)
}

func TestApplyDecisionRejectsNegativeEnergy(t *testing.T) {
	b, err := NewBattery(DefaultBatteryParams(100), 0.5)
	require.NoError(t, err)

	_, err = b.ApplyDecision(ActionCharge, -1)
	assert.Error(t, err)
}

func TestSeriesWindow(t *testing.T) {
	s := EnergySeries{
		{Hour: "00:00", TotalMW: 100, DemandMW: 80},
		{Hour: "01:00", TotalMW: 90, DemandMW: 110},
		{Hour: "02:00", TotalMW: 100, DemandMW: 100},
	}

	assert.Len(t, s.Window(2), 2)
	assert.Len(t, s.Window(8), 3)
	assert.Len(t, s.Window(0), 0)
	assert.Len(t, s.Window(-1), 0)

	assert.InDelta(t, 40, s.TotalImbalanceMW(), 1e-9)
}

func TestActionFromBit(t *testing.T) {
	assert.Equal(t, ActionCharge, ActionFromBit(1))
	assert.Equal(t, ActionDischarge, ActionFromBit(0))
}
