package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-dispatch/internal/anneal"
	"quantum-dispatch/internal/model"
)

func testWindow() model.EnergySeries {
	return model.EnergySeries{
		{Hour: "00:00", TotalMW: 500, DemandMW: 400}, // surplus 100
		{Hour: "01:00", TotalMW: 350, DemandMW: 420}, // deficit 70
		{Hour: "02:00", TotalMW: 480, DemandMW: 400}, // surplus 80
		{Hour: "03:00", TotalMW: 300, DemandMW: 450}, // deficit 150
	}
}

func TestGreedyPlan(t *testing.T) {
	plan, err := GreedyStrategy{}.Plan(context.Background(), testWindow())
	require.NoError(t, err)

	assert.Equal(t, []int8{1, 0, 1, 0}, plan.Bits)
	assert.Equal(t, "greedy", plan.Method)
	// Charging on both surplus hours: -10 - 8 with no adjacent pairs.
	assert.InDelta(t, -18, plan.Energy, 1e-9)
}

func TestGreedyPlanEmptyWindow(t *testing.T) {
	_, err := GreedyStrategy{}.Plan(context.Background(), nil)
	assert.Error(t, err)
}

func TestQuantumPlanExact(t *testing.T) {
	strat, err := NewQuantumStrategy(anneal.Config{Seed: 1})
	require.NoError(t, err)

	plan, err := strat.Plan(context.Background(), testWindow())
	require.NoError(t, err)

	assert.Len(t, plan.Bits, 4)
	assert.Equal(t, anneal.MethodExact, plan.Method)
	// With this window the surplus terms dominate the smoothing coupling,
	// so the exact optimum matches the greedy assignment.
	assert.Equal(t, []int8{1, 0, 1, 0}, plan.Bits)
	assert.InDelta(t, -18, plan.Energy, 1e-9)
}

func TestQuantumPlanNeverWorseThanGreedy(t *testing.T) {
	window := model.EnergySeries{
		{Hour: "00:00", TotalMW: 401, DemandMW: 400},
		{Hour: "01:00", TotalMW: 402, DemandMW: 400},
		{Hour: "02:00", TotalMW: 400.5, DemandMW: 400},
		{Hour: "03:00", TotalMW: 401.5, DemandMW: 400},
	}

	strat, err := NewQuantumStrategy(anneal.Config{Seed: 1})
	require.NoError(t, err)

	qPlan, err := strat.Plan(context.Background(), window)
	require.NoError(t, err)
	gPlan, err := GreedyStrategy{}.Plan(context.Background(), window)
	require.NoError(t, err)

	assert.LessOrEqual(t, qPlan.Energy, gPlan.Energy)
}
