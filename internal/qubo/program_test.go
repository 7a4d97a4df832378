package qubo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-dispatch/internal/model"
)

func buildTwoVar(t *testing.T) *Program {
	t.Helper()
	p := NewProgram("test")
	_, err := p.AddBinary("a")
	require.NoError(t, err)
	_, err = p.AddBinary("b")
	require.NoError(t, err)
	require.NoError(t, p.SetLinear("a", 1))
	require.NoError(t, p.SetLinear("b", -2))
	require.NoError(t, p.SetQuadratic("a", "b", 3))
	return p
}

func TestProgramEnergy(t *testing.T) {
	q := buildTwoVar(t).ToQUBO()

	assert.InDelta(t, 0, q.Energy([]int8{0, 0}), 1e-12)
	assert.InDelta(t, 1, q.Energy([]int8{1, 0}), 1e-12)
	assert.InDelta(t, -2, q.Energy([]int8{0, 1}), 1e-12)
	assert.InDelta(t, 2, q.Energy([]int8{1, 1}), 1e-12)
}

func TestProgramOffset(t *testing.T) {
	p := buildTwoVar(t)
	p.SetOffset(10)
	q := p.ToQUBO()
	assert.InDelta(t, 8, q.Energy([]int8{0, 1}), 1e-12)
}

func TestFlipDelta(t *testing.T) {
	q := buildTwoVar(t).ToQUBO()

	bits := []int8{0, 1}
	// Flipping a turns (0,1) into (1,1): energy goes from -2 to 2.
	assert.InDelta(t, 4, q.FlipDelta(bits, 0), 1e-12)
	// Flipping b turns (0,1) into (0,0): energy goes from -2 to 0.
	assert.InDelta(t, 2, q.FlipDelta(bits, 1), 1e-12)

	// Delta matches a full re-evaluation for every bit.
	for i := range bits {
		before := q.Energy(bits)
		delta := q.FlipDelta(bits, i)
		bits[i] ^= 1
		assert.InDelta(t, before+delta, q.Energy(bits), 1e-12)
		bits[i] ^= 1
	}
}

func TestProgramErrors(t *testing.T) {
	p := NewProgram("test")
	_, err := p.AddBinary("a")
	require.NoError(t, err)

	_, err = p.AddBinary("a")
	assert.Error(t, err)

	assert.Error(t, p.SetLinear("missing", 1))
	assert.Error(t, p.SetQuadratic("a", "missing", 1))
	assert.Error(t, p.SetQuadratic("a", "a", 1))
}

func TestBuildScheduleProgram(t *testing.T) {
	window := model.EnergySeries{
		{Hour: "00:00", TotalMW: 450, DemandMW: 400}, // surplus 50
		{Hour: "01:00", TotalMW: 370, DemandMW: 400}, // deficit 30
		{Hour: "02:00", TotalMW: 400, DemandMW: 400}, // balanced
	}

	p, err := BuildScheduleProgram(window)
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumVars())
	assert.Equal(t, []string{"x_0", "x_1", "x_2"}, p.VarNames())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, p.Pairs())

	q := p.ToQUBO()
	// Linear coefficients are -0.1 * surplus.
	assert.InDelta(t, -5, q.Energy([]int8{1, 0, 0}), 1e-9)
	assert.InDelta(t, 3, q.Energy([]int8{0, 1, 0}), 1e-9)
	assert.InDelta(t, 0, q.Energy([]int8{0, 0, 1}), 1e-9)
	// Adjacent charging pays the smoothing penalty.
	assert.InDelta(t, -5+3+0.05, q.Energy([]int8{1, 1, 0}), 1e-9)

	_, err = BuildScheduleProgram(nil)
	assert.Error(t, err)
}
