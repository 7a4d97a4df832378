package strategy

import (
	"context"
	"fmt"
	"time"

	"quantum-dispatch/internal/model"
	"quantum-dispatch/internal/qubo"
)

// GreedyStrategy charges whenever the hour has a supply surplus and
// discharges otherwise. It ignores the smoothness coupling, which makes it
// a useful baseline for the optimizer.
type GreedyStrategy struct{}

func (GreedyStrategy) Name() string { return "greedy" }

func (GreedyStrategy) Plan(_ context.Context, window model.EnergySeries) (*Plan, error) {
	if len(window) == 0 {
		return nil, fmt.Errorf("empty window")
	}

	start := time.Now()
	bits := make([]int8, len(window))
	for t, pt := range window {
		if pt.SurplusMW() > 0 {
			bits[t] = 1
		}
	}

	// Score the plan with the shared objective so plans are comparable
	// across strategies.
	prog, err := qubo.BuildScheduleProgram(window)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Bits:     bits,
		Energy:   prog.ToQUBO().Energy(bits),
		Method:   "greedy",
		Reads:    1,
		Duration: time.Since(start),
	}, nil
}
