package strategy

import (
	"context"
	"time"

	"quantum-dispatch/internal/model"
)

// Plan is a charge/discharge decision per hour of the window, plus solver
// bookkeeping carried into the response metrics.
type Plan struct {
	Bits   []int8  // 1 = charge, 0 = discharge
	Energy float64 // objective value of the plan

	Method   string
	Reads    int
	Sweeps   int
	Duration time.Duration
}

// Strategy plans a decision per hour for a bounded window.
type Strategy interface {
	Name() string
	Plan(ctx context.Context, window model.EnergySeries) (*Plan, error)
}
