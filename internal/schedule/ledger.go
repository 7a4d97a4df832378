package schedule

import (
	"time"

	"quantum-dispatch/internal/model"
)

// Row is one scheduled hour.
type Row struct {
	Index int

	Hour   string
	Action model.Action

	// AmountMW is the dispatched magnitude, capped at 80% of the battery
	// capacity. Kept as a whole number to match the response shape.
	AmountMW int

	EfficiencyPct int

	// GridBalanceMW is the hour's surplus (negative = deficit).
	GridBalanceMW int

	// Decision is the raw solver bit as a float (1 = charge).
	Decision float64

	SOCStart float64
	SOCEnd   float64
}

// Recommendation is an actionable note derived from the schedule.
type Recommendation struct {
	Hour    string
	Type    string // "excess" or "deficit"
	Message string
}

// SolverMetrics describes the solve that produced the schedule.
type SolverMetrics struct {
	Qubits        int
	Gates         int
	Depth         int
	ExecutionTime float64 // seconds
	Fidelity      float64
	Algorithm     string
	Iterations    int
}

// Summary holds window-level headline figures. CostSaving and
// CarbonReduction are illustrative and carry a small randomized component.
type Summary struct {
	TotalOptimizationPct int
	CostSavingUSD        int
	CarbonReductionKg    int
	EfficiencyPct        int
}

// Result is the full outcome of one optimization run.
type Result struct {
	Schedule        []Row
	Recommendations []Recommendation
	Metrics         SolverMetrics
	Summary         Summary

	PlanEnergy float64
	SolvedAt   time.Time
}
