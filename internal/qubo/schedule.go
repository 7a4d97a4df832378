package qubo

import (
	"fmt"

	"quantum-dispatch/internal/model"
)

// Objective coefficients for the charge/discharge decision problem.
// The linear term rewards charging on surplus hours (and penalizes charging
// on deficit hours); the pairwise term penalizes flipping the decision
// between adjacent hours.
const (
	SurplusWeight   = 0.1
	SmoothingWeight = 0.05
)

// BuildScheduleProgram formulates the battery decision problem over the
// given hourly window. Variable x_t = 1 means charge at hour t, 0 means
// discharge.
func BuildScheduleProgram(window model.EnergySeries) (*Program, error) {
	if len(window) == 0 {
		return nil, fmt.Errorf("empty series")
	}

	p := NewProgram("energy_schedule")
	for t := range window {
		if _, err := p.AddBinary(varName(t)); err != nil {
			return nil, err
		}
	}

	for t, pt := range window {
		if err := p.SetLinear(varName(t), -pt.SurplusMW()*SurplusWeight); err != nil {
			return nil, err
		}
		if t < len(window)-1 {
			if err := p.SetQuadratic(varName(t), varName(t+1), SmoothingWeight); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

func varName(t int) string { return fmt.Sprintf("x_%d", t) }
