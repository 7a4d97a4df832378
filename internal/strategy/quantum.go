package strategy

import (
	"context"
	"fmt"

	"quantum-dispatch/internal/anneal"
	"quantum-dispatch/internal/model"
	"quantum-dispatch/internal/qubo"
)

// QuantumStrategy formulates the window as a QUBO and solves it with the
// quantum-inspired sampler.
type QuantumStrategy struct {
	sampler *anneal.Sampler
}

func NewQuantumStrategy(cfg anneal.Config) (*QuantumStrategy, error) {
	sampler, err := anneal.New(cfg)
	if err != nil {
		return nil, err
	}
	return &QuantumStrategy{sampler: sampler}, nil
}

func (s *QuantumStrategy) Name() string { return "quantum" }

func (s *QuantumStrategy) Plan(ctx context.Context, window model.EnergySeries) (*Plan, error) {
	prog, err := qubo.BuildScheduleProgram(window)
	if err != nil {
		return nil, fmt.Errorf("build problem: %w", err)
	}

	res, err := s.sampler.Solve(ctx, prog.ToQUBO())
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	return &Plan{
		Bits:     res.Best.Bits,
		Energy:   res.Best.Energy,
		Method:   res.Method,
		Reads:    res.Reads,
		Sweeps:   res.Sweeps,
		Duration: res.Duration,
	}, nil
}
