// Package anneal samples low-energy solutions of a QUBO with a
// quantum-inspired simulated annealer. Small problems are solved exactly by
// enumeration so the common 8-hour window is deterministic.
package anneal

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"quantum-dispatch/internal/qubo"
)

const (
	MethodExact     = "exact"
	MethodAnnealing = "simulated_annealing"
)

// Sample is one candidate assignment with its objective value.
type Sample struct {
	Bits   []int8
	Energy float64
}

// Result is the outcome of a solve.
type Result struct {
	Best     Sample
	Method   string
	Reads    int
	Sweeps   int
	Duration time.Duration
}

// Config controls the sampler.
type Config struct {
	// Reads is the number of independent annealing restarts.
	Reads int
	// Sweeps is the number of full-variable sweeps per read.
	Sweeps int
	// BetaMin/BetaMax are the endpoints of the geometric inverse-temperature
	// schedule.
	BetaMin float64
	BetaMax float64
	// ExactCutoff enables exhaustive enumeration when the variable count is
	// at or below this value. Set negative to always anneal.
	ExactCutoff int
	// Seed makes sampling reproducible. Zero picks a time-based seed.
	Seed int64
}

func (c *Config) SetDefaults() {
	if c.Reads == 0 {
		c.Reads = 50
	}
	if c.Sweeps == 0 {
		c.Sweeps = 100
	}
	if c.BetaMin == 0 {
		c.BetaMin = 0.1
	}
	if c.BetaMax == 0 {
		c.BetaMax = 10
	}
	if c.ExactCutoff == 0 {
		c.ExactCutoff = 20
	}
}

func (c Config) Validate() error {
	if c.Reads < 1 {
		return errors.New("reads must be >= 1")
	}
	if c.Sweeps < 1 {
		return errors.New("sweeps must be >= 1")
	}
	if c.BetaMin <= 0 || c.BetaMax < c.BetaMin {
		return errors.New("beta schedule must satisfy 0 < beta_min <= beta_max")
	}
	return nil
}

// Sampler solves QUBOs.
type Sampler struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config) (*Sampler, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{cfg: cfg, rng: rand.New(rand.NewSource(seed))}, nil
}

// Solve returns the best sample found for the QUBO.
func (s *Sampler) Solve(ctx context.Context, q *qubo.QUBO) (*Result, error) {
	n := q.NumVars()
	if n == 0 {
		return nil, errors.New("qubo has no variables")
	}

	start := time.Now()
	if n <= s.cfg.ExactCutoff {
		best := solveExact(q)
		return &Result{
			Best:     best,
			Method:   MethodExact,
			Reads:    1,
			Sweeps:   0,
			Duration: time.Since(start),
		}, nil
	}

	best, err := s.anneal(ctx, q)
	if err != nil {
		return nil, err
	}
	return &Result{
		Best:     best,
		Method:   MethodAnnealing,
		Reads:    s.cfg.Reads,
		Sweeps:   s.cfg.Sweeps,
		Duration: time.Since(start),
	}, nil
}

// solveExact enumerates all assignments. Ties break toward the lowest
// bit pattern so results are stable.
func solveExact(q *qubo.QUBO) Sample {
	n := q.NumVars()
	bits := make([]int8, n)
	best := Sample{Bits: make([]int8, n), Energy: q.Energy(bits)}

	for mask := uint64(1); mask < uint64(1)<<n; mask++ {
		for i := 0; i < n; i++ {
			bits[i] = int8((mask >> i) & 1)
		}
		e := q.Energy(bits)
		if e < best.Energy {
			best.Energy = e
			copy(best.Bits, bits)
		}
	}
	return best
}

func (s *Sampler) anneal(ctx context.Context, q *qubo.QUBO) (Sample, error) {
	n := q.NumVars()
	best := Sample{Bits: make([]int8, n), Energy: math.Inf(1)}

	// Geometric schedule from BetaMin to BetaMax across sweeps.
	ratio := 1.0
	if s.cfg.Sweeps > 1 {
		ratio = math.Pow(s.cfg.BetaMax/s.cfg.BetaMin, 1/float64(s.cfg.Sweeps-1))
	}

	bits := make([]int8, n)
	for read := 0; read < s.cfg.Reads; read++ {
		if err := ctx.Err(); err != nil {
			return Sample{}, err
		}

		for i := range bits {
			bits[i] = int8(s.rng.Intn(2))
		}
		energy := q.Energy(bits)

		beta := s.cfg.BetaMin
		for sweep := 0; sweep < s.cfg.Sweeps; sweep++ {
			for i := 0; i < n; i++ {
				delta := q.FlipDelta(bits, i)
				if delta <= 0 || s.rng.Float64() < math.Exp(-beta*delta) {
					bits[i] ^= 1
					energy += delta
				}
			}
			beta *= ratio
		}

		if energy < best.Energy {
			best.Energy = energy
			copy(best.Bits, bits)
		}
	}

	return best, nil
}
