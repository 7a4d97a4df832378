// Package qubo builds binary quadratic programs and converts them to the
// QUBO form consumed by the sampler.
package qubo

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Program is a quadratic program over binary variables:
//
//	minimize  sum_i linear[i]*x_i + sum_{i<j} quadratic[i][j]*x_i*x_j + offset
//
// with x_i in {0, 1}.
type Program struct {
	name      string
	names     []string
	index     map[string]int
	linear    map[int]float64
	quadratic map[[2]int]float64
	offset    float64
}

func NewProgram(name string) *Program {
	return &Program{
		name:      name,
		index:     map[string]int{},
		linear:    map[int]float64{},
		quadratic: map[[2]int]float64{},
	}
}

func (p *Program) Name() string { return p.name }

// AddBinary registers a new binary variable and returns its index.
func (p *Program) AddBinary(name string) (int, error) {
	if _, exists := p.index[name]; exists {
		return 0, fmt.Errorf("variable %q already defined", name)
	}
	idx := len(p.names)
	p.names = append(p.names, name)
	p.index[name] = idx
	return idx, nil
}

func (p *Program) NumVars() int { return len(p.names) }

// VarNames returns variable names in declaration order.
func (p *Program) VarNames() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// SetLinear sets the linear coefficient of a variable.
func (p *Program) SetLinear(name string, coeff float64) error {
	idx, ok := p.index[name]
	if !ok {
		return fmt.Errorf("unknown variable %q", name)
	}
	p.linear[idx] = coeff
	return nil
}

// SetQuadratic sets the pairwise coefficient of two distinct variables.
// The pair is stored unordered.
func (p *Program) SetQuadratic(a, b string, coeff float64) error {
	ia, ok := p.index[a]
	if !ok {
		return fmt.Errorf("unknown variable %q", a)
	}
	ib, ok := p.index[b]
	if !ok {
		return fmt.Errorf("unknown variable %q", b)
	}
	if ia == ib {
		return fmt.Errorf("quadratic term requires distinct variables, got %q twice", a)
	}
	if ia > ib {
		ia, ib = ib, ia
	}
	p.quadratic[[2]int{ia, ib}] = coeff
	return nil
}

// SetOffset sets the constant term.
func (p *Program) SetOffset(offset float64) { p.offset = offset }

// QUBO is the solver-facing encoding: a symmetric coefficient matrix Q with
// linear terms on the diagonal and half of each pairwise coefficient on the
// off-diagonals, so that energy(x) = x'Qx + offset for binary x.
type QUBO struct {
	Q      *mat.SymDense
	Offset float64
}

// ToQUBO converts the program to QUBO form.
func (p *Program) ToQUBO() *QUBO {
	n := p.NumVars()
	q := mat.NewSymDense(n, nil)
	for idx, coeff := range p.linear {
		q.SetSym(idx, idx, coeff)
	}
	for pair, coeff := range p.quadratic {
		// x'Qx counts the symmetric off-diagonal entry twice.
		q.SetSym(pair[0], pair[1], coeff/2)
	}
	return &QUBO{Q: q, Offset: p.offset}
}

// NumVars returns the number of binary variables.
func (q *QUBO) NumVars() int {
	n, _ := q.Q.Dims()
	return n
}

// Energy evaluates the objective for a bit assignment.
func (q *QUBO) Energy(bits []int8) float64 {
	n := q.NumVars()
	e := q.Offset
	for i := 0; i < n; i++ {
		if bits[i] == 0 {
			continue
		}
		e += q.Q.At(i, i)
		for j := i + 1; j < n; j++ {
			if bits[j] != 0 {
				e += 2 * q.Q.At(i, j)
			}
		}
	}
	return e
}

// FlipDelta returns the energy change from flipping bit i.
func (q *QUBO) FlipDelta(bits []int8, i int) float64 {
	n := q.NumVars()
	// Contribution of x_i to the energy given the other bits.
	contrib := q.Q.At(i, i)
	for j := 0; j < n; j++ {
		if j != i && bits[j] != 0 {
			contrib += 2 * q.Q.At(i, j)
		}
	}
	if bits[i] == 0 {
		return contrib
	}
	return -contrib
}

// Pairs returns the nonzero pairwise terms sorted by index, mainly for
// debugging and tests.
func (p *Program) Pairs() [][2]int {
	out := make([][2]int, 0, len(p.quadratic))
	for pair := range p.quadratic {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
