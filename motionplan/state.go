package motionplan

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// epsilon is the default tolerance used for State equality and other near-equality checks
// throughout the planner.
const epsilon = 1e-6

// State is an n-dimensional vector of reals with value semantics. It is the configuration-space
// point type shared by every component of the planner: samples, steered states, and tree nodes all
// carry a State.
type State struct {
	vals []float64
}

// NewState builds a State from the given coordinates. The slice is copied, so callers may reuse
// or mutate their backing array afterward.
func NewState(vals ...float64) State {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	return State{vals: cp}
}

// Dim returns the number of coordinates in the State.
func (s State) Dim() int {
	return len(s.vals)
}

// At returns the i-th coordinate.
func (s State) At(i int) float64 {
	return s.vals[i]
}

// Vals returns a defensive copy of the underlying coordinates.
func (s State) Vals() []float64 {
	cp := make([]float64, len(s.vals))
	copy(cp, s.vals)
	return cp
}

func (s State) mustMatch(o State) error {
	if s.Dim() != o.Dim() {
		return errors.Errorf("state dimension mismatch: %d vs %d", s.Dim(), o.Dim())
	}
	return nil
}

// Add returns s + o, component-wise.
func (s State) Add(o State) State {
	if err := s.mustMatch(o); err != nil {
		panic(err)
	}
	out := make([]float64, s.Dim())
	for i := range out {
		out[i] = s.vals[i] + o.vals[i]
	}
	return State{vals: out}
}

// Sub returns s - o, component-wise.
func (s State) Sub(o State) State {
	if err := s.mustMatch(o); err != nil {
		panic(err)
	}
	out := make([]float64, s.Dim())
	for i := range out {
		out[i] = s.vals[i] - o.vals[i]
	}
	return State{vals: out}
}

// Scale returns s * c.
func (s State) Scale(c float64) State {
	out := make([]float64, s.Dim())
	for i := range out {
		out[i] = s.vals[i] * c
	}
	return State{vals: out}
}

// Div returns s / c.
func (s State) Div(c float64) State {
	return s.Scale(1 / c)
}

// Norm returns the Euclidean (L2) norm of s.
func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s.vals {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Dist returns the Euclidean distance between s and o.
func (s State) Dist(o State) float64 {
	return s.Sub(o).Norm()
}

// Equal reports whether s and o have the same dimension and agree coordinate-by-coordinate to
// within epsilon (absolute or relative tolerance, via floats.EqualApprox).
func (s State) Equal(o State) bool {
	if s.Dim() != o.Dim() {
		return false
	}
	return floats.EqualApprox(s.vals, o.vals, epsilon)
}
