package motionplan

import (
	"math"
	"math/rand"
)

// sampler draws candidate states for the planning loop. A fresh sampler is constructed per Solve
// call and holds no state beyond its *rand.Rand.
type sampler struct {
	rng *rand.Rand
}

func newSampler(rng *rand.Rand) *sampler {
	return &sampler{rng: rng}
}

// uniformInBounds draws each coordinate independently and uniformly from the axis bound given by
// space.
func (s *sampler) uniformInBounds(space Space) State {
	vals := make([]float64, space.Dim)
	for i := 0; i < space.Dim; i++ {
		b := space.Bound(i)
		vals[i] = b.Low + s.rng.Float64()*(b.High-b.Low)
	}
	return NewState(vals...)
}

// bernoulliGoal reports true with probability rate. rate must already be validated to lie within
// [0, 1]; callers enforce that at configuration time.
func (s *sampler) bernoulliGoal(rate float64) bool {
	return rate >= s.rng.Float64()
}

// unitNBall draws a sample uniformly from the unit n-ball in dim dimensions: a standard normal
// vector normalized to a random unit vector, then scaled by u^(1/dim) for u ~ Uniform(0,1). dim
// == 0 fails with ErrZeroDimensionBall.
func (s *sampler) unitNBall(dim int) (State, error) {
	if dim == 0 {
		return State{}, ErrZeroDimensionBall
	}
	var x State
	for {
		vals := make([]float64, dim)
		for i := range vals {
			vals[i] = s.rng.NormFloat64()
		}
		x = NewState(vals...)
		if x.Norm() != 0 {
			break
		}
	}
	x = x.Div(x.Norm())
	u := s.rng.Float64()
	r := math.Pow(u, 1.0/float64(dim))
	return x.Scale(r), nil
}
