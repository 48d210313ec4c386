package motionplan

// freeSpaceConstraint is a bounded box that admits every state and every segment.
type freeSpaceConstraint struct {
	space Space
}

func newFreeSpaceConstraint(dim int, low, high float64) *freeSpaceConstraint {
	bounds := make([]Bound, dim)
	for i := range bounds {
		bounds[i] = Bound{Low: low, High: high}
	}
	return &freeSpaceConstraint{space: Space{Dim: dim, Bounds: bounds}}
}

func (c *freeSpaceConstraint) Space() Space { return c.space }

func (c *freeSpaceConstraint) CheckConstraintType(State) ConstraintType { return Free }

func (c *freeSpaceConstraint) CheckCollision(State, State) bool { return true }

// boxBlockerConstraint is a bounded box with one axis-aligned rectangular NOENTRY region.
// CheckCollision discretizes the segment into fixed-size steps and rejects if any sampled point
// falls inside the blocked region.
type boxBlockerConstraint struct {
	space     Space
	blockLow  []float64
	blockHigh []float64
}

func newBoxBlockerConstraint(dim int, low, high float64, blockLow, blockHigh []float64) *boxBlockerConstraint {
	bounds := make([]Bound, dim)
	for i := range bounds {
		bounds[i] = Bound{Low: low, High: high}
	}
	return &boxBlockerConstraint{
		space:     Space{Dim: dim, Bounds: bounds},
		blockLow:  blockLow,
		blockHigh: blockHigh,
	}
}

func (c *boxBlockerConstraint) Space() Space { return c.space }

func (c *boxBlockerConstraint) inBlock(s State) bool {
	for i := 0; i < s.Dim(); i++ {
		if s.At(i) < c.blockLow[i] || s.At(i) > c.blockHigh[i] {
			return false
		}
	}
	return true
}

func (c *boxBlockerConstraint) CheckConstraintType(s State) ConstraintType {
	if c.inBlock(s) {
		return NoEntry
	}
	return Free
}

func (c *boxBlockerConstraint) CheckCollision(a, b State) bool {
	const steps = 10
	for i := 0; i <= steps; i++ {
		ratio := float64(i) / steps
		p := a.Add(b.Sub(a).Scale(ratio))
		if c.inBlock(p) {
			return false
		}
	}
	return true
}
