package motionplan

// ConstraintType classifies a single State against the admissible region of the configuration space.
type ConstraintType int

const (
	// Free means the state is admissible.
	Free ConstraintType = iota
	// NoEntry means the state must never be visited or passed through.
	NoEntry
)

// Bound is the inclusive [Low, High] range of a single axis.
type Bound struct {
	Low, High float64
}

// Space describes the bounded configuration space a Constraint is defined over.
type Space struct {
	Dim    int
	Bounds []Bound
}

// Bound returns the [low, high] range for the given zero-based axis index.
func (s Space) Bound(axis int) Bound {
	return s.Bounds[axis]
}

// Constraint is the external collaborator consumed by both planners: it owns the space bounds,
// classifies individual states, and judges whether a straight-line segment between two states is
// admissible end-to-end. Production planning code never reaches past this interface into whatever
// collision geometry or map representation backs a concrete implementation.
type Constraint interface {
	// Space returns the bounded configuration space this constraint is defined over.
	Space() Space
	// CheckConstraintType classifies a single state.
	CheckConstraintType(s State) ConstraintType
	// CheckCollision reports whether the segment from a to b is entirely admissible.
	CheckCollision(a, b State) bool
}
