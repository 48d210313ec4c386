package motionplan

import "errors"

// Sentinel errors. The configuration errors surface at configuration time (constructor or
// setter); ErrDimensionMismatch is returned from Solve and ErrZeroDimensionBall from unitNBall.
var (
	// ErrInvalidGoalSamplingRate is returned when a goal-sampling rate outside [0, 1] is supplied.
	ErrInvalidGoalSamplingRate = errors.New("goal sampling rate must be within [0, 1]")

	// ErrInvalidExpandDist is returned when expand_dist is not strictly positive.
	ErrInvalidExpandDist = errors.New("expand distance must be positive")

	// ErrInvalidNeighborhoodRadius is returned when the RRT* neighborhood coefficient R is not
	// strictly positive.
	ErrInvalidNeighborhoodRadius = errors.New("neighborhood radius coefficient must be positive")

	// ErrInvalidGoalRegionRadius is returned when the goal-region radius is not strictly positive.
	ErrInvalidGoalRegionRadius = errors.New("goal region radius must be positive")

	// ErrInvalidDimension is returned when a planner is constructed with dim < 1.
	ErrInvalidDimension = errors.New("dimension must be at least 1")

	// ErrZeroDimensionBall is returned by unitNBall when asked to sample a zero-dimension ball.
	ErrZeroDimensionBall = errors.New("cannot sample a zero-dimension unit ball")

	// ErrDimensionMismatch is returned when start and goal states disagree on dimension, or
	// disagree with the planner's configured dimension.
	ErrDimensionMismatch = errors.New("start and goal states must share the planner's dimension")

	// ErrNoSolution names planning failure due to sampling budget exhaustion. Solve itself never
	// returns this as an error value (it reports failure via its boolean return), but it is exposed
	// so callers wrapping Solve can test against a stable sentinel if they choose to surface it as
	// an error further up their own call stack.
	ErrNoSolution = errors.New("no solution found within the sampling budget")
)
