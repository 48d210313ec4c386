package motionplan

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// default values for planner options, applied at construction time when no override is given.
const (
	// defaultMaxSamplingNum is the number of planner iterations attempted before giving up.
	defaultMaxSamplingNum = 20000

	// defaultGoalSamplingRate is the probability, per iteration, of sampling the goal directly
	// instead of drawing from the configured sampling domain.
	defaultGoalSamplingRate = 0.05

	// defaultExpandDist is the fixed per-iteration steering step size.
	defaultExpandDist = 1.0

	// defaultNeighborhoodRadius is the RRT* neighborhood radius coefficient R.
	defaultNeighborhoodRadius = 50.0

	// defaultGoalRegionRadius is the radius of the goal-region ball used to register
	// goal-candidate nodes during Informed RRT* iteration.
	defaultGoalRegionRadius = 1.0

	// parallelNeighborThreshold is the tree size above which the near() radius search is
	// evaluated across worker goroutines rather than in a single linear scan.
	parallelNeighborThreshold = 1000
)

// RRTOptions configures a baseline RRT planner. Values are validated by NewRRT and by the
// individual setters; an invalid value is rejected immediately rather than accepted and
// surfaced later from Solve.
type RRTOptions struct {
	// Dim is the configuration space dimension.
	Dim int `json:"dim"`
	// MaxSamplingNum is the iteration budget before Solve gives up.
	MaxSamplingNum int `json:"max_sampling_num"`
	// GoalSamplingRate is the per-iteration probability of sampling the goal.
	GoalSamplingRate float64 `json:"goal_sampling_rate"`
	// ExpandDist is the fixed steering step size.
	ExpandDist float64 `json:"expand_dist"`
}

// newDefaultRRTOptions returns options for the given dimension with every other field at its
// default value.
func newDefaultRRTOptions(dim int) *RRTOptions {
	return &RRTOptions{
		Dim:              dim,
		MaxSamplingNum:   defaultMaxSamplingNum,
		GoalSamplingRate: defaultGoalSamplingRate,
		ExpandDist:       defaultExpandDist,
	}
}

func (o *RRTOptions) validate() error {
	var err error
	if o.Dim < 1 {
		err = multierr.Append(err, ErrInvalidDimension)
	}
	if o.GoalSamplingRate < 0 || o.GoalSamplingRate > 1 {
		err = multierr.Append(err, ErrInvalidGoalSamplingRate)
	}
	if o.ExpandDist <= 0 {
		err = multierr.Append(err, ErrInvalidExpandDist)
	}
	if err != nil {
		return errors.Wrap(err, "invalid RRTOptions")
	}
	return nil
}

// InformedRRTStarOptions configures an Informed RRT* planner. See RRTOptions for the shared
// fields; R and GoalRegionRadius are additional to the RRT* variant.
type InformedRRTStarOptions struct {
	Dim              int     `json:"dim"`
	MaxSamplingNum   int     `json:"max_sampling_num"`
	GoalSamplingRate float64 `json:"goal_sampling_rate"`
	ExpandDist       float64 `json:"expand_dist"`
	// R is the neighborhood radius coefficient used by near(): r = R * (log N / N)^(1/dim).
	R float64 `json:"neighborhood_radius_coefficient"`
	// GoalRegionRadius is the radius of the ball around goal used to register goal candidates.
	GoalRegionRadius float64 `json:"goal_region_radius"`
}

func newDefaultInformedRRTStarOptions(dim int) *InformedRRTStarOptions {
	return &InformedRRTStarOptions{
		Dim:              dim,
		MaxSamplingNum:   defaultMaxSamplingNum,
		GoalSamplingRate: defaultGoalSamplingRate,
		ExpandDist:       defaultExpandDist,
		R:                defaultNeighborhoodRadius,
		GoalRegionRadius: defaultGoalRegionRadius,
	}
}

func (o *InformedRRTStarOptions) validate() error {
	var err error
	if o.Dim < 1 {
		err = multierr.Append(err, ErrInvalidDimension)
	}
	if o.GoalSamplingRate < 0 || o.GoalSamplingRate > 1 {
		err = multierr.Append(err, ErrInvalidGoalSamplingRate)
	}
	if o.ExpandDist <= 0 {
		err = multierr.Append(err, ErrInvalidExpandDist)
	}
	if o.R <= 0 {
		err = multierr.Append(err, ErrInvalidNeighborhoodRadius)
	}
	if o.GoalRegionRadius <= 0 {
		err = multierr.Append(err, ErrInvalidGoalRegionRadius)
	}
	if err != nil {
		return errors.Wrap(err, "invalid InformedRRTStarOptions")
	}
	return nil
}
