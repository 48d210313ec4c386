package motionplan

import (
	"context"
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// InformedRRTStar is the asymptotically-optimal planner: RRT* parent selection and rewiring, with
// sampling narrowed to the informed prolate hyper-spheroid once any goal-region node exists.
type InformedRRTStar struct {
	plannerBase
	opts *InformedRRTStarOptions
}

// NewInformedRRTStar constructs an Informed RRT* planner for the given dimension with default
// options.
func NewInformedRRTStar(dim int, logger golog.Logger) (*InformedRRTStar, error) {
	opts := newDefaultInformedRRTStarOptions(dim)
	return NewInformedRRTStarWithOptions(opts, logger)
}

// NewInformedRRTStarWithOptions constructs an Informed RRT* planner from explicit options,
// validating them immediately.
func NewInformedRRTStarWithOptions(opts *InformedRRTStarOptions, logger golog.Logger) (*InformedRRTStar, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = golog.NewDevelopmentLogger("motionplan")
	}
	return &InformedRRTStar{
		plannerBase: plannerBase{dim: opts.Dim, logger: logger},
		opts:        opts,
	}, nil
}

// SetMaxSamplingNum updates the iteration budget.
func (p *InformedRRTStar) SetMaxSamplingNum(n int) { p.opts.MaxSamplingNum = n }

// SetGoalSamplingRate updates the goal-sampling probability, validating the [0, 1] range.
func (p *InformedRRTStar) SetGoalSamplingRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return ErrInvalidGoalSamplingRate
	}
	p.opts.GoalSamplingRate = rate
	return nil
}

// SetExpandDist updates the steering step size.
func (p *InformedRRTStar) SetExpandDist(d float64) error {
	if d <= 0 {
		return ErrInvalidExpandDist
	}
	p.opts.ExpandDist = d
	return nil
}

// SetR updates the neighborhood radius coefficient.
func (p *InformedRRTStar) SetR(r float64) error {
	if r <= 0 {
		return ErrInvalidNeighborhoodRadius
	}
	p.opts.R = r
	return nil
}

// SetGoalRegionRadius updates the goal-region ball radius.
func (p *InformedRRTStar) SetGoalRegionRadius(r float64) error {
	if r <= 0 {
		return ErrInvalidGoalRegionRadius
	}
	p.opts.GoalRegionRadius = r
	return nil
}

// SetConstraint sets the constraint collaborator used by subsequent Solve calls.
func (p *InformedRRTStar) SetConstraint(c Constraint) { p.constraint = c }

// Solve runs Informed RRT* for exactly MaxSamplingNum iterations (no early termination on
// reaching the goal -- the algorithm keeps refining), then reconstructs the lowest-cost path to
// any node within ExpandDist of the goal.
func (p *InformedRRTStar) Solve(ctx context.Context, start, goal State) (bool, error) {
	p.clearResult()

	if start.Dim() != p.dim || goal.Dim() != p.dim {
		return false, ErrDimensionMismatch
	}
	if p.constraint == nil {
		return false, errors.New("InformedRRTStar.Solve: no constraint configured")
	}

	// start == goal makes cMin == 0, which the informed rotation divides by. Short-circuit to the
	// trivial path before any informed-domain construction is attempted.
	if start.Dist(goal) == 0 {
		t := newTree(start)
		p.resultTree = t
		p.resultPath = []State{start, goal}
		p.resultCost = 0
		return true, nil
	}

	rng := freshRand()
	samp := newSampler(rng)
	space := p.constraint.Space()

	t := newTree(start)
	var domain *informedDomain
	goalRegion := make([]int, 0)

	for i := 0; i < p.opts.MaxSamplingNum; i++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		cBest := math.Inf(1)
		for _, idx := range goalRegion {
			if c := t.at(idx).cost; c < cBest {
				cBest = c
			}
		}

		var target State
		if samp.bernoulliGoal(p.opts.GoalSamplingRate) {
			target = goal
		} else {
			if math.IsInf(cBest, 1) {
				target = samp.uniformInBounds(space)
			} else {
				if domain == nil {
					var err error
					domain, err = newInformedDomain(start, goal)
					if err != nil {
						return false, err
					}
				}
				var err error
				target, err = domain.sample(samp, cBest)
				if err != nil {
					return false, err
				}
			}
			if p.constraint.CheckConstraintType(target) == NoEntry {
				continue
			}
		}

		srcIdx := nearest(target, t)
		src := t.at(srcIdx)
		newState, step := steer(src.state, target, p.opts.ExpandDist)

		if !p.constraint.CheckCollision(src.state, newState) {
			continue
		}

		nearIdx := near(newState, t, p.opts.R, p.dim)
		parentIdx, cost := chooseParent(p.constraint, t, newState, srcIdx, src.cost+step, nearIdx)
		newIdx := t.insert(newState, parentIdx, cost)

		rewire(p.constraint, t, newIdx, nearIdx)

		if newState.Dist(goal) < p.opts.GoalRegionRadius {
			goalRegion = append(goalRegion, newIdx)
		}
	}

	bestIdx, bestCost, found := bestGoalCandidate(t, goal, p.opts.ExpandDist)
	if !found {
		p.logger.Warnw("InformedRRTStar exhausted sampling budget without a goal-adjacent node", "max_sampling_num", p.opts.MaxSamplingNum)
		return false, nil
	}

	bestState := t.at(bestIdx).state
	p.resultCost = bestCost + bestState.Dist(goal)
	path := t.path(bestIdx)
	if !bestState.Equal(goal) {
		path = append(path, goal)
	}

	p.resultTree = t
	p.resultPath = path
	return true, nil
}

// chooseParent selects, among nearIdx, the parent minimizing tree[i].cost + dist(tree[i].state,
// candidate) subject to collision-feasibility. If no neighbor qualifies, the candidate's original
// steering parent/cost (srcIdx, steerCost) is returned unchanged.
func chooseParent(c Constraint, t *tree, candidate State, srcIdx int, steerCost float64, nearIdx []int) (int, float64) {
	bestIdx := srcIdx
	bestCost := steerCost
	minCost := math.Inf(1)
	for _, idx := range nearIdx {
		n := t.at(idx)
		cost := n.cost + n.state.Dist(candidate)
		if cost < minCost && c.CheckCollision(candidate, n.state) {
			minCost = cost
			bestIdx = idx
			bestCost = cost
		}
	}
	return bestIdx, bestCost
}

// rewire reassigns the parent of any near neighbor that newIdx offers a cheaper path to.
// Descendant costs are not cascaded; this is a known deviation from textbook RRT*, which would
// propagate the cost reduction down the subtree rooted at each rewired node.
func rewire(c Constraint, t *tree, newIdx int, nearIdx []int) {
	newNode := t.at(newIdx)
	for _, idx := range nearIdx {
		if idx == newIdx {
			continue
		}
		n := t.at(idx)
		cost := newNode.cost + newNode.state.Dist(n.state)
		if cost < n.cost && c.CheckCollision(newNode.state, n.state) {
			t.setParent(idx, newIdx, cost)
		}
	}
}

// bestGoalCandidate selects, among nodes within expandDist of goal, the one with minimum cost.
func bestGoalCandidate(t *tree, goal State, expandDist float64) (idx int, cost float64, found bool) {
	minCost := math.Inf(1)
	best := -1
	for i := 0; i < t.len(); i++ {
		n := t.at(i)
		if n.state.Dist(goal) < expandDist && n.cost < minCost {
			best = i
			minCost = n.cost
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, minCost, true
}
