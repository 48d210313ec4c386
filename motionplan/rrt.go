package motionplan

import (
	"context"
	"math/rand"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// plannerBase is the shared storage every planner embeds: the configured dimension, the
// constraint collaborator, and the most recent solve's result.
type plannerBase struct {
	dim        int
	constraint Constraint
	logger     golog.Logger

	resultPath []State
	resultCost float64
	resultTree *tree
}

// Dim returns the configured configuration-space dimension.
func (p *plannerBase) Dim() int { return p.dim }

// Path returns the most recent Solve's reconstructed path, or nil if the last Solve failed or
// Solve has not yet been called.
func (p *plannerBase) Path() []State { return p.resultPath }

// ResultCost returns the cumulative length of the most recent Solve's path.
func (p *plannerBase) ResultCost() float64 { return p.resultCost }

// Tree returns a read-only snapshot of the tree built by the most recent Solve.
func (p *plannerBase) Tree() []TreeNode {
	if p.resultTree == nil {
		return nil
	}
	return p.resultTree.snapshot()
}

func (p *plannerBase) clearResult() {
	p.resultPath = nil
	p.resultCost = 0
	p.resultTree = nil
}

// freshRand builds a new *rand.Rand seeded from the current time: randomness is acquired fresh
// per Solve invocation and not retained afterward. Determinism is left to the caller (e.g. by
// driving the lower-level sampler/steer functions directly with an injected seed instead of
// calling Solve).
func freshRand() *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RRT is the baseline rapidly-exploring random tree planner: uniform/goal-biased sampling,
// nearest-neighbor steering, and immediate termination on first contact with the goal region.
type RRT struct {
	plannerBase
	opts *RRTOptions
}

// NewRRT constructs an RRT planner for the given dimension with default options. logger may be
// nil, in which case a development logger is used.
func NewRRT(dim int, logger golog.Logger) (*RRT, error) {
	opts := newDefaultRRTOptions(dim)
	return NewRRTWithOptions(opts, logger)
}

// NewRRTWithOptions constructs an RRT planner from explicit options, validating them immediately.
func NewRRTWithOptions(opts *RRTOptions, logger golog.Logger) (*RRT, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = golog.NewDevelopmentLogger("motionplan")
	}
	return &RRT{
		plannerBase: plannerBase{dim: opts.Dim, logger: logger},
		opts:        opts,
	}, nil
}

// SetMaxSamplingNum updates the iteration budget.
func (p *RRT) SetMaxSamplingNum(n int) { p.opts.MaxSamplingNum = n }

// SetGoalSamplingRate updates the goal-sampling probability, validating the [0, 1] range.
func (p *RRT) SetGoalSamplingRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return ErrInvalidGoalSamplingRate
	}
	p.opts.GoalSamplingRate = rate
	return nil
}

// SetExpandDist updates the steering step size.
func (p *RRT) SetExpandDist(d float64) error {
	if d <= 0 {
		return ErrInvalidExpandDist
	}
	p.opts.ExpandDist = d
	return nil
}

// SetConstraint sets the constraint collaborator used by subsequent Solve calls.
func (p *RRT) SetConstraint(c Constraint) { p.constraint = c }

// Solve runs the baseline RRT algorithm. It returns true on success; a failed Solve clears the
// prior result. Re-entering Solve on the same planner resets the tree and result.
func (p *RRT) Solve(ctx context.Context, start, goal State) (bool, error) {
	p.clearResult()

	if start.Dim() != p.dim || goal.Dim() != p.dim {
		return false, ErrDimensionMismatch
	}
	if p.constraint == nil {
		return false, errors.New("RRT.Solve: no constraint configured")
	}

	if start.Dist(goal) == 0 {
		t := newTree(start)
		t.insert(goal, 0, 0)
		p.resultTree = t
		p.resultPath = []State{start, goal}
		p.resultCost = 0
		return true, nil
	}

	rng := freshRand()
	samp := newSampler(rng)
	space := p.constraint.Space()

	t := newTree(start)

	for i := 0; i < p.opts.MaxSamplingNum; i++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		var target State
		if samp.bernoulliGoal(p.opts.GoalSamplingRate) {
			target = goal
		} else {
			target = samp.uniformInBounds(space)
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
		newIdx := t.insert(newState, srcIdx, src.cost+step)

		if newState.Dist(goal) <= p.opts.ExpandDist {
			newNode := t.at(newIdx)
			t.insert(goal, newIdx, newNode.cost+newNode.state.Dist(goal))
			p.resultTree = t
			p.resultPath = t.path(t.len() - 1)
			p.resultCost = sumPathCost(p.resultPath)
			return true, nil
		}
	}

	p.logger.Warnw("RRT exhausted sampling budget without reaching the goal", "max_sampling_num", p.opts.MaxSamplingNum)
	return false, nil
}

// sumPathCost re-derives cumulative path length from consecutive states, used so RRT's
// ResultCost is meaningful without separately tracking a terminal node's cost field (the
// terminal goal node's own cost already equals this sum; this is a defensive recomputation from
// the reconstructed path so Path() and ResultCost() can never disagree).
func sumPathCost(path []State) float64 {
	cost := 0.0
	for i := 1; i < len(path); i++ {
		cost += path[i-1].Dist(path[i])
	}
	return cost
}
