package motionplan

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestNewInformedDomainRejectsLowDimension(t *testing.T) {
	_, err := newInformedDomain(NewState(0), NewState(1))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewInformedDomainRejectsMismatchedDims(t *testing.T) {
	_, err := newInformedDomain(NewState(0, 0), NewState(1, 1, 1))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewInformedDomainRejectsDegenerateStartGoal(t *testing.T) {
	_, err := newInformedDomain(NewState(1, 1), NewState(1, 1))
	test.That(t, err, test.ShouldNotBeNil)
}

// TestRotationAlignsMajorAxis checks the alignment of the ellipsoid's major axis with
// a1 = (goal-start)/cMin indirectly: with cBest barely above cMin the ellipsoid is thin, so its
// samples satisfy the focal-distance containment bound only if C puts the major axis along the
// start->goal direction.
func TestRotationAlignsMajorAxis(t *testing.T) {
	start := NewState(0, 0)
	goal := NewState(5, 0)

	d, err := newInformedDomain(start, goal)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.cMin, test.ShouldAlmostEqual, 5.0)

	// With cBest only slightly larger than cMin, the informed ellipsoid's minor axis is tiny, so
	// samples should cluster tightly around the straight line between start and goal.
	samp := newSampler(rand.New(rand.NewSource(3)))
	cBest := 5.01
	for i := 0; i < 200; i++ {
		s, err := d.sample(samp, cBest)
		test.That(t, err, test.ShouldBeNil)
		// every informed sample must satisfy dist(s,start)+dist(s,goal) <= cBest (+tolerance).
		test.That(t, s.Dist(start)+s.Dist(goal), test.ShouldBeLessThan, cBest+1e-6)
	}
}

// TestInformedSampleContainment checks ellipsoid containment broadly across a looser ellipsoid
// and higher dimension.
func TestInformedSampleContainment(t *testing.T) {
	start := NewState(-1, 0, 0)
	goal := NewState(1, 0, 0)

	d, err := newInformedDomain(start, goal)
	test.That(t, err, test.ShouldBeNil)

	samp := newSampler(rand.New(rand.NewSource(11)))
	cBest := 3.0
	for i := 0; i < 500; i++ {
		s, err := d.sample(samp, cBest)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, s.Dist(start)+s.Dist(goal), test.ShouldBeLessThan, cBest+1e-6)
	}
}

func TestRotationIsOrthonormal(t *testing.T) {
	start := NewState(2, -3, 0.5)
	goal := NewState(-1, 4, 2.0)

	rot, err := rotationToWorldFrame(start, goal, start.Dist(goal))
	test.That(t, err, test.ShouldBeNil)

	r, c := rot.Dims()
	test.That(t, r, test.ShouldEqual, 4)
	test.That(t, c, test.ShouldEqual, 4)

	// each column should be a unit vector (rotation matrices preserve length)
	for j := 0; j < c; j++ {
		sumSq := 0.0
		for i := 0; i < r; i++ {
			v := rot.At(i, j)
			sumSq += v * v
		}
		test.That(t, math.Abs(sumSq-1.0), test.ShouldBeLessThan, 1e-6)
	}
}
