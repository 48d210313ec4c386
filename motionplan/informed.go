package motionplan

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// informedDomain holds the fixed geometry of the prolate hyper-spheroid sampling transform: the
// rotation aligning the ellipsoid's major axis with the start→goal direction, the midpoint center
// (augmented with a trailing zero), and the direct start→goal distance cMin used both as a lower
// bound on cost and as the divisor in the rotation construction.
type informedDomain struct {
	dim      int
	rotation *mat.Dense // (dim+1) x (dim+1)
	center   []float64  // length dim+1
	cMin     float64
}

// newInformedDomain builds the informedDomain for the given start/goal pair. start.Dim() must
// equal goal.Dim() and be at least 2; start == goal (cMin == 0) is guarded against separately by
// the caller, since dividing by cMin here would be undefined.
func newInformedDomain(start, goal State) (*informedDomain, error) {
	if start.Dim() != goal.Dim() || start.Dim() < 2 {
		return nil, errors.Errorf(
			"informed rotation requires matching dimensions of at least 2, got start=%d goal=%d",
			start.Dim(), goal.Dim())
	}
	cMin := start.Dist(goal)
	if cMin == 0 {
		return nil, errors.New("informed rotation is undefined when start equals goal")
	}

	rotation, err := rotationToWorldFrame(start, goal, cMin)
	if err != nil {
		return nil, err
	}

	dim := start.Dim()
	center := make([]float64, dim+1)
	mid := start.Add(goal).Scale(0.5)
	copy(center, mid.Vals())
	// center[dim] stays 0, the augmenting trailing coordinate used to make the rotation square.

	return &informedDomain{dim: dim, rotation: rotation, center: center, cMin: cMin}, nil
}

// rotationToWorldFrame builds C = U*Λ*Vᵀ: a1 = (goal-start)/cMin augmented with a trailing zero;
// M = a1 * e1ᵀ (the (dim+1)x(dim+1) matrix whose first column is a1 and whose remaining columns
// are zero); SVD M = UΣVᵀ; Λ = diag(1, ..., 1, det(U), det(V)) preserves handedness while aligning
// the ellipsoid's major axis with a1.
func rotationToWorldFrame(start, goal State, cMin float64) (*mat.Dense, error) {
	dim := start.Dim()
	n := dim + 1

	a1 := goal.Sub(start).Scale(1 / cMin).Vals()
	a1 = append(a1, 0)

	mData := make([]float64, n*n)
	for i := 0; i < n; i++ {
		mData[i*n+0] = a1[i]
	}
	m := mat.NewDense(n, n, mData)

	var svd mat.SVD
	ok := svd.Factorize(m, mat.SVDFull)
	if !ok {
		return nil, errors.New("SVD factorization failed while constructing informed rotation")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	lambda := make([]float64, n)
	for i := range lambda {
		lambda[i] = 1
	}
	lambda[n-2] = mat.Det(&u)
	lambda[n-1] = mat.Det(&v)
	lambdaDiag := mat.NewDiagDense(n, lambda)

	var uLambda mat.Dense
	uLambda.Mul(&u, lambdaDiag)
	var c mat.Dense
	c.Mul(&uLambda, v.T())

	return &c, nil
}

// sample draws one point from the prolate hyper-spheroid whose foci are start and goal and whose
// transverse diameter is cBest: L = diag(cBest/2, r, r, ..., r) with
// r = sqrt(cBest^2 - cMin^2)/2; x drawn from the unit n-ball and augmented with a trailing zero;
// candidate = C*L*x + center; the first dim coordinates are returned.
func (d *informedDomain) sample(samp *sampler, cBest float64) (State, error) {
	n := d.dim + 1
	r := math.Sqrt(cBest*cBest-d.cMin*d.cMin) / 2

	diag := make([]float64, n)
	for i := range diag {
		diag[i] = r
	}
	diag[0] = cBest / 2
	l := mat.NewDiagDense(n, diag)

	ball, err := samp.unitNBall(d.dim)
	if err != nil {
		return State{}, err
	}
	x := ball.Vals()
	x = append(x, 0)
	xVec := mat.NewVecDense(n, x)

	var lx mat.VecDense
	lx.MulVec(l, xVec)
	var rotated mat.VecDense
	rotated.MulVec(d.rotation, &lx)

	out := make([]float64, d.dim)
	for i := 0; i < d.dim; i++ {
		out[i] = rotated.AtVec(i) + d.center[i]
	}
	return NewState(out...), nil
}
