package motionplan

import "math"

// steer advances from src toward dst by at most expandDist along the straight line between them.
//
// When dst is already within expandDist, steer returns dst directly (cost increment is the exact
// remaining distance). Otherwise it computes exact straight-line advancement in arbitrary
// dimension via a recursive spherical-to-Cartesian decomposition: iterating axis index i from
// dim-1 down to 1, each step peels off one trailing coordinate via a planar rotation (atan2 of
// the per-axis delta against the distance accumulated over the lower axes), then folds the
// remaining radius into axis 0.
//
// steer returns the new state and the distance actually advanced (the cost increment for the
// caller to add to src's cost).
func steer(src, dst State, expandDist float64) (State, float64) {
	d := src.Dist(dst)
	if d < expandDist {
		return dst, d
	}

	out := src.Vals()
	srcV := src.Vals()
	dstV := dst.Vals()
	dim := len(out)

	r := expandDist
	for i := dim - 1; i >= 1; i-- {
		delta := dstV[i] - srcV[i]

		var lowerDist float64
		if i > 1 {
			lowerDist = dist(srcV[:i], dstV[:i])
		} else {
			lowerDist = dstV[0] - srcV[0]
		}

		theta := math.Atan2(delta, lowerDist)
		out[i] += r * math.Sin(theta)
		r *= math.Cos(theta)
	}
	out[0] += r

	return NewState(out...), expandDist
}

// dist is the Euclidean distance between two same-length coordinate prefixes, used by steer's
// recursive lower_dist computation without allocating intermediate States.
func dist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
