package numeric

import "math"

// SameNode reports whether two 1-D node coordinates refer to the same
// point within NumTol. Used for non-nested duplicate detection and for
// dynamic-construction's x -> index translation.
func SameNode(a, b float64) bool {
	return math.Abs(a-b) <= NumTol
}

// SamePoint reports whether two d-dimensional coordinate vectors refer to
// the same point within NumTol on every axis.
func SamePoint(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SameNode(a[i], b[i]) {
			return false
		}
	}
	return true
}

// NearestIndex returns the index of the entry in nodes closest to x, and
// whether that entry is within NumTol of x.
func NearestIndex(nodes []float64, x float64) (idx int, ok bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, v := range nodes {
		d := math.Abs(v - x)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, best >= 0 && bestDist <= NumTol
}
