package wb

import "math"

// Limit is one boundary record of the certified envelope: at Weight the
// allowed center of gravity range is [Forward, Aft]. Fields default to NaN,
// meaning not yet configured.
type Limit struct {
	Weight  float64
	Forward float64
	Aft     float64
}

// UnsetLimit returns a limit with all fields unset.
func UnsetLimit() Limit {
	nan := math.NaN()
	return Limit{Weight: nan, Forward: nan, Aft: nan}
}

// IsComplete reports whether all of the parameters have been filled for
// this limit.
func (l Limit) IsComplete() bool {
	return !math.IsNaN(l.Weight) && !math.IsNaN(l.Forward) && !math.IsNaN(l.Aft)
}

// slopeInterceptLimit computes a CG limit at the given weight. Because the
// envelope is a convex quadrilateral (most likely a rectangle or trapezoid),
// a slope-intercept line through the two boundary points (x = CG limit,
// y = weight) can be solved for the CG limit at any weight. When both points
// share the same CG value the boundary is a vertical line and that constant
// is returned directly.
func slopeInterceptLimit(weight, x1, y1, x2, y2 float64) float64 {
	if x1 == x2 {
		return x1
	}

	slope := (y2 - y1) / (x2 - x1)
	intercept := y1 - slope*x1
	return (weight - intercept) / slope
}
