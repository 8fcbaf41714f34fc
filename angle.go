package rotframe

import "math"

// NormalizeAngle wraps an angle in degrees into the range [0,360)
func NormalizeAngle(a float64) float64 {
	return math.Mod(math.Mod(a, 360)+360, 360)
}

// CircularDistance returns the shorter arc length in degrees between two
// angles on the 360 degree periodic domain.  Both angles must already be in
// the range [0,360), see NormalizeAngle.  The result is in the range [0,180]
// and symmetric in its arguments.
func CircularDistance(a, b float64) float64 {

	d := math.Abs(a - b)

	if d > 180 {
		d = 360 - d
	}

	return d
}

// Wedge holds a detection angle folded into the 0-45 degree wedge using the
// four fold and mirror symmetry of an oriented rectangle
type Wedge struct {
	// A180 is the angle reduced modulo 180
	A180 int
	// A90 is A180 folded into [0,90]
	A90 int
	// A45 is A90 folded into [0,45]
	A45 int
}

// ReduceAngle folds an orientation angle in [0,360) into its wedge
// representatives.  Trigonometric recovery of the true box extents only
// needs the wedge angle A45, while A90 identifies the axis aligned and
// ambiguous configurations.
func ReduceAngle(angle int) Wedge {

	a180 := angle

	if a180 >= 180 {
		a180 -= 180
	}

	a90 := a180

	if a90 > 90 {
		a90 -= 90
	}

	a45 := a90

	if a45 > 45 {
		a45 = 90 - a45
	}

	return Wedge{A180: a180, A90: a90, A45: a45}
}
