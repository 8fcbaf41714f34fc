package postprocess

import (
	"errors"
	"fmt"
	"math"

	rotframe "github.com/rotframe/go-rotframe"
	"github.com/rotframe/go-rotframe/preprocess"
)

// ErrDegenerateGeometry is returned when the trigonometric deconvolution
// hits a near singular configuration.  The wedge reduction keeps cos(a45)
// at or above cos(45) so this is a defensive guard only.
var ErrDegenerateGeometry = errors.New("degenerate box geometry")

// minCosine guards the deconvolution divisor
const minCosine = 1e-6

// Point is a 2D pixel coordinate
type Point struct {
	X float64
	Y float64
}

// OrientedBox is the reconstructed non axis aligned box of a detected
// object.  Corners are in the same pixel coordinate system as the input
// detection, in consecutive order ready for polygon drawing.
type OrientedBox struct {
	// X and Y are the box center
	X float64
	Y float64
	// Width is the shorter recovered extent, Height the longer
	Width  float64
	Height float64
	// Angle is the detection orientation in degrees
	Angle int
	// Corners are the four rotated corner points
	Corners [4]Point
}

// ReconstructorParams defines the struct containing the Reconstructor
// parameters to use for box recovery
type ReconstructorParams struct {
	// RotationAngle is the fixed rotation in degrees between the primary
	// and secondary frame.  It must match the angle the secondary frame
	// images were produced with.
	RotationAngle float64
	// AmbiguousLow and AmbiguousHigh bound the folded angle zone in which
	// the single frame trigonometric inversion is near singular and the
	// secondary frame detection is read off instead
	AmbiguousLow  float64
	AmbiguousHigh float64
}

// DefaultReconstructorParams returns an instance of ReconstructorParams
// configured with the reference deployment values
// - Rotation Angle: 45
// - Ambiguous Zone: 22.5 to 67.5
func DefaultReconstructorParams() ReconstructorParams {
	return ReconstructorParams{
		RotationAngle: 45,
		AmbiguousLow:  22.5,
		AmbiguousHigh: 67.5,
	}
}

// Reconstructor recovers the true oriented box of a detected object from
// its axis aligned detection and, inside the ambiguous angle zone, the
// matching detection in the rotated secondary frame
type Reconstructor struct {
	// Params are the reconstruction configuration parameters
	Params ReconstructorParams
}

// NewReconstructor returns an instance of the Reconstructor
func NewReconstructor(p ReconstructorParams) *Reconstructor {
	return &Reconstructor{
		Params: p,
	}
}

// Reconstruct builds the oriented box for a normalized detection in a
// primary frame of the given pixel dimensions.  The secondary slice holds
// the normalized detections of the rotated frame and is only consulted when
// the folded detection angle falls inside the ambiguous zone.
func (r *Reconstructor) Reconstruct(det rotframe.Detection, frameW, frameH int,
	secondary []rotframe.Detection) (OrientedBox, error) {

	px := det.ToPixels(frameW, frameH)

	// normalize axes so w is the shorter extent of the detector box
	w, h := px.W, px.H

	if w > h {
		w, h = h, w
	}

	wedge := rotframe.ReduceAngle(px.Angle)

	rw, rh := w, h

	switch {
	case wedge.A90 == 0 || wedge.A90 == 90:
		// axis aligned, the detector extents need no correction

	case float64(wedge.A90) > r.Params.AmbiguousLow &&
		float64(wedge.A90) < r.Params.AmbiguousHigh:

		// near the 45 degree singularity the trigonometric inversion is
		// unstable, read the extents off the matched detection in the
		// secondary frame instead
		proj := preprocess.NewProjector(frameW, frameH, r.Params.RotationAngle)
		side := proj.RotatedSide()

		cands := make([]rotframe.Detection, len(secondary))

		for i, c := range secondary {
			cands[i] = c.ToPixels(side, side)
		}

		idx, err := NearestDetection(px, cands, proj)

		if err != nil {
			return OrientedBox{}, fmt.Errorf("ambiguous zone match failed: %w", err)
		}

		// scale the matched extents back into primary frame pixel units
		rw = secondary[idx].W * float64(frameW)
		rh = secondary[idx].H * float64(frameH)

		if rw > rh {
			rw, rh = rh, rw
		}

	default:
		// recover the true extents by trigonometric deconvolution of the
		// axis aligned box over the wedge angle
		rad := float64(wedge.A45) * math.Pi / 180
		cos := math.Cos(rad)
		sin := math.Sin(rad)

		if math.Abs(cos) < minCosine {
			return OrientedBox{}, fmt.Errorf("%w: a45=%d", ErrDegenerateGeometry,
				wedge.A45)
		}

		rw = w*cos - h*sin
		rh = (h - rw*sin) / cos

		if rw > rh {
			rw, rh = rh, rw
		}
	}

	box := OrientedBox{
		X:      px.X,
		Y:      px.Y,
		Width:  rw,
		Height: rh,
		Angle:  px.Angle,
	}

	box.Corners = boxCorners(px.X, px.Y, rw, rh, px.Angle)

	return box, nil
}

// boxCorners rotates the four axis aligned corner offsets about the box
// center.  The +90 degree offset matches the orientation labelling
// convention of the upstream detector.
func boxCorners(cx, cy, w, h float64, angle int) [4]Point {

	rad := (float64(angle) + 90) * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	xOff := [4]float64{-w / 2, w / 2, w / 2, -w / 2}
	yOff := [4]float64{-h / 2, -h / 2, h / 2, h / 2}

	var pts [4]Point

	for i := 0; i < 4; i++ {
		pts[i] = Point{
			X: cos*xOff[i] + sin*yOff[i] + cx,
			Y: -sin*xOff[i] + cos*yOff[i] + cy,
		}
	}

	return pts
}
