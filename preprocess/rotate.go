package preprocess

import (
	"gocv.io/x/gocv"
	"image"
	"math"
)

// RotateFrame renders the secondary frame image for the given rotation angle
// in degrees.  The source image is rotated about its center onto the minimal
// bounding canvas using the same clockwise convention as Projector, then
// resized onto the square canvas a Projector of the same angle assumes.
func RotateFrame(src gocv.Mat, dst *gocv.Mat, angle float64) {

	w := src.Cols()
	h := src.Rows()

	rad := angle * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))

	// bounding canvas holding the whole rotated image
	boundW := int(float64(h)*sin + float64(w)*cos)
	boundH := int(float64(h)*cos + float64(w)*sin)

	center := image.Pt(w/2, h/2)
	rot := gocv.GetRotationMatrix2D(center, angle, 1.0)

	defer rot.Close()

	// shift the rotation so the image center lands on the bounding canvas
	// center
	rot.SetDoubleAt(0, 2, rot.GetDoubleAt(0, 2)+float64(boundW)/2-float64(w)/2)
	rot.SetDoubleAt(1, 2, rot.GetDoubleAt(1, 2)+float64(boundH)/2-float64(h)/2)

	bound := gocv.NewMat()

	defer bound.Close()

	gocv.WarpAffine(src, &bound, rot, image.Pt(boundW, boundH))

	// scale onto the square canvas shared with the Projector
	side := int(math.Round(float64(w+h) * math.Cos(rad)))

	gocv.Resize(bound, dst, image.Pt(side, side), 0, 0, gocv.InterpolationCubic)
}
