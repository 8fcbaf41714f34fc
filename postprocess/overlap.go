package postprocess

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// clipperScale converts float pixel coordinates into clipper's integer
// coordinate space
const clipperScale = 1000

// IoU returns the Intersection over Union of the two oriented boxes by
// clipping their corner quadrilaterals against each other.  Used to measure
// agreement between reconstructions, for example the trigonometric and
// matched branch outputs for the same object.
func (b OrientedBox) IoU(other OrientedBox) float64 {

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(b.clipperPath(), clipper.PtSubject, true)
	c.AddPath(other.clipperPath(), clipper.PtClip, true)

	solution, ok := c.Execute1(clipper.CtIntersection,
		clipper.PftEvenOdd, clipper.PftEvenOdd)

	if !ok || len(solution) == 0 {
		return 0
	}

	inter := 0.0

	for _, path := range solution {
		inter += pathArea(path)
	}

	union := b.Width*b.Height + other.Width*other.Height - inter

	if union <= 0 {
		return 0
	}

	return inter / union
}

// clipperPath converts the box corners into clipper's integer coordinate
// space
func (b OrientedBox) clipperPath() clipper.Path {

	path := make(clipper.Path, 0, 4)

	for _, pt := range b.Corners {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(pt.X * clipperScale)),
			Y: clipper.CInt(math.Round(pt.Y * clipperScale)),
		})
	}

	return path
}

// pathArea is the shoelace area of a clipper path converted back to pixel
// units
func pathArea(path clipper.Path) float64 {

	area := 0.0
	n := len(path)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += float64(path[i].X)*float64(path[j].Y) -
			float64(path[j].X)*float64(path[i].Y)
	}

	return math.Abs(area/2) / (clipperScale * clipperScale)
}
