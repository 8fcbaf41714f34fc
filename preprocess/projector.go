package preprocess

import "math"

// Projector maps point coordinates between a primary frame and the secondary
// frame produced by rotating the primary image by a fixed angle.  The
// secondary canvas is the minimal square bounding both rotated corners,
// round((W+H)*cos(angle)) pixels per side, and the projection must match the
// forward transform used when the rotated image was produced or
// correspondence quality degrades silently.
type Projector struct {
	// srcWidth is the width of the primary frame
	srcWidth int
	// srcHeight is the height of the primary frame
	srcHeight int
	// angle is the fixed inter frame rotation in degrees
	angle float64
	// rotSide is the side length of the square rotated canvas
	rotSide int
	// precalculated rotation terms
	cos float64
	sin float64
}

// NewProjector returns a projector for the given primary frame size and
// inter frame rotation angle in degrees.  The angle is an injected
// deployment parameter, 45 degrees in the reference setup.
func NewProjector(srcWidth, srcHeight int, angle float64) *Projector {
	p := &Projector{
		srcWidth:  srcWidth,
		srcHeight: srcHeight,
		angle:     angle,
	}

	// precalculate rotation terms and canvas growth
	p.preCalc()

	return p
}

// preCalc the rotated canvas size and rotation terms
func (p *Projector) preCalc() {

	rad := p.angle * math.Pi / 180
	p.cos = math.Cos(rad)
	p.sin = math.Sin(rad)

	p.rotSide = int(math.Round(float64(p.srcWidth+p.srcHeight) * p.cos))
}

// Project maps a point in primary frame pixels into the rotated frame's
// coordinate system.  Rotation is about the primary canvas center using the
// clockwise detector convention, re-centered into the larger rotated canvas.
func (p *Projector) Project(x, y float64) (float64, float64) {

	dx := x - float64(p.srcWidth)/2
	dy := y - float64(p.srcHeight)/2

	rx := dx*p.cos + dy*p.sin
	ry := -dx*p.sin + dy*p.cos

	rx += float64(p.srcWidth)/2 + float64(p.rotSide-p.srcWidth)/2
	ry += float64(p.srcHeight)/2 + float64(p.rotSide-p.srcHeight)/2

	return rx, ry
}

// Unproject maps a point in rotated frame pixels back into the primary
// frame, the exact inverse of Project
func (p *Projector) Unproject(x, y float64) (float64, float64) {

	dx := x - float64(p.srcWidth)/2 - float64(p.rotSide-p.srcWidth)/2
	dy := y - float64(p.srcHeight)/2 - float64(p.rotSide-p.srcHeight)/2

	ox := dx*p.cos - dy*p.sin
	oy := dx*p.sin + dy*p.cos

	ox += float64(p.srcWidth) / 2
	oy += float64(p.srcHeight) / 2

	return ox, oy
}

// RotatedSide returns the side length in pixels of the square rotated canvas
func (p *Projector) RotatedSide() int {
	return p.rotSide
}

// Angle returns the inter frame rotation in degrees
func (p *Projector) Angle() float64 {
	return p.angle
}

// SrcWidth returns the width of the primary frame
func (p *Projector) SrcWidth() int {
	return p.srcWidth
}

// SrcHeight returns the height of the primary frame
func (p *Projector) SrcHeight() int {
	return p.srcHeight
}
