package render

import (
	"fmt"
	rotframe "github.com/rotframe/go-rotframe"
	"github.com/rotframe/go-rotframe/postprocess"
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// boxLabel holds the precalculated rendering details of a box label
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// labelGeometry calculates the text position and background rectangle of a
// label hung above a box spanning minX..maxX with its top edge at topY,
// honoring the font's alignment setting
func labelGeometry(font Font, textSize image.Point, minX, maxX, topY,
	lineThickness int) (image.Point, image.Rectangle) {

	// Calculate the alignment of text label
	var centerX int

	switch font.Alignment {
	case Center:
		centerX = (minX + maxX) / 2

	case Right:
		centerX = maxX - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

	case Left:
		fallthrough
	default:
		centerX = minX + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
	}

	// Adjust the label position so the text is centered horizontally
	textPos := image.Pt(centerX-textSize.X/2, topY-font.BottomPad)

	// background box the text gets written on
	rect := image.Rect(centerX-textSize.X/2-font.LeftPad,
		topY-textSize.Y-font.TopPad-font.BottomPad,
		centerX+textSize.X/2+font.RightPad, topY)

	return textPos, rect
}

// OrientedBoxOutlines renders only the polygon edges of the reconstructed
// oriented boxes, for callers that draw their own labels
func OrientedBoxOutlines(img *gocv.Mat, boxes []postprocess.OrientedBox,
	lineThickness int) {

	for i, box := range boxes {

		colorIndex := i % len(boxColors)
		useClr := boxColors[colorIndex]

		// draw the polygon edges between consecutive corners
		for j := 0; j < 4; j++ {
			p1 := box.Corners[j]
			p2 := box.Corners[(j+1)%4]

			gocv.Line(img,
				image.Pt(int(p1.X), int(p1.Y)),
				image.Pt(int(p2.X), int(p2.Y)),
				useClr, lineThickness)
		}
	}
}

// OrientedBoxes renders the reconstructed oriented boxes as four sided
// polygons with their orientation angle as label
func OrientedBoxes(img *gocv.Mat, boxes []postprocess.OrientedBox,
	font Font, lineThickness int) {

	OrientedBoxOutlines(img, boxes, lineThickness)

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0)

	for i, box := range boxes {

		// Get the color for this object
		colorIndex := i % len(boxColors)
		useClr := boxColors[colorIndex]

		// create text for label
		text := fmt.Sprintf("%d deg", box.Angle)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// the label hangs above the top most corner, aligned across the
		// horizontal extent of the polygon
		minX := int(box.Corners[0].X)
		maxX := minX
		topY := int(box.Corners[0].Y)

		for _, c := range box.Corners[1:] {
			if int(c.X) < minX {
				minX = int(c.X)
			}

			if int(c.X) > maxX {
				maxX = int(c.X)
			}

			if int(c.Y) < topY {
				topY = int(c.Y)
			}
		}

		textPos, bRect := labelGeometry(font, textSize, minX, maxX, topY,
			lineThickness)

		// record label rendering details
		nextLabel := boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: textPos,
		}
		boxLabels = append(boxLabels, nextLabel)

	}

	// draw all precalculated box labels so they are the top most layer on
	// the image and don't get covered by crossing polygon edges
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// DetectionBoxes renders the axis aligned detector boxes as read from the
// label file, before any reconstruction
func DetectionBoxes(img *gocv.Mat, dets []rotframe.Detection,
	font Font, lineThickness int) {

	width := img.Cols()
	height := img.Rows()

	for i, det := range dets {

		px := det.ToPixels(width, height)

		colorIndex := i % len(boxColors)
		useClr := boxColors[colorIndex]

		rect := image.Rect(int(px.X-px.W/2), int(px.Y-px.H/2),
			int(px.X+px.W/2), int(px.Y+px.H/2))
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("%d deg", px.Angle)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		textPos, bRect := labelGeometry(font, textSize, rect.Min.X, rect.Max.X,
			rect.Min.Y, lineThickness)

		gocv.Rectangle(img, bRect, useClr, -1)

		gocv.PutTextWithParams(img, text, textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
