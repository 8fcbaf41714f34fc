package render

import "image/color"

var (
	// boxColors are cycled through when rendering multiple oriented boxes
	// on one frame
	boxColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},  // #FF3838
		{R: 72, G: 249, B: 10, A: 255},  // #48F90A
		{R: 0, G: 194, B: 255, A: 255},  // #00C2FF
		{R: 255, G: 178, B: 29, A: 255}, // #FFB21D
		{R: 132, G: 56, B: 255, A: 255}, // #8438FF
		{R: 61, G: 219, B: 134, A: 255}, // #3DDB86
	}

	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
)
