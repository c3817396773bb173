package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultGridStep is the grid spacing in pixels of the (scaled) image.
const DefaultGridStep = 100

// GridColor is the color of grid lines and labels.
var GridColor = color.NRGBA{255, 0, 0, 255}

// GridOverlay draws a grid onto img in place. Lines are drawn every step
// pixels starting at 0; vertical lines are labelled along the top edge and
// horizontal lines along the left edge. Labels show int(pos * scaleFactor),
// the real screen coordinate of the line.
func GridOverlay(img draw.Image, step int, scaleFactor float64, c color.Color) {
	if step <= 0 {
		step = DefaultGridStep
	}
	if scaleFactor <= 0 {
		scaleFactor = 1.0
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	for x := 0; x < width; x += step {
		for y := 0; y < height; y++ {
			img.Set(bounds.Min.X+x, bounds.Min.Y+y, c)
		}
		drawLabel(img, bounds.Min.X+x+2, bounds.Min.Y+2, strconv.Itoa(int(float64(x)*scaleFactor)), c)
	}

	for y := 0; y < height; y += step {
		for x := 0; x < width; x++ {
			img.Set(bounds.Min.X+x, bounds.Min.Y+y, c)
		}
		drawLabel(img, bounds.Min.X+2, bounds.Min.Y+y+2, strconv.Itoa(int(float64(y)*scaleFactor)), c)
	}
}

// drawLabel draws text with its top-left corner at (x, y).
func drawLabel(img draw.Image, x, y int, text string, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}
