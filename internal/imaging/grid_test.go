package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func newBlack(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return img
}

func isRed(c color.NRGBA) bool {
	return c.R == 255 && c.G == 0 && c.B == 0
}

func TestGridOverlay_GridLines(t *testing.T) {
	img := newBlack(350, 250)

	GridOverlay(img, 100, 1.0, GridColor)

	// Lines start at 0 and repeat every step.
	for _, x := range []int{0, 100, 200, 300} {
		if c := img.NRGBAAt(x, 150); !isRed(c) {
			t.Errorf("vertical line at x=%d: got %v", x, c)
		}
	}
	for _, y := range []int{0, 100, 200} {
		if c := img.NRGBAAt(150, y); !isRed(c) {
			t.Errorf("horizontal line at y=%d: got %v", y, c)
		}
	}

	// Away from lines and labels the background is untouched.
	if c := img.NRGBAAt(150, 150); isRed(c) {
		t.Errorf("non-grid pixel should remain black, got %v", c)
	}
}

func TestGridOverlay_LabelsUseRealCoordinates(t *testing.T) {
	plain := newBlack(400, 300)
	scaled := newBlack(400, 300)

	GridOverlay(plain, 100, 1.0, GridColor)
	GridOverlay(scaled, 100, 1.875, GridColor)

	// The label next to x=100 reads "100" in one image and "187" in the
	// other, so the label areas must differ while the lines are identical.
	labelArea := image.Rect(102, 2, 102+3*7, 15)
	differs := false
	for y := labelArea.Min.Y; y < labelArea.Max.Y; y++ {
		for x := labelArea.Min.X; x < labelArea.Max.X; x++ {
			if plain.NRGBAAt(x, y) != scaled.NRGBAAt(x, y) {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("labels should reflect the scale factor")
	}

	if plain.NRGBAAt(100, 200) != scaled.NRGBAAt(100, 200) {
		t.Error("grid lines should not depend on the scale factor")
	}
}

func TestGridOverlay_LabelDrawn(t *testing.T) {
	img := newBlack(300, 300)
	GridOverlay(img, 100, 1.0, GridColor)

	// Some pixel inside the first label box next to x=100 must be painted.
	found := false
	for y := 2; y < 15 && !found; y++ {
		for x := 102; x < 102+21; x++ {
			if isRed(img.NRGBAAt(x, y)) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected label pixels next to the x=100 line")
	}
}

func TestGridOverlay_DefaultsInvalidArguments(t *testing.T) {
	img := newBlack(150, 150)
	GridOverlay(img, 0, 0, GridColor)

	if c := img.NRGBAAt(100, 120); !isRed(c) {
		t.Errorf("expected default step of %d, got %v at x=100", DefaultGridStep, c)
	}
}
