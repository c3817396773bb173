package imaging

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is often more intuitive than RGB when describing what is on screen:
//   - Hue represents the color type (red, green, blue, etc.)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PixelColor is the color of one screen pixel in several representations.
type PixelColor struct {
	X   int      `json:"x"`
	Y   int      `json:"y"`
	Hex string   `json:"hex"`
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x, y: Pixel coordinates in img's coordinate space.
//
// The returned PixelColor reports x and y as given, so callers sampling a
// one-pixel capture can pass the capture's origin and still report screen
// coordinates by overwriting X and Y.
//
// # Color Conversion
//
// The native color is converted to 8-bit components by right-shifting the
// 16-bit values. Alpha is ignored; a screen pixel is always opaque.
func SampleColor(img image.Image, x, y int) (*PixelColor, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, _ := img.At(x, y).RGBA()
	rgb := RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}

	return &PixelColor{
		X:   x,
		Y:   y,
		Hex: fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B),
		RGB: rgb,
		HSL: toHSL(rgb),
	}, nil
}

// toHSL converts 8-bit RGB to whole-number HSL via go-colorful.
func toHSL(c RGBColor) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional) into a color and an alpha in [0, 1].
func ParseHexColor(hex string) (colorful.Color, float64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	alpha := 1.0

	switch len(s) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		alpha = float64(a) / 255.0
		s = s[:6]
	default:
		return colorful.Color{}, 0, fmt.Errorf("invalid hex color length: %q", hex)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, alpha, nil
}

// HexToFloats converts a hex color to [r, g, b] components in [0, 1],
// rounded to three decimals.
func HexToFloats(hex string) ([]float64, error) {
	c, _, err := ParseHexColor(hex)
	if err != nil {
		return nil, err
	}
	round := func(v float64) float64 { return math.Round(v*1000) / 1000 }
	return []float64{round(c.R), round(c.G), round(c.B)}, nil
}
