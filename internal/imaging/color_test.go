package imaging

import (
	"image/color"
	"reflect"
	"testing"
)

func TestSampleColor(t *testing.T) {
	tests := []struct {
		name    string
		color   color.Color
		wantHex string
		wantRGB RGBColor
		wantHSL HSLColor
	}{
		{"red", color.RGBA{255, 0, 0, 255}, "#FF0000", RGBColor{255, 0, 0}, HSLColor{0, 100, 50}},
		{"blue", color.RGBA{0, 0, 255, 255}, "#0000FF", RGBColor{0, 0, 255}, HSLColor{240, 100, 50}},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", RGBColor{255, 255, 255}, HSLColor{0, 0, 100}},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", RGBColor{0, 0, 0}, HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.RGB != tt.wantRGB {
				t.Errorf("RGB: got %v, want %v", result.RGB, tt.wantRGB)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %v, want %v", result.HSL, tt.wantHSL)
			}
			if result.X != 5 || result.Y != 5 {
				t.Errorf("coords: got (%d,%d), want (5,5)", result.X, result.Y)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if _, err := SampleColor(img, p[0], p[1]); err == nil {
			t.Errorf("expected error for (%d,%d)", p[0], p[1])
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input     string
		wantR     uint8
		wantAlpha float64
	}{
		{"#FF0000", 255, 1.0},
		{"ff0000", 255, 1.0},
		{"#F00", 255, 1.0},
		{"#FF000000", 255, 0.0},
	}
	for _, tt := range tests {
		c, alpha, err := ParseHexColor(tt.input)
		if err != nil {
			t.Fatalf("%s: %v", tt.input, err)
		}
		r, _, _ := c.RGB255()
		if r != tt.wantR {
			t.Errorf("%s: R got %d, want %d", tt.input, r, tt.wantR)
		}
		if alpha != tt.wantAlpha {
			t.Errorf("%s: alpha got %v, want %v", tt.input, alpha, tt.wantAlpha)
		}
	}

	for _, bad := range []string{"", "#12", "#GGGGGG", "#1234567"} {
		if _, _, err := ParseHexColor(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestHexToFloats(t *testing.T) {
	got, err := HexToFloats("#3366FF")
	if err != nil {
		t.Fatalf("HexToFloats failed: %v", err)
	}
	want := []float64{0.2, 0.4, 1.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
