package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/blur"
)

// DefaultHeightmapSize is the side length Terrain3D expects for a single
// region heightmap.
const DefaultHeightmapSize = 513

// MaxHeightmapSize bounds each side of a generated heightmap.
const MaxHeightmapSize = 8192

// RadialHeightmap renders a single hill centred in a width x height
// grayscale image. The value of a pixel at distance d from the centre is
//
//	255 * (1 - d / (sqrt(2) * width / 2))
//
// truncated to an integer and clamped at 0. A positive smooth radius applies
// a Gaussian blur afterwards.
func RadialHeightmap(width, height int, smooth float64) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("heightmap size must be positive, got %dx%d", width, height)
	}
	if width > MaxHeightmapSize || height > MaxHeightmapSize {
		return nil, fmt.Errorf("heightmap size %dx%d exceeds the %d pixel limit", width, height, MaxHeightmapSize)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	cx := float64(width) / 2
	cy := float64(height) / 2
	maxDist := math.Sqrt2 * float64(width) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			v := 255 * (1 - d/maxDist)
			if v < 0 {
				v = 0
			}
			img.Pix[y*img.Stride+x] = uint8(v)
		}
	}

	if smooth <= 0 {
		return img, nil
	}
	blurred := blur.Gaussian(img, smooth)
	gray := image.NewGray(blurred.Bounds())
	draw.Draw(gray, gray.Bounds(), blurred, blurred.Bounds().Min, draw.Src)
	return gray, nil
}

// SavePNG writes img to path as a PNG, creating parent directories.
func SavePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
