package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// Fitted is an image that was bounded to a maximum width.
type Fitted struct {
	Image          *image.NRGBA
	OriginalWidth  int
	OriginalHeight int
	// ScaleFactor is original width / fitted width, 1.0 when no resize was
	// needed.
	ScaleFactor float64
}

// Width returns the fitted image width.
func (f *Fitted) Width() int { return f.Image.Bounds().Dx() }

// Height returns the fitted image height.
func (f *Fitted) Height() int { return f.Image.Bounds().Dy() }

// FitWidth converts img to opaque RGB and, when it is wider than maxWidth,
// downsizes it to exactly maxWidth keeping the aspect ratio. The new height
// is int(originalHeight / scaleFactor).
func FitWidth(img image.Image, maxWidth int) (*Fitted, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image (%dx%d)", w, h)
	}
	if maxWidth <= 0 {
		return nil, fmt.Errorf("max width must be positive, got %d", maxWidth)
	}

	rgb := ToRGB(img)
	if w <= maxWidth {
		return &Fitted{Image: rgb, OriginalWidth: w, OriginalHeight: h, ScaleFactor: 1.0}, nil
	}

	scale := float64(w) / float64(maxWidth)
	newHeight := int(float64(h) / scale)
	if newHeight < 1 {
		newHeight = 1
	}
	return &Fitted{
		Image:          imaging.Resize(rgb, maxWidth, newHeight, imaging.Lanczos),
		OriginalWidth:  w,
		OriginalHeight: h,
		ScaleFactor:    scale,
	}, nil
}

// ToRGB flattens img onto an opaque black background so that JPEG encoding
// never sees transparency. The result origin is (0,0).
func ToRGB(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.NRGBA{0, 0, 0, 255})
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// EncodeJPEG encodes img as a JPEG with the given quality (1-100).
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("jpeg quality must be 1-100, got %d", quality)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNG encodes img as a PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
