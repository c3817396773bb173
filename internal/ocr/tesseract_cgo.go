//go:build cgo

package ocr

import (
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/host-bridge-mcp/internal/imaging"
)

// Tesseract recognises text with the system Tesseract library.
type Tesseract struct {
	// TessdataPrefix overrides the language data directory when set.
	TessdataPrefix string
}

// NewTesseract returns the Tesseract engine. An empty tessdataPrefix uses
// the library's default language data directory.
func NewTesseract(tessdataPrefix string) *Tesseract {
	return &Tesseract{TessdataPrefix: tessdataPrefix}
}

// Recognize performs OCR on img and returns the text with word-level boxes.
//
// If word-level bounding box extraction fails the full text is still
// returned with an empty Regions slice.
func (t *Tesseract) Recognize(img image.Image, language string) (*Result, error) {
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return newResult(text, nil), nil
	}

	words := make([]rawWord, 0, len(boxes))
	for _, box := range boxes {
		words = append(words, rawWord{text: box.Word, confidence: box.Confidence, box: box.Box})
	}
	return newResult(text, words), nil
}
