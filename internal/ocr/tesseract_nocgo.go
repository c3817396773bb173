//go:build !cgo

package ocr

import "image"

// Tesseract is unavailable without cgo.
type Tesseract struct{}

// NewTesseract returns a stub engine.
func NewTesseract(string) *Tesseract {
	return &Tesseract{}
}

// Recognize always fails with ErrUnavailable.
func (t *Tesseract) Recognize(image.Image, string) (*Result, error) {
	return nil, ErrUnavailable
}
