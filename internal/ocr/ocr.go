package ocr

import (
	"errors"
	"image"
	"strings"
)

// ErrUnavailable is returned when the binary was built without Tesseract.
var ErrUnavailable = errors.New("OCR is not available in this build (requires cgo and Tesseract)")

// Engine recognises words in an image.
type Engine interface {
	Recognize(img image.Image, language string) (*Result, error)
}

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TextRegion represents a word with its location and OCR confidence.
type TextRegion struct {
	Text string `json:"text"`
	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
	Bounds     Bounds  `json:"bounds"`
}

// Result contains the complete results of text extraction from an image.
type Result struct {
	FullText string       `json:"full_text"`
	Regions  []TextRegion `json:"regions"`
}

// Offset shifts every region by (dx, dy).
func (r *Result) Offset(dx, dy int) {
	for i := range r.Regions {
		r.Regions[i].Bounds.X1 += dx
		r.Regions[i].Bounds.Y1 += dy
		r.Regions[i].Bounds.X2 += dx
		r.Regions[i].Bounds.Y2 += dy
	}
}

// Match is a recognised word containing a searched text.
type Match struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Bounds     Bounds  `json:"bounds"`
	Center     Point   `json:"center"`
}

// Find returns the regions whose text contains query (case-insensitive)
// with at least minConfidence, in reading order as reported by the engine.
func (r *Result) Find(query string, minConfidence float64) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]Match, 0)
	if q == "" {
		return matches
	}
	for _, region := range r.Regions {
		if region.Confidence < minConfidence {
			continue
		}
		if !strings.Contains(strings.ToLower(region.Text), q) {
			continue
		}
		matches = append(matches, Match{
			Text:       region.Text,
			Confidence: region.Confidence,
			Bounds:     region.Bounds,
			Center:     region.Bounds.Center(),
		})
	}
	return matches
}

// newResult builds a Result from raw engine output, dropping empty words and
// scaling confidences from 0-100 to 0-1.
func newResult(text string, words []rawWord) *Result {
	regions := make([]TextRegion, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.text) == "" {
			continue
		}
		regions = append(regions, TextRegion{
			Text:       w.text,
			Confidence: w.confidence / 100.0,
			Bounds: Bounds{
				X1: w.box.Min.X,
				Y1: w.box.Min.Y,
				X2: w.box.Max.X,
				Y2: w.box.Max.Y,
			},
		})
	}
	return &Result{FullText: strings.TrimSpace(text), Regions: regions}
}

type rawWord struct {
	text       string
	confidence float64
	box        image.Rectangle
}
