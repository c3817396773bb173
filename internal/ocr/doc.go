// Package ocr locates and reads text on screen captures using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2). It is used
// by the desktop bridge to answer "where is this text" and "what does the
// screen say" without sending a full screenshot to the client.
//
// # Prerequisites
//
// Builds with cgo link against the system Tesseract library; the language
// data for each requested language must be installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Builds without cgo compile a stub whose Recognize returns ErrUnavailable.
//
// # Coordinates
//
// The engine reports word boxes relative to the image it was given. Callers
// that recognise a region of the screen shift the result back to screen
// coordinates with Result.Offset before matching.
package ocr
