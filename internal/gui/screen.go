package gui

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironsheep/host-bridge-mcp/internal/desktop"
	"github.com/ironsheep/host-bridge-mcp/internal/imaging"
	"github.com/ironsheep/host-bridge-mcp/internal/ocr"
	"github.com/ironsheep/host-bridge-mcp/internal/server"
)

// JPEG qualities of the three screenshot tools.
const (
	screenshotQuality       = 70
	regionScreenshotQuality = 60
	smallScreenshotQuality  = 30
)

const gridNote = "Red grid lines show REAL coordinates. Use these numbers for mouse_click."

// saveJPEG encodes img, writes it to name inside the screenshot directory
// and returns the file path with the base64 of the written bytes.
func (s *Service) saveJPEG(img image.Image, name string, quality int) (string, string, error) {
	data, err := imaging.EncodeJPEG(img, quality)
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(s.shotDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create screenshot directory: %w", err)
	}
	path := filepath.Join(s.shotDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", fmt.Errorf("write screenshot: %w", err)
	}
	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("screenshot saved")
	return path, base64.StdEncoding.EncodeToString(data), nil
}

// === Screen Handlers ===

func (s *Service) handleGetScreenSize() (*mcp.CallToolResult, error) {
	w, h, err := s.ctl.ScreenSize()
	if err != nil {
		return nil, fmt.Errorf("getting screen size: %w", err)
	}
	return server.JSONResult(map[string]int{"width": w, "height": h}), nil
}

type pixelArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Service) handleGetPixelColor(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a pixelArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	w, h, err := s.ctl.ScreenSize()
	if err != nil {
		return nil, fmt.Errorf("getting screen size: %w", err)
	}
	if a.X < 0 || a.Y < 0 || a.X >= w || a.Y >= h {
		return nil, fmt.Errorf("coordinates (%d, %d) are outside the screen (%dx%d)", a.X, a.Y, w, h)
	}

	img, err := s.ctl.Capture(image.Rect(a.X, a.Y, a.X+1, a.Y+1))
	if err != nil {
		return nil, fmt.Errorf("capturing pixel: %w", err)
	}
	at := img.Bounds().Min
	pixel, err := imaging.SampleColor(img, at.X, at.Y)
	if err != nil {
		return nil, err
	}
	pixel.X, pixel.Y = a.X, a.Y
	return server.JSONResult(pixel), nil
}

type screenshotArgs struct {
	Filename string `json:"filename"`
	MaxWidth int    `json:"max_width"`
	Grid     bool   `json:"grid"`
}

type screenshotResult struct {
	Message      string  `json:"message"`
	Filepath     string  `json:"filepath"`
	ImageBase64  string  `json:"image_base64"`
	OriginalSize [2]int  `json:"original_size"`
	ScaledSize   [2]int  `json:"scaled_size"`
	ScaleFactor  float64 `json:"scale_factor"`
	Note         string  `json:"note"`
}

func (s *Service) handleTakeScreenshot(args json.RawMessage) (*mcp.CallToolResult, error) {
	a := screenshotArgs{Filename: "screenshot.jpg", MaxWidth: 1024, Grid: true}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	name := desktop.ScreenshotName(a.Filename, "screenshot.jpg")

	shot, err := s.ctl.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capturing screen: %w", err)
	}
	fitted, err := imaging.FitWidth(shot, a.MaxWidth)
	if err != nil {
		return nil, err
	}
	if a.Grid {
		imaging.GridOverlay(fitted.Image, imaging.DefaultGridStep, fitted.ScaleFactor, imaging.GridColor)
	}

	path, encoded, err := s.saveJPEG(fitted.Image, name, screenshotQuality)
	if err != nil {
		return nil, err
	}
	mode := "clean"
	if a.Grid {
		mode = "with grid"
	}
	return server.JSONResult(screenshotResult{
		Message:      fmt.Sprintf("Screenshot saved (%s).", mode),
		Filepath:     path,
		ImageBase64:  encoded,
		OriginalSize: [2]int{fitted.OriginalWidth, fitted.OriginalHeight},
		ScaledSize:   [2]int{fitted.Width(), fitted.Height()},
		ScaleFactor:  fitted.ScaleFactor,
		Note:         gridNote,
	}), nil
}

type regionScreenshotArgs struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Filename string `json:"filename"`
	MaxWidth int    `json:"max_width"`
}

type regionScreenshotResult struct {
	Message        string  `json:"message"`
	Filepath       string  `json:"filepath"`
	ImageBase64    string  `json:"image_base64"`
	OriginalWidth  int     `json:"original_width"`
	OriginalHeight int     `json:"original_height"`
	ResizedWidth   int     `json:"resized_width"`
	ResizedHeight  int     `json:"resized_height"`
	ScaleFactor    float64 `json:"scale_factor"`
}

func (s *Service) handleTakeScreenshotRegion(args json.RawMessage) (*mcp.CallToolResult, error) {
	a := regionScreenshotArgs{Filename: "screenshot_region.jpg", MaxWidth: 640}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	name := desktop.ScreenshotName(a.Filename, "screenshot_region.jpg")

	shot, err := s.ctl.Capture(image.Rect(a.X, a.Y, a.X+a.Width, a.Y+a.Height))
	if err != nil {
		return nil, fmt.Errorf("taking region screenshot: %w", err)
	}
	fitted, err := imaging.FitWidth(shot, a.MaxWidth)
	if err != nil {
		return nil, err
	}
	path, encoded, err := s.saveJPEG(fitted.Image, name, regionScreenshotQuality)
	if err != nil {
		return nil, err
	}
	return server.JSONResult(regionScreenshotResult{
		Message:        "Region screenshot saved to: " + path,
		Filepath:       path,
		ImageBase64:    encoded,
		OriginalWidth:  fitted.OriginalWidth,
		OriginalHeight: fitted.OriginalHeight,
		ResizedWidth:   fitted.Width(),
		ResizedHeight:  fitted.Height(),
		ScaleFactor:    fitted.ScaleFactor,
	}), nil
}

type smallScreenshotResult struct {
	Message     string `json:"message"`
	Filepath    string `json:"filepath"`
	ImageBase64 string `json:"image_base64"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Warning     string `json:"warning"`
}

func (s *Service) handleTakeScreenshotBase64(args json.RawMessage) (*mcp.CallToolResult, error) {
	a := screenshotArgs{Filename: "screenshot.jpg", MaxWidth: 400}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	name := desktop.ScreenshotName(a.Filename, "screenshot.jpg")

	shot, err := s.ctl.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("taking screenshot: %w", err)
	}
	fitted, err := imaging.FitWidth(shot, a.MaxWidth)
	if err != nil {
		return nil, err
	}
	path, encoded, err := s.saveJPEG(fitted.Image, name, smallScreenshotQuality)
	if err != nil {
		return nil, err
	}
	return server.JSONResult(smallScreenshotResult{
		Message:     fmt.Sprintf("Small screenshot saved: %s (%dx%d)", path, fitted.Width(), fitted.Height()),
		Filepath:    path,
		ImageBase64: encoded,
		Width:       fitted.Width(),
		Height:      fitted.Height(),
		Warning:     "Very low quality for token efficiency",
	}), nil
}

// === OCR Handlers ===

type regionArgs struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// recognize captures the region (or the whole screen) and runs OCR on it,
// returning regions in screen coordinates.
func (s *Service) recognize(region *regionArgs, language string) (*ocr.Result, error) {
	if language == "" {
		language = s.language
	}

	var (
		shot   image.Image
		err    error
		origin image.Point
	)
	if region != nil {
		origin = image.Pt(region.X, region.Y)
		shot, err = s.ctl.Capture(image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height))
	} else {
		shot, err = s.ctl.CaptureScreen()
	}
	if err != nil {
		return nil, fmt.Errorf("capturing screen: %w", err)
	}

	result, err := s.ocr.Recognize(shot, language)
	if err != nil {
		return nil, err
	}
	// Word boxes are relative to the captured image.
	result.Offset(origin.X, origin.Y)
	return result, nil
}

type locateTextArgs struct {
	Text          string      `json:"text"`
	Region        *regionArgs `json:"region"`
	Language      string      `json:"language"`
	MinConfidence float64     `json:"min_confidence"`
}

type locateTextResult struct {
	Query        string      `json:"query"`
	MatchesFound int         `json:"matches_found"`
	Matches      []ocr.Match `json:"matches"`
}

func (s *Service) handleLocateText(args json.RawMessage) (*mcp.CallToolResult, error) {
	a := locateTextArgs{MinConfidence: 0.5}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if a.Text == "" {
		return nil, fmt.Errorf("text must not be empty")
	}

	result, err := s.recognize(a.Region, a.Language)
	if err != nil {
		return nil, err
	}
	matches := result.Find(a.Text, a.MinConfidence)
	return server.JSONResult(locateTextResult{
		Query:        a.Text,
		MatchesFound: len(matches),
		Matches:      matches,
	}), nil
}

type readScreenTextArgs struct {
	Region   *regionArgs `json:"region"`
	Language string      `json:"language"`
}

func (s *Service) handleReadScreenText(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a readScreenTextArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	result, err := s.recognize(a.Region, a.Language)
	if err != nil {
		return nil, err
	}
	if result.Regions == nil {
		result.Regions = []ocr.TextRegion{}
	}
	return server.JSONResult(result), nil
}
