package gui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironsheep/host-bridge-mcp/internal/desktop"
	"github.com/ironsheep/host-bridge-mcp/internal/server"
)

func decode(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// seconds converts a duration in (possibly fractional) seconds. Negative
// values mean no delay.
func seconds(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}

// optionalPoint returns the point only when both coordinates were given.
func optionalPoint(x, y *int) *image.Point {
	if x == nil || y == nil {
		return nil
	}
	return &image.Point{X: *x, Y: *y}
}

// === Mouse Handlers ===

type mouseMoveArgs struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Duration float64 `json:"duration"`
}

func (s *Service) handleMouseMove(ctx context.Context, args json.RawMessage) (*mcp.CallToolResult, error) {
	a := mouseMoveArgs{Duration: 0.5}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctl.MoveTo(ctx, a.X, a.Y, seconds(a.Duration)); err != nil {
		return nil, fmt.Errorf("moving mouse: %w", err)
	}
	return server.TextResult(fmt.Sprintf("Mouse moved to (%d, %d).", a.X, a.Y)), nil
}

type mouseMoveRelativeArgs struct {
	DX       int     `json:"dx"`
	DY       int     `json:"dy"`
	Duration float64 `json:"duration"`
}

func (s *Service) handleMouseMoveRelative(ctx context.Context, args json.RawMessage) (*mcp.CallToolResult, error) {
	a := mouseMoveRelativeArgs{Duration: 0.5}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctl.MoveRelative(ctx, a.DX, a.DY, seconds(a.Duration)); err != nil {
		return nil, fmt.Errorf("moving mouse relatively: %w", err)
	}
	return server.TextResult(fmt.Sprintf("Mouse moved relatively by (%d, %d).", a.DX, a.DY)), nil
}

type mouseClickArgs struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button string `json:"button"`
	Double bool   `json:"double"`
}

func (s *Service) handleMouseClick(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a mouseClickArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	button, err := desktop.ParseButton(a.Button)
	if err != nil {
		return nil, err
	}
	if err := s.ctl.Click(a.X, a.Y, button, a.Double); err != nil {
		return nil, fmt.Errorf("clicking mouse: %w", err)
	}
	if a.Double {
		return server.TextResult(fmt.Sprintf("Double-clicked %s button at (%d, %d).", button, a.X, a.Y)), nil
	}
	return server.TextResult(fmt.Sprintf("Clicked %s button at (%d, %d).", button, a.X, a.Y)), nil
}

type mouseClickScaledArgs struct {
	X                int    `json:"x"`
	Y                int    `json:"y"`
	OriginalWidth    int    `json:"original_width"`
	OriginalHeight   int    `json:"original_height"`
	ScreenshotWidth  int    `json:"screenshot_width"`
	ScreenshotHeight int    `json:"screenshot_height"`
	Button           string `json:"button"`
	Double           bool   `json:"double"`
}

// scaleToScreen maps a point on a screenshot of the given size back onto a
// screen of the original size. Results are truncated toward zero.
func scaleToScreen(x, y, originalW, originalH, shotW, shotH int) (int, int, error) {
	if shotW == 0 || shotH == 0 {
		return 0, 0, errors.New("Screenshot dimensions cannot be zero.")
	}
	scaleX := float64(originalW) / float64(shotW)
	scaleY := float64(originalH) / float64(shotH)
	return int(float64(x) * scaleX), int(float64(y) * scaleY), nil
}

func (s *Service) handleMouseClickScaled(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a mouseClickScaledArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	button, err := desktop.ParseButton(a.Button)
	if err != nil {
		return nil, err
	}

	realX, realY, err := scaleToScreen(a.X, a.Y, a.OriginalWidth, a.OriginalHeight, a.ScreenshotWidth, a.ScreenshotHeight)
	if err != nil {
		return nil, err
	}
	screenW, screenH, err := s.ctl.ScreenSize()
	if err != nil {
		return nil, fmt.Errorf("reading screen size: %w", err)
	}
	if realX > screenW || realY > screenH {
		return nil, fmt.Errorf("Calculated coordinates (%d, %d) are out of screen bounds (%d, %d). Check input dimensions.",
			realX, realY, screenW, screenH)
	}

	if err := s.ctl.Click(realX, realY, button, a.Double); err != nil {
		return nil, fmt.Errorf("clicking mouse: %w", err)
	}
	verb := "Clicked"
	if a.Double {
		verb = "Double-clicked"
	}
	return server.TextResult(fmt.Sprintf("%s at real coords (%d, %d) [Scaled from %d, %d]", verb, realX, realY, a.X, a.Y)), nil
}

type mouseScrollArgs struct {
	Amount    int    `json:"amount"`
	Direction string `json:"direction"`
	X         *int   `json:"x"`
	Y         *int   `json:"y"`
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (s *Service) handleMouseScroll(args json.RawMessage) (*mcp.CallToolResult, error) {
	a := mouseScrollArgs{Amount: 1, Direction: "down"}
	if err := decode(args, &a); err != nil {
		return nil, err
	}

	clicks := -a.Amount
	if strings.EqualFold(a.Direction, "up") {
		clicks = a.Amount
	}
	if err := s.ctl.Scroll(clicks, optionalPoint(a.X, a.Y)); err != nil {
		return nil, fmt.Errorf("scrolling mouse: %w", err)
	}

	dir := "down"
	if clicks > 0 {
		dir = "up"
	}
	return server.TextResult(fmt.Sprintf("Scrolled %s %d", dir, abs(clicks))), nil
}

func (s *Service) handleMouseHScroll(args json.RawMessage) (*mcp.CallToolResult, error) {
	a := mouseScrollArgs{Amount: 1, Direction: "right"}
	if err := decode(args, &a); err != nil {
		return nil, err
	}

	clicks := -a.Amount
	if strings.EqualFold(a.Direction, "right") {
		clicks = a.Amount
	}
	viaShift, err := s.ctl.HScroll(clicks, optionalPoint(a.X, a.Y))
	if err != nil {
		return nil, fmt.Errorf("horizontal scrolling mouse: %w", err)
	}

	dir := "left"
	if clicks > 0 {
		dir = "right"
	}
	if viaShift {
		return server.TextResult(fmt.Sprintf("HScrolled (shift+scroll) %s %d", dir, abs(clicks))), nil
	}
	return server.TextResult(fmt.Sprintf("HScrolled %s %d", dir, abs(clicks))), nil
}

type mouseButtonArgs struct {
	Button string `json:"button"`
	X      *int   `json:"x"`
	Y      *int   `json:"y"`
}

func (s *Service) handleMouseButton(args json.RawMessage, down bool) (*mcp.CallToolResult, error) {
	var a mouseButtonArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	button, err := desktop.ParseButton(a.Button)
	if err != nil {
		return nil, err
	}

	at := optionalPoint(a.X, a.Y)
	if down {
		if err := s.ctl.ButtonDown(button, at); err != nil {
			return nil, fmt.Errorf("mouse down: %w", err)
		}
		return server.TextResult(fmt.Sprintf("Mouse down: %s", button)), nil
	}
	if err := s.ctl.ButtonUp(button, at); err != nil {
		return nil, fmt.Errorf("mouse up: %w", err)
	}
	return server.TextResult(fmt.Sprintf("Mouse up: %s", button)), nil
}

type mouseDragArgs struct {
	DX       int     `json:"dx"`
	DY       int     `json:"dy"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Duration float64 `json:"duration"`
	Button   string  `json:"button"`
	StartX   *int    `json:"start_x"`
	StartY   *int    `json:"start_y"`
}

func (s *Service) handleMouseDrag(ctx context.Context, args json.RawMessage) (*mcp.CallToolResult, error) {
	a := mouseDragArgs{Duration: 0.5}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	button, err := desktop.ParseButton(a.Button)
	if err != nil {
		return nil, err
	}
	if err := s.ctl.Drag(ctx, a.DX, a.DY, seconds(a.Duration), button, optionalPoint(a.StartX, a.StartY)); err != nil {
		return nil, fmt.Errorf("mouse drag: %w", err)
	}
	return server.TextResult(fmt.Sprintf("Mouse dragged by (%d, %d) with %s", a.DX, a.DY, button)), nil
}

func (s *Service) handleMouseDragTo(ctx context.Context, args json.RawMessage) (*mcp.CallToolResult, error) {
	a := mouseDragArgs{Duration: 0.5}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	button, err := desktop.ParseButton(a.Button)
	if err != nil {
		return nil, err
	}
	if err := s.ctl.DragTo(ctx, a.X, a.Y, seconds(a.Duration), button, optionalPoint(a.StartX, a.StartY)); err != nil {
		return nil, fmt.Errorf("mouse drag to: %w", err)
	}
	return server.TextResult(fmt.Sprintf("Mouse dragged to (%d, %d) with %s", a.X, a.Y, button)), nil
}

func (s *Service) handleGetMousePosition() (*mcp.CallToolResult, error) {
	x, y, err := s.ctl.Position()
	if err != nil {
		return nil, fmt.Errorf("reading mouse position: %w", err)
	}
	return server.JSONResult(map[string]int{"x": x, "y": y}), nil
}

// === Keyboard Handlers ===

type keyboardTypeArgs struct {
	Text     string  `json:"text"`
	Interval float64 `json:"interval"`
}

func (s *Service) handleKeyboardType(ctx context.Context, args json.RawMessage) (*mcp.CallToolResult, error) {
	a := keyboardTypeArgs{Interval: 0.1}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctl.TypeText(ctx, a.Text, seconds(a.Interval)); err != nil {
		return nil, fmt.Errorf("typing text: %w", err)
	}
	return server.TextResult(fmt.Sprintf("Typed text: '%s'.", a.Text)), nil
}

type keyboardPressArgs struct {
	Keys []string `json:"keys"`
}

func (s *Service) handleKeyboardPress(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a keyboardPressArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if err := s.ctl.Hotkey(a.Keys); err != nil {
		return nil, fmt.Errorf("pressing hotkey: %w", err)
	}
	return server.TextResult(fmt.Sprintf("Pressed hotkey: %s.", strings.Join(a.Keys, ", "))), nil
}

type keyArgs struct {
	Key string `json:"key"`
}

func (s *Service) handleKey(args json.RawMessage, down bool) (*mcp.CallToolResult, error) {
	var a keyArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if a.Key == "" {
		return nil, errors.New("key must not be empty")
	}
	if down {
		if err := s.ctl.KeyDown(a.Key); err != nil {
			return nil, fmt.Errorf("key down: %w", err)
		}
		return server.TextResult("Key down: " + a.Key), nil
	}
	if err := s.ctl.KeyUp(a.Key); err != nil {
		return nil, fmt.Errorf("key up: %w", err)
	}
	return server.TextResult("Key up: " + a.Key), nil
}

// === Desktop File Handlers ===

type listDesktopFilesArgs struct {
	Extension string `json:"extension"`
}

func (s *Service) handleListDesktopFiles(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a listDesktopFilesArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	result, err := s.files.List(a.Extension)
	if err != nil {
		return nil, err
	}
	return server.JSONResult(result), nil
}

type findFileArgs struct {
	Filename string `json:"filename"`
}

func (s *Service) handleFindFileOnDesktop(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a findFileArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	result, err := s.files.Find(a.Filename)
	if err != nil {
		return nil, err
	}
	return server.JSONResult(result), nil
}

type deleteFileArgs struct {
	Filepath string `json:"filepath"`
}

func (s *Service) handleDeleteFile(args json.RawMessage) (*mcp.CallToolResult, error) {
	var a deleteFileArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	result, err := s.files.Delete(a.Filepath)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("path", a.Filepath).Msg("desktop file deleted")
	return server.JSONResult(result), nil
}
