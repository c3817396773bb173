package gui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/ironsheep/host-bridge-mcp/internal/config"
	"github.com/ironsheep/host-bridge-mcp/internal/desktop"
	"github.com/ironsheep/host-bridge-mcp/internal/ocr"
	"github.com/ironsheep/host-bridge-mcp/internal/server"
)

// Service executes the desktop bridge tools.
type Service struct {
	ctl      *desktop.Controller
	files    desktop.Files
	ocr      ocr.Engine
	shotDir  string
	language string
	logger   zerolog.Logger
}

// NewService wires the tools to a controller, the desktop directory and
// screenshot settings from cfg, and an OCR engine.
func NewService(ctl *desktop.Controller, cfg config.Desktop, engine ocr.Engine, logger zerolog.Logger) *Service {
	return &Service{
		ctl:      ctl,
		files:    desktop.Files{Dir: cfg.Dir},
		ocr:      engine,
		shotDir:  cfg.ScreenshotDir,
		language: cfg.OCRLanguage,
		logger:   logger,
	}
}

var _ server.Toolset = (*Service)(nil)

// Tools returns the tool definitions.
func (s *Service) Tools() []server.Tool {
	return Definitions()
}

// Execute dispatches a tool call to its handler.
func (s *Service) Execute(ctx context.Context, name string, args json.RawMessage) (*mcp.CallToolResult, error) {
	switch name {
	// Mouse
	case "mouse_move":
		return s.handleMouseMove(ctx, args)
	case "mouse_move_relative":
		return s.handleMouseMoveRelative(ctx, args)
	case "mouse_click":
		return s.handleMouseClick(args)
	case "mouse_click_scaled":
		return s.handleMouseClickScaled(args)
	case "mouse_scroll":
		return s.handleMouseScroll(args)
	case "mouse_hscroll":
		return s.handleMouseHScroll(args)
	case "mouse_down":
		return s.handleMouseButton(args, true)
	case "mouse_up":
		return s.handleMouseButton(args, false)
	case "mouse_drag":
		return s.handleMouseDrag(ctx, args)
	case "mouse_drag_to":
		return s.handleMouseDragTo(ctx, args)
	case "get_mouse_position":
		return s.handleGetMousePosition()

	// Keyboard
	case "keyboard_type":
		return s.handleKeyboardType(ctx, args)
	case "keyboard_press":
		return s.handleKeyboardPress(args)
	case "key_down":
		return s.handleKey(args, true)
	case "key_up":
		return s.handleKey(args, false)

	// Screen
	case "get_screen_size":
		return s.handleGetScreenSize()
	case "get_pixel_color":
		return s.handleGetPixelColor(args)
	case "take_screenshot":
		return s.handleTakeScreenshot(args)
	case "take_screenshot_region":
		return s.handleTakeScreenshotRegion(args)
	case "take_screenshot_base64":
		return s.handleTakeScreenshotBase64(args)
	case "locate_text_on_screen":
		return s.handleLocateText(args)
	case "read_screen_text":
		return s.handleReadScreenText(args)

	// Desktop files
	case "list_desktop_files":
		return s.handleListDesktopFiles(args)
	case "find_file_on_desktop":
		return s.handleFindFileOnDesktop(args)
	case "delete_file":
		return s.handleDeleteFile(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}
