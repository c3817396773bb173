package gui

import "github.com/ironsheep/host-bridge-mcp/internal/server"

// buttonProperty is the schema shared by every tool taking a mouse button.
var buttonProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"left", "right", "middle"},
	"description": "Mouse button to use",
	"default":     "left",
}

// regionProperty describes an optional screen rectangle.
var regionProperty = map[string]interface{}{
	"type":        "object",
	"description": "Optional screen region to limit the search to. Omit to use the whole screen.",
	"properties": map[string]interface{}{
		"x":      map[string]interface{}{"type": "integer", "description": "Left edge in screen pixels"},
		"y":      map[string]interface{}{"type": "integer", "description": "Top edge in screen pixels"},
		"width":  map[string]interface{}{"type": "integer", "description": "Region width in pixels"},
		"height": map[string]interface{}{"type": "integer", "description": "Region height in pixels"},
	},
	"required": []string{"x", "y", "width", "height"},
}

// Definitions returns every desktop bridge tool.
func Definitions() []server.Tool {
	return []server.Tool{
		// Mouse
		{
			Name:        "mouse_move",
			Title:       "Move Mouse",
			Description: "Moves the mouse cursor to the specified coordinates on the screen.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "The x-coordinate to move the mouse to",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "The y-coordinate to move the mouse to",
					},
					"duration": map[string]interface{}{
						"type":        "number",
						"description": "Time in seconds to spend moving the mouse",
						"default":     0.5,
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "mouse_move_relative",
			Title:       "Move Mouse Relative",
			Description: "Moves the mouse cursor by an offset from its current position.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dx": map[string]interface{}{
						"type":        "integer",
						"description": "Horizontal offset in pixels (negative moves left)",
					},
					"dy": map[string]interface{}{
						"type":        "integer",
						"description": "Vertical offset in pixels (negative moves up)",
					},
					"duration": map[string]interface{}{
						"type":        "number",
						"description": "Time in seconds to spend moving the mouse",
						"default":     0.5,
					},
				},
				"required": []string{"dx", "dy"},
			},
		},
		{
			Name:        "mouse_click",
			Title:       "Click",
			Description: "Performs a mouse click at the specified coordinates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "The x-coordinate to click at",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "The y-coordinate to click at",
					},
					"button": buttonProperty,
					"double": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to perform a double-click",
						"default":     false,
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "mouse_click_scaled",
			Title:       "Click Scaled Coordinates",
			Description: "Performs a click using coordinates read from a scaled screenshot. The real screen coordinates are calculated from the original and screenshot dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate on the screenshot",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate on the screenshot",
					},
					"original_width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of the real screen the screenshot was taken from",
					},
					"original_height": map[string]interface{}{
						"type":        "integer",
						"description": "Height of the real screen the screenshot was taken from",
					},
					"screenshot_width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of the scaled screenshot",
					},
					"screenshot_height": map[string]interface{}{
						"type":        "integer",
						"description": "Height of the scaled screenshot",
					},
					"button": buttonProperty,
					"double": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to perform a double-click",
						"default":     false,
					},
				},
				"required": []string{"x", "y", "original_width", "original_height", "screenshot_width", "screenshot_height"},
			},
		},
		{
			Name:        "mouse_scroll",
			Title:       "Scroll",
			Description: "Scrolls the mouse wheel vertically, optionally moving to a position first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"amount": map[string]interface{}{
						"type":        "integer",
						"description": "Number of wheel clicks",
						"default":     1,
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"up", "down"},
						"description": "Scroll direction",
						"default":     "down",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Optional x-coordinate to scroll at (needs y)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Optional y-coordinate to scroll at (needs x)",
					},
				},
			},
		},
		{
			Name:        "mouse_hscroll",
			Title:       "Scroll Horizontally",
			Description: "Scrolls horizontally, optionally moving to a position first. Falls back to shift+scroll where horizontal scrolling is not supported.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"amount": map[string]interface{}{
						"type":        "integer",
						"description": "Number of wheel clicks",
						"default":     1,
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"left", "right"},
						"description": "Scroll direction",
						"default":     "right",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Optional x-coordinate to scroll at (needs y)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Optional y-coordinate to scroll at (needs x)",
					},
				},
			},
		},
		{
			Name:        "mouse_down",
			Title:       "Press Mouse Button",
			Description: "Presses and holds a mouse button, optionally moving to a position first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"button": buttonProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Optional x-coordinate (needs y)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Optional y-coordinate (needs x)",
					},
				},
			},
		},
		{
			Name:        "mouse_up",
			Title:       "Release Mouse Button",
			Description: "Releases a held mouse button, optionally moving to a position first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"button": buttonProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Optional x-coordinate (needs y)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Optional y-coordinate (needs x)",
					},
				},
			},
		},
		{
			Name:        "mouse_drag",
			Title:       "Drag By Offset",
			Description: "Drags with a mouse button held by an offset from the current (or given start) position.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dx": map[string]interface{}{
						"type":        "integer",
						"description": "Horizontal drag distance in pixels",
					},
					"dy": map[string]interface{}{
						"type":        "integer",
						"description": "Vertical drag distance in pixels",
					},
					"duration": map[string]interface{}{
						"type":        "number",
						"description": "Time in seconds the drag takes",
						"default":     0.5,
					},
					"button": buttonProperty,
					"start_x": map[string]interface{}{
						"type":        "integer",
						"description": "Optional x-coordinate to start from (needs start_y)",
					},
					"start_y": map[string]interface{}{
						"type":        "integer",
						"description": "Optional y-coordinate to start from (needs start_x)",
					},
				},
				"required": []string{"dx", "dy"},
			},
		},
		{
			Name:        "mouse_drag_to",
			Title:       "Drag To Position",
			Description: "Drags with a mouse button held to an absolute position, from the current (or given start) position.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Target x-coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Target y-coordinate",
					},
					"duration": map[string]interface{}{
						"type":        "number",
						"description": "Time in seconds the drag takes",
						"default":     0.5,
					},
					"button": buttonProperty,
					"start_x": map[string]interface{}{
						"type":        "integer",
						"description": "Optional x-coordinate to start from (needs start_y)",
					},
					"start_y": map[string]interface{}{
						"type":        "integer",
						"description": "Optional y-coordinate to start from (needs start_x)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "get_mouse_position",
			Title:       "Get Mouse Position",
			Description: "Returns the current mouse cursor position.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
			ReadOnly: true,
			Errors:   server.JSONError,
		},

		// Keyboard
		{
			Name:        "keyboard_type",
			Title:       "Type Text",
			Description: "Types the given text using the keyboard.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "The text to type",
					},
					"interval": map[string]interface{}{
						"type":        "number",
						"description": "Seconds to wait between key presses",
						"default":     0.1,
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "keyboard_press",
			Title:       "Press Hotkey",
			Description: "Presses a combination of keys together (e.g. ['ctrl', 's']) and releases them in reverse order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"keys": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"minItems":    1,
						"description": "Keys to press simultaneously",
					},
				},
				"required": []string{"keys"},
			},
		},
		{
			Name:        "key_down",
			Title:       "Hold Key",
			Description: "Presses and holds a key.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": map[string]interface{}{
						"type":        "string",
						"description": "Key name (e.g. shift, ctrl, a, enter)",
					},
				},
				"required": []string{"key"},
			},
		},
		{
			Name:        "key_up",
			Title:       "Release Key",
			Description: "Releases a held key.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": map[string]interface{}{
						"type":        "string",
						"description": "Key name (e.g. shift, ctrl, a, enter)",
					},
				},
				"required": []string{"key"},
			},
		},

		// Screen
		{
			Name:        "get_screen_size",
			Title:       "Get Screen Size",
			Description: "Returns the width and height of the primary screen.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
			ReadOnly: true,
			Errors:   server.JSONError,
		},
		{
			Name:        "get_pixel_color",
			Title:       "Get Pixel Color",
			Description: "Returns the color of one screen pixel as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Screen x-coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Screen y-coordinate",
					},
				},
				"required": []string{"x", "y"},
			},
			ReadOnly: true,
			Errors:   server.JSONError,
		},
		{
			Name:        "take_screenshot",
			Title:       "Take Screenshot",
			Description: "Takes a screenshot of the whole screen, downscaled to max_width. With grid enabled a red grid is drawn every 100 pixels, labelled with REAL screen coordinates for use with mouse_click.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "File name for the saved JPEG",
						"default":     "screenshot.jpg",
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum width of the returned image",
						"default":     1024,
					},
					"grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Overlay a coordinate grid",
						"default":     true,
					},
				},
			},
			Errors: server.JSONError,
		},
		{
			Name:        "take_screenshot_region",
			Title:       "Take Region Screenshot",
			Description: "Takes a screenshot of a screen region, downscaled to max_width.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge of the region",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge of the region",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Region width",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Region height",
					},
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "File name for the saved JPEG",
						"default":     "screenshot_region.jpg",
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum width of the returned image",
						"default":     640,
					},
				},
				"required": []string{"x", "y", "width", "height"},
			},
			Errors: server.JSONError,
		},
		{
			Name:        "take_screenshot_base64",
			Title:       "Take Small Screenshot",
			Description: "Takes a VERY small, low quality screenshot for vision analysis. Only use when necessary due to token limits.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "File name for the saved JPEG",
						"default":     "screenshot.jpg",
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum width of the returned image",
						"default":     400,
					},
				},
			},
			Errors: server.JSONError,
		},
		{
			Name:        "locate_text_on_screen",
			Title:       "Locate Text On Screen",
			Description: "Finds words on the screen containing the given text (case-insensitive) using OCR. Returns bounding boxes and click centers in real screen coordinates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text to look for",
					},
					"region": regionProperty,
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (defaults to the configured language)",
					},
					"min_confidence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum OCR confidence (0.0 to 1.0)",
						"default":     0.5,
					},
				},
				"required": []string{"text"},
			},
			ReadOnly: true,
			Errors:   server.JSONError,
		},
		{
			Name:        "read_screen_text",
			Title:       "Read Screen Text",
			Description: "Reads all text on the screen, or in a region, using OCR.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"region": regionProperty,
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (defaults to the configured language)",
					},
				},
			},
			ReadOnly: true,
			Errors:   server.JSONError,
		},

		// Desktop files
		{
			Name:        "list_desktop_files",
			Title:       "List Desktop Files",
			Description: "Lists all files on the Desktop, optionally filtered by extension (e.g. '.txt').",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"extension": map[string]interface{}{
						"type":        "string",
						"description": "Optional extension to filter by, case-insensitive",
					},
				},
			},
			ReadOnly: true,
			Errors:   server.JSONError,
		},
		{
			Name:        "find_file_on_desktop",
			Title:       "Find Desktop File",
			Description: "Searches the Desktop for files whose name contains the given text (case-insensitive).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filename": map[string]interface{}{
						"type":        "string",
						"description": "Name or partial name to search for",
					},
				},
				"required": []string{"filename"},
			},
			ReadOnly: true,
			Errors:   server.JSONError,
		},
		{
			Name:        "delete_file",
			Title:       "Delete Desktop File",
			Description: "Permanently deletes a file. Only files inside the Desktop directory can be deleted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"filepath": map[string]interface{}{
						"type":        "string",
						"description": "Full path of the file to delete",
					},
				},
				"required": []string{"filepath"},
			},
			Errors: server.JSONError,
		},
	}
}
