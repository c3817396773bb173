package desktop

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	// ErrUnsupported is returned by drivers for operations the platform or
	// build cannot perform.
	ErrUnsupported = errors.New("operation not supported on this platform")

	// ErrFailSafe is returned when an input action is refused because the
	// cursor sits in a screen corner.
	ErrFailSafe = errors.New("fail-safe triggered: mouse cursor is in a screen corner; move it away to resume automation")
)

// Button is a mouse button.
type Button string

const (
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
)

// ParseButton accepts left, right or middle (case-insensitive). An empty
// string means left.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	}
	return "", fmt.Errorf("invalid mouse button %q (must be left, right or middle)", s)
}

// Driver performs raw OS input and capture. Implementations do no tweening,
// waiting or safety checks; Controller layers those on top.
type Driver interface {
	ScreenSize() (width, height int, err error)
	CursorPosition() (x, y int, err error)
	// MoveTo jumps the cursor to (x, y).
	MoveTo(x, y int) error
	ButtonDown(b Button) error
	ButtonUp(b Button) error
	// Click clicks b at the current cursor position.
	Click(b Button, double bool) error
	// Scroll scrolls vertically; positive clicks scroll up.
	Scroll(clicks int) error
	// HScroll scrolls horizontally; positive clicks scroll right. Drivers
	// without horizontal wheel support return ErrUnsupported.
	HScroll(clicks int) error
	KeyDown(key string) error
	KeyUp(key string) error
	// TypeText types text verbatim with no delay between characters.
	TypeText(text string) error
	// Capture grabs the screen pixels inside rect.
	Capture(rect image.Rectangle) (image.Image, error)
}
