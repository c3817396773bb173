//go:build cgo

package desktop

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"
)

// RobotDriver drives the local GUI through robotgo.
type RobotDriver struct{}

// NewRobotDriver returns the robotgo-backed driver.
func NewRobotDriver() (*RobotDriver, error) {
	return &RobotDriver{}, nil
}

func (RobotDriver) ScreenSize() (int, int, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("no screen available (got %dx%d)", w, h)
	}
	return w, h, nil
}

func (RobotDriver) CursorPosition() (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}

func (RobotDriver) MoveTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (RobotDriver) ButtonDown(b Button) error {
	return robotgo.Toggle(string(b), "down")
}

func (RobotDriver) ButtonUp(b Button) error {
	return robotgo.Toggle(string(b), "up")
}

func (RobotDriver) Click(b Button, double bool) error {
	robotgo.Click(string(b), double)
	return nil
}

func (RobotDriver) Scroll(clicks int) error {
	robotgo.Scroll(0, clicks)
	return nil
}

// HScroll never reports ErrUnsupported: robotgo scrolls horizontally on
// every platform it builds for (wheel tilt on Windows and macOS, buttons 6
// and 7 on X11). The shift+scroll fallback serves drivers that cannot.
func (RobotDriver) HScroll(clicks int) error {
	robotgo.Scroll(clicks, 0)
	return nil
}

func (RobotDriver) KeyDown(key string) error {
	return robotgo.KeyToggle(key, "down")
}

func (RobotDriver) KeyUp(key string) error {
	return robotgo.KeyToggle(key, "up")
}

func (RobotDriver) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

func (RobotDriver) Capture(rect image.Rectangle) (image.Image, error) {
	img, err := robotgo.CaptureImg(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy())
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}
