package desktop

import "image"

// unsupportedDriver fails every operation with ErrUnsupported.
type unsupportedDriver struct{}

// Unsupported returns a Driver that fails every operation. The desktop
// bridge falls back to it when no input backend is available, keeping the
// file tools usable.
func Unsupported() Driver { return unsupportedDriver{} }

func (unsupportedDriver) ScreenSize() (int, int, error) { return 0, 0, ErrUnsupported }

func (unsupportedDriver) CursorPosition() (int, int, error) { return 0, 0, ErrUnsupported }

func (unsupportedDriver) MoveTo(int, int) error { return ErrUnsupported }

func (unsupportedDriver) ButtonDown(Button) error { return ErrUnsupported }

func (unsupportedDriver) ButtonUp(Button) error { return ErrUnsupported }

func (unsupportedDriver) Click(Button, bool) error { return ErrUnsupported }

func (unsupportedDriver) Scroll(int) error { return ErrUnsupported }

func (unsupportedDriver) HScroll(int) error { return ErrUnsupported }

func (unsupportedDriver) KeyDown(string) error { return ErrUnsupported }

func (unsupportedDriver) KeyUp(string) error { return ErrUnsupported }

func (unsupportedDriver) TypeText(string) error { return ErrUnsupported }

func (unsupportedDriver) Capture(image.Rectangle) (image.Image, error) { return nil, ErrUnsupported }
