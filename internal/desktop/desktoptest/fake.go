// Package desktoptest provides an in-memory desktop.Driver for tests.
package desktoptest

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/ironsheep/host-bridge-mcp/internal/desktop"
)

// FakeDriver records every call it receives and keeps a cursor position
// and a screen image in memory.
type FakeDriver struct {
	mu sync.Mutex

	Width, Height int
	X, Y          int

	// Screen is returned (cropped) by Capture. When nil a solid image of
	// Fill is generated on demand.
	Screen *image.NRGBA
	Fill   color.Color

	// NoHScroll makes HScroll report desktop.ErrUnsupported.
	NoHScroll bool

	// Fail maps an operation name (as recorded in Calls) to the error it
	// returns.
	Fail map[string]error

	Calls []string
	Moves []image.Point
	Typed string
}

// New returns a fake screen of the given size with the cursor in the
// middle.
func New(width, height int) *FakeDriver {
	return &FakeDriver{
		Width:  width,
		Height: height,
		X:      width / 2,
		Y:      height / 2,
		Fill:   color.NRGBA{R: 40, G: 80, B: 160, A: 255},
		Fail:   map[string]error{},
	}
}

var _ desktop.Driver = (*FakeDriver)(nil)

func (f *FakeDriver) record(op string) error {
	f.Calls = append(f.Calls, op)
	return f.Fail[op]
}

// CallLog returns a copy of the recorded calls.
func (f *FakeDriver) CallLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

// Reset forgets recorded calls, moves and typed text.
func (f *FakeDriver) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = nil
	f.Moves = nil
	f.Typed = ""
}

func (f *FakeDriver) ScreenSize() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.Fail["size"]; err != nil {
		return 0, 0, err
	}
	return f.Width, f.Height, nil
}

func (f *FakeDriver) CursorPosition() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.Fail["position"]; err != nil {
		return 0, 0, err
	}
	return f.X, f.Y, nil
}

func (f *FakeDriver) MoveTo(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.Fail["move"]; err != nil {
		return err
	}
	f.X, f.Y = x, y
	f.Moves = append(f.Moves, image.Pt(x, y))
	return nil
}

func (f *FakeDriver) ButtonDown(b desktop.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("down:" + string(b))
}

func (f *FakeDriver) ButtonUp(b desktop.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("up:" + string(b))
}

func (f *FakeDriver) Click(b desktop.Button, double bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	op := fmt.Sprintf("click:%s@%d,%d", b, f.X, f.Y)
	if double {
		op = fmt.Sprintf("dblclick:%s@%d,%d", b, f.X, f.Y)
	}
	f.Calls = append(f.Calls, op)
	return f.Fail["click"]
}

func (f *FakeDriver) Scroll(clicks int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, fmt.Sprintf("scroll:%d", clicks))
	return f.Fail["scroll"]
}

func (f *FakeDriver) HScroll(clicks int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.NoHScroll {
		return desktop.ErrUnsupported
	}
	f.Calls = append(f.Calls, fmt.Sprintf("hscroll:%d", clicks))
	return f.Fail["hscroll"]
}

func (f *FakeDriver) KeyDown(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "keydown:"+key)
	return f.Fail["keydown:"+key]
}

func (f *FakeDriver) KeyUp(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "keyup:"+key)
	return f.Fail["keyup:"+key]
}

func (f *FakeDriver) TypeText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.Fail["type"]; err != nil {
		return err
	}
	f.Calls = append(f.Calls, "type:"+text)
	f.Typed += text
	return nil
}

func (f *FakeDriver) Capture(rect image.Rectangle) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, fmt.Sprintf("capture:%d,%d,%dx%d", rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy()))
	if err := f.Fail["capture"]; err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	if f.Screen != nil {
		draw.Draw(out, out.Bounds(), f.Screen, rect.Min, draw.Src)
		return out, nil
	}
	draw.Draw(out, out.Bounds(), &image.Uniform{C: f.Fill}, image.Point{}, draw.Src)
	return out, nil
}
