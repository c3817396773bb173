package desktop_test

import (
	"context"
	"errors"
	"image"
	"reflect"
	"testing"
	"time"

	"github.com/ironsheep/host-bridge-mcp/internal/desktop"
	"github.com/ironsheep/host-bridge-mcp/internal/desktop/desktoptest"
)

// newController returns a controller over a 1920x1080 fake whose sleeps are
// recorded instead of waited.
func newController(t *testing.T, failSafe bool) (*desktop.Controller, *desktoptest.FakeDriver, *[]time.Duration) {
	t.Helper()
	fake := desktoptest.New(1920, 1080)
	c := desktop.NewController(fake, failSafe)
	var sleeps []time.Duration
	c.SetSleep(func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return ctx.Err()
	})
	return c, fake, &sleeps
}

func TestFailSafe(t *testing.T) {
	corners := []image.Point{{0, 0}, {1919, 0}, {0, 1079}, {1919, 1079}}
	for _, p := range corners {
		c, fake, _ := newController(t, true)
		fake.X, fake.Y = p.X, p.Y

		if err := c.MoveTo(context.Background(), 10, 10, 0); !errors.Is(err, desktop.ErrFailSafe) {
			t.Errorf("cursor at %v: got %v, want ErrFailSafe", p, err)
		}
		if err := c.Click(10, 10, desktop.ButtonLeft, false); !errors.Is(err, desktop.ErrFailSafe) {
			t.Errorf("click with cursor at %v: got %v, want ErrFailSafe", p, err)
		}
		if len(fake.Moves) != 0 {
			t.Errorf("cursor at %v: driver moved %v", p, fake.Moves)
		}
	}

	// Edges that are not corners are fine.
	c, fake, _ := newController(t, true)
	fake.X, fake.Y = 0, 500
	if err := c.MoveTo(context.Background(), 10, 10, 0); err != nil {
		t.Fatalf("edge position refused: %v", err)
	}

	// Disabled fail-safe never refuses.
	c, fake, _ = newController(t, false)
	fake.X, fake.Y = 0, 0
	if err := c.MoveTo(context.Background(), 10, 10, 0); err != nil {
		t.Fatalf("fail-safe disabled: %v", err)
	}
}

func TestMoveTo_Tween(t *testing.T) {
	c, fake, sleeps := newController(t, true)
	fake.X, fake.Y = 50, 50

	if err := c.MoveTo(context.Background(), 100, 100, 50*time.Millisecond); err != nil {
		t.Fatalf("MoveTo failed: %v", err)
	}

	want := []image.Point{{60, 60}, {70, 70}, {80, 80}, {90, 90}, {100, 100}}
	if !reflect.DeepEqual(fake.Moves, want) {
		t.Errorf("moves: got %v, want %v", fake.Moves, want)
	}
	if len(*sleeps) != 4 {
		t.Errorf("sleeps: got %d, want 4", len(*sleeps))
	}
	for _, d := range *sleeps {
		if d != 10*time.Millisecond {
			t.Errorf("sleep step: got %v, want 10ms", d)
		}
	}
}

func TestMoveTo_Instant(t *testing.T) {
	c, fake, sleeps := newController(t, true)

	if err := c.MoveTo(context.Background(), 300, 200, 0); err != nil {
		t.Fatalf("MoveTo failed: %v", err)
	}
	if want := []image.Point{{300, 200}}; !reflect.DeepEqual(fake.Moves, want) {
		t.Errorf("moves: got %v, want %v", fake.Moves, want)
	}
	if len(*sleeps) != 0 {
		t.Errorf("unexpected sleeps: %v", *sleeps)
	}
}

func TestMoveTo_Cancelled(t *testing.T) {
	c, fake, _ := newController(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.MoveTo(ctx, 100, 100, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if len(fake.Moves) != 1 {
		t.Errorf("expected the move to stop after the first step, got %v", fake.Moves)
	}
}

func TestMoveRelative(t *testing.T) {
	c, fake, _ := newController(t, true)
	fake.X, fake.Y = 100, 100

	if err := c.MoveRelative(context.Background(), 25, -40, 0); err != nil {
		t.Fatalf("MoveRelative failed: %v", err)
	}
	if fake.X != 125 || fake.Y != 60 {
		t.Errorf("position: got (%d, %d), want (125, 60)", fake.X, fake.Y)
	}
}

func TestClick(t *testing.T) {
	c, fake, _ := newController(t, true)

	if err := c.Click(10, 20, desktop.ButtonRight, false); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if err := c.Click(30, 40, desktop.ButtonLeft, true); err != nil {
		t.Fatalf("double Click failed: %v", err)
	}

	want := []string{"click:right@10,20", "dblclick:left@30,40"}
	if got := fake.CallLog(); !reflect.DeepEqual(got, want) {
		t.Errorf("calls: got %v, want %v", got, want)
	}
}

func TestScroll(t *testing.T) {
	c, fake, _ := newController(t, true)

	if err := c.Scroll(-3, nil); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	if err := c.Scroll(2, &image.Point{X: 400, Y: 300}); err != nil {
		t.Fatalf("Scroll at failed: %v", err)
	}

	if want := []string{"scroll:-3", "scroll:2"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
	if want := []image.Point{{400, 300}}; !reflect.DeepEqual(fake.Moves, want) {
		t.Errorf("moves: got %v, want %v", fake.Moves, want)
	}
}

func TestHScroll(t *testing.T) {
	c, fake, _ := newController(t, true)

	viaShift, err := c.HScroll(4, nil)
	if err != nil {
		t.Fatalf("HScroll failed: %v", err)
	}
	if viaShift {
		t.Error("native horizontal scroll reported as shift fallback")
	}
	if want := []string{"hscroll:4"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
}

func TestHScroll_ShiftFallback(t *testing.T) {
	c, fake, _ := newController(t, true)
	fake.NoHScroll = true

	viaShift, err := c.HScroll(-2, nil)
	if err != nil {
		t.Fatalf("HScroll failed: %v", err)
	}
	if !viaShift {
		t.Error("expected shift fallback")
	}
	want := []string{"keydown:shift", "scroll:-2", "keyup:shift"}
	if !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
}

func TestHScroll_ShiftReleasedOnError(t *testing.T) {
	c, fake, _ := newController(t, true)
	fake.NoHScroll = true
	fake.Fail["scroll"] = errors.New("wheel jammed")

	if _, err := c.HScroll(1, nil); err == nil {
		t.Fatal("expected the scroll error")
	}
	calls := fake.CallLog()
	if calls[len(calls)-1] != "keyup:shift" {
		t.Errorf("shift not released: %v", calls)
	}
}

func TestButtonDownUp(t *testing.T) {
	c, fake, _ := newController(t, true)

	if err := c.ButtonDown(desktop.ButtonMiddle, &image.Point{X: 5, Y: 6}); err != nil {
		t.Fatalf("ButtonDown failed: %v", err)
	}
	if err := c.ButtonUp(desktop.ButtonMiddle, nil); err != nil {
		t.Fatalf("ButtonUp failed: %v", err)
	}
	if want := []string{"down:middle", "up:middle"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
	if fake.X != 5 || fake.Y != 6 {
		t.Errorf("position: got (%d, %d), want (5, 6)", fake.X, fake.Y)
	}
}

func TestDrag(t *testing.T) {
	c, fake, _ := newController(t, true)

	start := image.Point{X: 100, Y: 200}
	if err := c.Drag(context.Background(), 50, -20, 0, desktop.ButtonLeft, &start); err != nil {
		t.Fatalf("Drag failed: %v", err)
	}

	if want := []string{"down:left", "up:left"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
	if want := []image.Point{{100, 200}, {150, 180}}; !reflect.DeepEqual(fake.Moves, want) {
		t.Errorf("moves: got %v, want %v", fake.Moves, want)
	}
}

func TestDragTo(t *testing.T) {
	c, fake, sleeps := newController(t, true)
	fake.X, fake.Y = 10, 10

	if err := c.DragTo(context.Background(), 40, 10, 30*time.Millisecond, desktop.ButtonRight, nil); err != nil {
		t.Fatalf("DragTo failed: %v", err)
	}
	if want := []image.Point{{20, 10}, {30, 10}, {40, 10}}; !reflect.DeepEqual(fake.Moves, want) {
		t.Errorf("moves: got %v, want %v", fake.Moves, want)
	}
	if len(*sleeps) != 2 {
		t.Errorf("sleeps: got %d, want 2", len(*sleeps))
	}
	if want := []string{"down:right", "up:right"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
}

func TestDrag_ReleasesOnMoveError(t *testing.T) {
	c, fake, _ := newController(t, true)
	fake.Fail["move"] = errors.New("cursor stuck")

	err := c.DragTo(context.Background(), 40, 10, 0, desktop.ButtonLeft, nil)
	if err == nil || err.Error() != "cursor stuck" {
		t.Fatalf("got %v, want the move error", err)
	}
	if want := []string{"down:left", "up:left"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("button not released: %v", fake.CallLog())
	}
}

func TestTypeText(t *testing.T) {
	c, fake, sleeps := newController(t, true)

	if err := c.TypeText(context.Background(), "héy", 100*time.Millisecond); err != nil {
		t.Fatalf("TypeText failed: %v", err)
	}
	if want := []string{"type:h", "type:é", "type:y"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
	if want := []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}; !reflect.DeepEqual(*sleeps, want) {
		t.Errorf("sleeps: got %v, want %v", *sleeps, want)
	}
	if fake.Typed != "héy" {
		t.Errorf("typed: got %q", fake.Typed)
	}
}

func TestTypeText_NoInterval(t *testing.T) {
	c, fake, _ := newController(t, true)

	if err := c.TypeText(context.Background(), "hello", 0); err != nil {
		t.Fatalf("TypeText failed: %v", err)
	}
	if want := []string{"type:hello"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
}

func TestHotkey(t *testing.T) {
	c, fake, _ := newController(t, true)

	if err := c.Hotkey([]string{"Ctrl", "shift", "esc"}); err != nil {
		t.Fatalf("Hotkey failed: %v", err)
	}
	want := []string{
		"keydown:ctrl", "keydown:shift", "keydown:escape",
		"keyup:escape", "keyup:shift", "keyup:ctrl",
	}
	if !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
}

func TestHotkey_PressFailureReleasesPressed(t *testing.T) {
	c, fake, _ := newController(t, true)
	fake.Fail["keydown:s"] = errors.New("unknown key")

	err := c.Hotkey([]string{"ctrl", "alt", "s"})
	if err == nil {
		t.Fatal("expected an error")
	}
	want := []string{"keydown:ctrl", "keydown:alt", "keydown:s", "keyup:alt", "keyup:ctrl"}
	if !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
}

func TestHotkey_Empty(t *testing.T) {
	c, _, _ := newController(t, true)
	if err := c.Hotkey(nil); err == nil {
		t.Fatal("expected an error for no keys")
	}
}

func TestKeyDownUp(t *testing.T) {
	c, fake, _ := newController(t, true)

	if err := c.KeyDown("Shift"); err != nil {
		t.Fatalf("KeyDown failed: %v", err)
	}
	if err := c.KeyUp("return"); err != nil {
		t.Fatalf("KeyUp failed: %v", err)
	}
	if want := []string{"keydown:shift", "keyup:enter"}; !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}
}

func TestCapture(t *testing.T) {
	c, fake, _ := newController(t, true)

	img, err := c.CaptureScreen()
	if err != nil {
		t.Fatalf("CaptureScreen failed: %v", err)
	}
	if img.Bounds().Dx() != 1920 || img.Bounds().Dy() != 1080 {
		t.Errorf("screen capture: got %v", img.Bounds())
	}

	img, err = c.Capture(image.Rect(10, 20, 110, 70))
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("region capture: got %v", img.Bounds())
	}

	want := []string{"capture:0,0,1920x1080", "capture:10,20,100x50"}
	if !reflect.DeepEqual(fake.CallLog(), want) {
		t.Errorf("calls: got %v, want %v", fake.CallLog(), want)
	}

	if _, err := c.Capture(image.Rect(10, 10, 10, 50)); err == nil {
		t.Error("expected an error for an empty region")
	}
}

func TestScreenSizeAndPosition(t *testing.T) {
	c, fake, _ := newController(t, true)
	fake.X, fake.Y = 12, 34

	w, h, err := c.ScreenSize()
	if err != nil || w != 1920 || h != 1080 {
		t.Errorf("ScreenSize: got %dx%d, %v", w, h, err)
	}
	x, y, err := c.Position()
	if err != nil || x != 12 || y != 34 {
		t.Errorf("Position: got (%d, %d), %v", x, y, err)
	}
}
