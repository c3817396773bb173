package desktop

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"
)

// tweenStep is the interval between intermediate cursor positions of a
// timed move or drag.
const tweenStep = 10 * time.Millisecond

// Controller runs one GUI action at a time against a Driver, adding timed
// moves, typing intervals and the corner fail-safe.
type Controller struct {
	driver   Driver
	failSafe bool
	sleep    func(context.Context, time.Duration) error

	mu sync.Mutex
}

// NewController wraps driver. With failSafe set every input action is
// refused while the cursor sits in a screen corner.
func NewController(driver Driver, failSafe bool) *Controller {
	return &Controller{driver: driver, failSafe: failSafe, sleep: sleepContext}
}

// SetSleep replaces the function used to wait between steps.
func (c *Controller) SetSleep(fn func(context.Context, time.Duration) error) {
	c.sleep = fn
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// checkFailSafe refuses to act while the cursor is in a corner of the
// screen.
func (c *Controller) checkFailSafe() error {
	if !c.failSafe {
		return nil
	}
	w, h, err := c.driver.ScreenSize()
	if err != nil {
		return fmt.Errorf("screen size: %w", err)
	}
	x, y, err := c.driver.CursorPosition()
	if err != nil {
		return fmt.Errorf("cursor position: %w", err)
	}
	if (x == 0 || x == w-1) && (y == 0 || y == h-1) {
		return ErrFailSafe
	}
	return nil
}

// ScreenSize returns the primary screen size.
func (c *Controller) ScreenSize() (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver.ScreenSize()
}

// Position returns the cursor position.
func (c *Controller) Position() (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver.CursorPosition()
}

// MoveTo moves the cursor to (x, y) over duration.
func (c *Controller) MoveTo(ctx context.Context, x, y int, duration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	return c.tween(ctx, x, y, duration)
}

// MoveRelative moves the cursor by (dx, dy) over duration.
func (c *Controller) MoveRelative(ctx context.Context, dx, dy int, duration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	x, y, err := c.driver.CursorPosition()
	if err != nil {
		return fmt.Errorf("cursor position: %w", err)
	}
	return c.tween(ctx, x+dx, y+dy, duration)
}

// tween moves the cursor in a straight line, one step every tweenStep.
func (c *Controller) tween(ctx context.Context, x, y int, duration time.Duration) error {
	steps := int(duration / tweenStep)
	if steps > 1 {
		sx, sy, err := c.driver.CursorPosition()
		if err != nil {
			return fmt.Errorf("cursor position: %w", err)
		}
		for i := 1; i < steps; i++ {
			ix := sx + (x-sx)*i/steps
			iy := sy + (y-sy)*i/steps
			if err := c.driver.MoveTo(ix, iy); err != nil {
				return err
			}
			if err := c.sleep(ctx, tweenStep); err != nil {
				return err
			}
		}
	}
	return c.driver.MoveTo(x, y)
}

// Click moves to (x, y) and clicks button.
func (c *Controller) Click(x, y int, b Button, double bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	if err := c.driver.MoveTo(x, y); err != nil {
		return err
	}
	return c.driver.Click(b, double)
}

// moveIfSet jumps to at when given.
func (c *Controller) moveIfSet(at *image.Point) error {
	if at == nil {
		return nil
	}
	return c.driver.MoveTo(at.X, at.Y)
}

// Scroll scrolls vertically at the optional position; positive clicks
// scroll up.
func (c *Controller) Scroll(clicks int, at *image.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	if err := c.moveIfSet(at); err != nil {
		return err
	}
	return c.driver.Scroll(clicks)
}

// HScroll scrolls horizontally at the optional position; positive clicks
// scroll right. When the driver has no horizontal wheel it holds shift
// while scrolling vertically and reports viaShift.
func (c *Controller) HScroll(clicks int, at *image.Point) (viaShift bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return false, err
	}
	if err := c.moveIfSet(at); err != nil {
		return false, err
	}

	err = c.driver.HScroll(clicks)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrUnsupported) {
		return false, err
	}

	if err := c.driver.KeyDown("shift"); err != nil {
		return true, err
	}
	scrollErr := c.driver.Scroll(clicks)
	upErr := c.driver.KeyUp("shift")
	if scrollErr != nil {
		return true, scrollErr
	}
	return true, upErr
}

// ButtonDown presses b, first moving to the optional position.
func (c *Controller) ButtonDown(b Button, at *image.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	if err := c.moveIfSet(at); err != nil {
		return err
	}
	return c.driver.ButtonDown(b)
}

// ButtonUp releases b, first moving to the optional position.
func (c *Controller) ButtonUp(b Button, at *image.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	if err := c.moveIfSet(at); err != nil {
		return err
	}
	return c.driver.ButtonUp(b)
}

// Drag presses b, moves by (dx, dy) over duration and releases. The drag
// starts at start when given, else at the current position.
func (c *Controller) Drag(ctx context.Context, dx, dy int, duration time.Duration, b Button, start *image.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	if err := c.moveIfSet(start); err != nil {
		return err
	}
	x, y, err := c.driver.CursorPosition()
	if err != nil {
		return fmt.Errorf("cursor position: %w", err)
	}
	return c.drag(ctx, x+dx, y+dy, duration, b)
}

// DragTo presses b, moves to (x, y) over duration and releases.
func (c *Controller) DragTo(ctx context.Context, x, y int, duration time.Duration, b Button, start *image.Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	if err := c.moveIfSet(start); err != nil {
		return err
	}
	return c.drag(ctx, x, y, duration, b)
}

// drag always releases the button once it was pressed, even when the move
// fails part way.
func (c *Controller) drag(ctx context.Context, x, y int, duration time.Duration, b Button) error {
	if err := c.driver.ButtonDown(b); err != nil {
		return err
	}
	moveErr := c.tween(ctx, x, y, duration)
	upErr := c.driver.ButtonUp(b)
	if moveErr != nil {
		return moveErr
	}
	return upErr
}

// TypeText types text one character at a time, waiting interval between
// characters.
func (c *Controller) TypeText(ctx context.Context, text string, interval time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	if interval <= 0 {
		return c.driver.TypeText(text)
	}
	first := true
	for _, r := range text {
		if !first {
			if err := c.sleep(ctx, interval); err != nil {
				return err
			}
		}
		first = false
		if err := c.driver.TypeText(string(r)); err != nil {
			return err
		}
	}
	return nil
}

// Hotkey presses keys in order and releases them in reverse order. Keys
// already pressed are released even when a later press fails.
func (c *Controller) Hotkey(keys []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(keys) == 0 {
		return errors.New("no keys given")
	}
	if err := c.checkFailSafe(); err != nil {
		return err
	}

	pressed := make([]string, 0, len(keys))
	var pressErr error
	for _, k := range keys {
		if err := c.driver.KeyDown(NormalizeKey(k)); err != nil {
			pressErr = fmt.Errorf("press %s: %w", k, err)
			break
		}
		pressed = append(pressed, NormalizeKey(k))
	}
	var releaseErr error
	for i := len(pressed) - 1; i >= 0; i-- {
		if err := c.driver.KeyUp(pressed[i]); err != nil && releaseErr == nil {
			releaseErr = fmt.Errorf("release %s: %w", pressed[i], err)
		}
	}
	if pressErr != nil {
		return pressErr
	}
	return releaseErr
}

// KeyDown holds key down.
func (c *Controller) KeyDown(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	return c.driver.KeyDown(NormalizeKey(key))
}

// KeyUp releases key.
func (c *Controller) KeyUp(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkFailSafe(); err != nil {
		return err
	}
	return c.driver.KeyUp(NormalizeKey(key))
}

// CaptureScreen grabs the whole primary screen.
func (c *Controller) CaptureScreen() (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, h, err := c.driver.ScreenSize()
	if err != nil {
		return nil, fmt.Errorf("screen size: %w", err)
	}
	return c.driver.Capture(image.Rect(0, 0, w, h))
}

// Capture grabs the screen pixels inside rect, which must have a positive
// size.
func (c *Controller) Capture(rect image.Rectangle) (image.Image, error) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, fmt.Errorf("capture region must have positive width and height, got %dx%d", rect.Dx(), rect.Dy())
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver.Capture(rect)
}
