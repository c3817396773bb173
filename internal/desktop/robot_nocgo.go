//go:build !cgo

package desktop

import "fmt"

// RobotDriver is unavailable without cgo.
type RobotDriver struct{ unsupportedDriver }

// NewRobotDriver fails: GUI automation needs a cgo build.
func NewRobotDriver() (*RobotDriver, error) {
	return nil, fmt.Errorf("GUI automation requires a cgo build: %w", ErrUnsupported)
}
