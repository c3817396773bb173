//go:build windows

package editor

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// isConnRefused also matches the Winsock code, which syscall.ECONNREFUSED
// does not cover on Windows.
func isConnRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, windows.WSAECONNREFUSED)
}
