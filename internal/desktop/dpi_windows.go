//go:build windows

package desktop

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// processSystemDPIAware is PROCESS_SYSTEM_DPI_AWARE in shcore.h.
const processSystemDPIAware = 1

// EnableDPIAwareness makes the process DPI aware so that cursor coordinates
// and captures use physical pixels. It prefers shcore's
// SetProcessDpiAwareness (Windows 8.1+) and falls back to user32's
// SetProcessDPIAware.
func EnableDPIAwareness() error {
	shcore := windows.NewLazySystemDLL("shcore.dll")
	proc := shcore.NewProc("SetProcessDpiAwareness")
	if err := proc.Find(); err == nil {
		hr, _, _ := proc.Call(uintptr(processSystemDPIAware))
		if hr == 0 {
			return nil
		}
	}

	user32 := windows.NewLazySystemDLL("user32.dll")
	legacy := user32.NewProc("SetProcessDPIAware")
	if err := legacy.Find(); err != nil {
		return fmt.Errorf("no DPI awareness API available: %w", err)
	}
	if ok, _, callErr := legacy.Call(); ok == 0 {
		return fmt.Errorf("SetProcessDPIAware failed: %w", callErr)
	}
	return nil
}
