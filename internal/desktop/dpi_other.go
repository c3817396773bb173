//go:build !windows

package desktop

// EnableDPIAwareness is a no-op outside Windows.
func EnableDPIAwareness() error {
	return nil
}
