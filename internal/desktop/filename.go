package desktop

import "strings"

// ScreenshotName cleans a caller supplied screenshot file name. Names not
// ending in .jpg or .jpeg get their last extension replaced by .jpg. Empty
// names and names that could leave the screenshot directory become fallback.
func ScreenshotName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	if !strings.HasSuffix(name, ".jpg") && !strings.HasSuffix(name, ".jpeg") {
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[:i]
		}
		name += ".jpg"
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fallback
	}
	return name
}
