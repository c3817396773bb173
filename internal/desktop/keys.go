package desktop

import "strings"

// keyAliases maps common key names onto the names the robotgo driver
// understands.
var keyAliases = map[string]string{
	"win":       "cmd",
	"windows":   "cmd",
	"super":     "cmd",
	"command":   "cmd",
	"option":    "alt",
	"return":    "enter",
	"esc":       "escape",
	"del":       "delete",
	"ins":       "insert",
	"pgup":      "pageup",
	"pgdn":      "pagedown",
	"ctrlleft":  "lctrl",
	"ctrlright": "rctrl",
	"shiftleft": "lshift",
	"altleft":   "lalt",
	"altright":  "ralt",
	"spacebar":  "space",
	" ":         "space",
	"\n":        "enter",
	"\t":        "tab",
}

// NormalizeKey lowercases a key name and resolves aliases. Single characters
// other than whitespace are passed through unchanged.
func NormalizeKey(key string) string {
	if alias, ok := keyAliases[key]; ok {
		return alias
	}
	if len([]rune(key)) == 1 {
		return key
	}
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}
