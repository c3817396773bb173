package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Args is a decoded argument object for tools whose arguments are forwarded
// mostly as-is.
type Args map[string]interface{}

// ParseArgs decodes raw tool arguments. Absent or null arguments decode to
// an empty Args.
func ParseArgs(raw json.RawMessage) (Args, error) {
	args := Args{}
	if err := json.Unmarshal(normalizeArgs(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return args, nil
}

// Has reports whether key is present and not null.
func (a Args) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// Value returns the raw value for key, or def when absent.
func (a Args) Value(key string, def interface{}) interface{} {
	if !a.Has(key) {
		return def
	}
	return a[key]
}

// String reads a string parameter, falling back to def when absent.
func (a Args) String(key, def string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	}
	return def
}

// RequireString reads a string parameter that must be present.
func (a Args) RequireString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", fmt.Errorf("parameter %q is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return s, nil
}

// Float reads a numeric parameter, falling back to def when absent or not a
// number.
func (a Args) Float(key string, def float64) float64 {
	v, ok := a[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

// Int reads an integer parameter, truncating fractional values.
func (a Args) Int(key string, def int) int {
	if !a.Has(key) {
		return def
	}
	return int(a.Float(key, float64(def)))
}

// Bool reads a boolean parameter.
func (a Args) Bool(key string, def bool) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		lower := strings.ToLower(strings.TrimSpace(b))
		return lower == "true" || lower == "1" || lower == "yes"
	case float64:
		return b != 0
	}
	return def
}
