package editor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is the editor's reply, with each field kept as raw JSON so that
// payloads are re-rendered in the order the editor sent them.
type Response map[string]json.RawMessage

// String returns field key as a string. Non-string values are returned as
// their JSON text; missing or null fields yield def.
func (r Response) String(key, def string) string {
	raw, ok := r[key]
	if !ok || string(raw) == "null" {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// OK reports whether the editor accepted the command.
func (r Response) OK() bool {
	return r.String("status", "") == "ok"
}

// Message is the editor's error or status message.
func (r Response) Message(def string) string {
	return r.String("message", def)
}

// indent renders raw JSON with a two space indent.
func indent(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Format renders a successful response. The first payload field present
// decides the layout; a response without payload shows its message.
func Format(r Response) string {
	if raw, ok := r["tree"]; ok {
		return "✓ Scene tree:\n" + indent(raw)
	}
	if raw, ok := r["files"]; ok {
		return fmt.Sprintf("✓ Files in %s:\n%s", r.String("base_path", ""), indent(raw))
	}
	if raw, ok := r["info"]; ok {
		return "✓ Info:\n" + indent(raw)
	}
	if _, ok := r["content"]; ok {
		return "✓ File content:\n\n" + r.String("content", "")
	}
	if raw, ok := r["data"]; ok {
		return "✓ Data:\n" + indent(raw)
	}
	if raw, ok := r["layers"]; ok {
		return fmt.Sprintf("✓ Configured layers (%s):\n%s", r.String("type", "3D"), indent(raw))
	}
	return "✓ " + r.Message("Action completed successfully")
}

// ResponseError is a command the editor rejected.
type ResponseError struct {
	Command string
	Message string
}

func (e *ResponseError) Error() string {
	return e.Message
}

// Err returns nil for an ok response and a *ResponseError otherwise.
func (r Response) Err(cmd string) error {
	if r.OK() {
		return nil
	}
	return &ResponseError{Command: cmd, Message: r.Message("Unknown error")}
}
