package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TextResult creates a successful plain text result.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// JSONResult creates a successful result whose text is the indented JSON
// encoding of payload.
func JSONResult(payload interface{}) *mcp.CallToolResult {
	return TextResult(MarshalIndent(payload))
}

// ErrorResult renders err in the given style with IsError set.
func ErrorResult(style ErrorStyle, err error) *mcp.CallToolResult {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	var text string
	switch style {
	case JSONError:
		text = MarshalIndent(map[string]string{"error": msg})
	case MarkedError:
		text = "✗ Error: " + msg
	default:
		text = "Error: " + msg
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// ResultText concatenates the text content of a result.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var buf bytes.Buffer
	for _, c := range result.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			buf.WriteString(tc.Text)
		}
	}
	return buf.String()
}

// MarshalIndent encodes v as two-space indented JSON without HTML escaping.
// Encoding failures are rendered as a JSON error object.
func MarshalIndent(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal: %s"}`, err.Error())
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
