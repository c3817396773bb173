package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorStyle selects how a failed call is rendered for the client.
type ErrorStyle int

const (
	// PlainError renders "Error: <message>".
	PlainError ErrorStyle = iota
	// JSONError renders {"error": "<message>"}.
	JSONError
	// MarkedError renders "✗ Error: <message>".
	MarkedError
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string
	Title       string
	Description string
	InputSchema map[string]interface{}
	// ReadOnly marks tools that observe but never change host state.
	ReadOnly bool
	Errors   ErrorStyle
}

// Toolset is the tool table and dispatcher of one bridge.
type Toolset interface {
	Tools() []Tool
	// Execute runs the named tool. A returned error is rendered in the
	// tool's ErrorStyle by the server.
	Execute(ctx context.Context, name string, args json.RawMessage) (*mcp.CallToolResult, error)
}

// Required returns the argument names the tool's schema marks as required.
func (t Tool) Required() []string {
	switch req := t.InputSchema["required"].(type) {
	case []string:
		return req
	case []interface{}:
		names := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				names = append(names, s)
			}
		}
		return names
	}
	return nil
}

// checkRequired verifies that every required argument is present and not
// null.
func (t Tool) checkRequired(args json.RawMessage) error {
	required := t.Required()
	if len(required) == 0 {
		return nil
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(args, &present); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	var missing []string
	for _, name := range required {
		v, ok := present[name]
		if !ok || string(v) == "null" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required argument(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// validateTools checks a tool table before registration.
func validateTools(tools []Tool) error {
	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if tool.Name == "" {
			return fmt.Errorf("tool with empty name")
		}
		if seen[tool.Name] {
			return fmt.Errorf("duplicate tool: %s", tool.Name)
		}
		seen[tool.Name] = true
		if tool.InputSchema["type"] != "object" {
			return fmt.Errorf("tool %s: input schema must be an object", tool.Name)
		}
	}
	return nil
}

// normalizeArgs turns absent or null arguments into an empty object so that
// handlers can always unmarshal them.
func normalizeArgs(args json.RawMessage) json.RawMessage {
	trimmed := strings.TrimSpace(string(args))
	if trimmed == "" || trimmed == "null" {
		return json.RawMessage("{}")
	}
	return args
}
