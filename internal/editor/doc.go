// Package editor implements the editor bridge: MCP tools that drive a
// running Godot editor through its TCP plugin.
//
// Every tool builds one JSON command object ({"cmd": ..., ...}), sends it
// over a fresh connection, reads a single JSON response and closes the
// connection. The plugin answers with {"status": "ok"|"error", ...} and the
// payload is rendered as a short text block prefixed with ✓ or ✗.
package editor
