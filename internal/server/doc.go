// Package server hosts a bridge's tools behind the MCP (Model Context Protocol)
// runtime from github.com/modelcontextprotocol/go-sdk.
//
// A bridge supplies a [Toolset]: a static table of [Tool] definitions plus an
// Execute method that dispatches a call by name. The server registers every
// tool with the SDK and wraps each call so that:
//
//   - required arguments listed in the tool's input schema are checked first;
//   - errors and recovered panics become results with IsError set, rendered
//     in the tool's [ErrorStyle];
//   - every call is logged with a call id and counted in Prometheus metrics.
//
// # Transports
//
// Two transports are supported, selected by configuration:
//
//   - stdio: JSON-RPC over stdin/stdout, the default for desktop MCP clients
//   - http: the streamable HTTP transport on /mcp, plus /health and /metrics
//
// In HTTP mode an optional token bucket limits /mcp requests; /health and
// /metrics are never limited.
package server
