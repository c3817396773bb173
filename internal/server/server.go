package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/ironsheep/host-bridge-mcp/internal/config"
)

// maxLoggedResult bounds how much of a result is copied into log events.
const maxLoggedResult = 200

// Options identify the server to MCP clients.
type Options struct {
	Name         string
	Version      string
	Instructions string
	Logger       zerolog.Logger
}

// Server exposes one Toolset over MCP.
type Server struct {
	name    string
	tools   Toolset
	byName  map[string]Tool
	logger  zerolog.Logger
	metrics *Metrics
	mcp     *mcp.Server
}

// New registers every tool of the toolset with a new MCP server.
func New(opts Options, tools Toolset) (*Server, error) {
	if tools == nil {
		return nil, errors.New("toolset is required")
	}
	defs := tools.Tools()
	if err := validateTools(defs); err != nil {
		return nil, err
	}

	s := &Server{
		name:    opts.Name,
		tools:   tools,
		byName:  make(map[string]Tool, len(defs)),
		logger:  opts.Logger,
		metrics: NewMetrics(opts.Name),
		mcp: mcp.NewServer(
			&mcp.Implementation{Name: opts.Name, Version: opts.Version},
			&mcp.ServerOptions{Instructions: opts.Instructions},
		),
	}

	for _, def := range defs {
		s.byName[def.Name] = def
		s.mcp.AddTool(&mcp.Tool{
			Name:        def.Name,
			Title:       def.Title,
			Description: def.Description,
			InputSchema: def.InputSchema,
			Annotations: &mcp.ToolAnnotations{
				Title:        def.Title,
				ReadOnlyHint: def.ReadOnly,
			},
		}, s.handler(def))
	}
	return s, nil
}

// Metrics returns the server's call metrics.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run serves MCP on the configured transport until ctx is cancelled.
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	switch cfg.Transport {
	case config.TransportHTTP:
		return s.serveHTTP(ctx, cfg.HTTPAddress(), newLimiter(cfg.RateLimit, cfg.RateBurst))
	default:
		s.logger.Info().Int("tools", len(s.byName)).Msg("serving MCP on stdio")
		return s.serve(ctx, &mcp.StdioTransport{})
	}
}

// serve runs the MCP session loop over a single transport.
func (s *Server) serve(ctx context.Context, transport mcp.Transport) error {
	err := s.mcp.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func (s *Server) handler(tool Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args json.RawMessage
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}
		return s.call(ctx, tool, args), nil
	}
}

// CallTool runs a tool by name outside of an MCP session.
func (s *Server) CallTool(ctx context.Context, name string, args json.RawMessage) *mcp.CallToolResult {
	tool, ok := s.byName[name]
	if !ok {
		return ErrorResult(PlainError, fmt.Errorf("unknown tool: %s", name))
	}
	return s.call(ctx, tool, args)
}

// call executes one tool call and never fails: every error becomes an
// error result.
func (s *Server) call(ctx context.Context, tool Tool, args json.RawMessage) *mcp.CallToolResult {
	callID := uuid.NewString()
	start := time.Now()
	log := s.logger.With().Str("tool", tool.Name).Str("call_id", callID).Logger()
	log.Debug().RawJSON("args", normalizeArgs(args)).Msg("tool call")

	result, err := s.execute(ctx, tool, normalizeArgs(args))
	if err != nil {
		result = ErrorResult(tool.Errors, err)
	}

	outcome := "ok"
	if result.IsError {
		outcome = "error"
	}
	elapsed := time.Since(start)
	s.metrics.Observe(tool.Name, outcome, elapsed)

	event := log.Info()
	if result.IsError {
		event = log.Warn()
	}
	event.Str("outcome", outcome).
		Dur("duration", elapsed).
		Str("result", truncate(ResultText(result), maxLoggedResult)).
		Msg("tool call finished")
	return result
}

func (s *Server) execute(ctx context.Context, tool Tool, args json.RawMessage) (result *mcp.CallToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("tool", tool.Name).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("tool panicked")
			result, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := tool.checkRequired(args); err != nil {
		return nil, err
	}
	result, err = s.tools.Execute(ctx, tool.Name, args)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("tool %s returned no result", tool.Name)
	}
	return result, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
