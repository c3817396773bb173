package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

// echoToolset is a small in-memory toolset used to exercise the runtime.
type echoToolset struct {
	calls []string
}

func (e *echoToolset) Tools() []Tool {
	return []Tool{
		{
			Name:        "echo",
			Description: "Echo the text argument",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{"type": "string"},
				},
				"required": []string{"text"},
			},
			ReadOnly: true,
		},
		{
			Name:        "fail_json",
			InputSchema: map[string]interface{}{"type": "object"},
			Errors:      JSONError,
		},
		{
			Name:        "fail_marked",
			InputSchema: map[string]interface{}{"type": "object"},
			Errors:      MarkedError,
		},
		{
			Name:        "boom",
			InputSchema: map[string]interface{}{"type": "object"},
		},
	}
}

func (e *echoToolset) Execute(_ context.Context, name string, args json.RawMessage) (*mcp.CallToolResult, error) {
	e.calls = append(e.calls, name)
	switch name {
	case "echo":
		var a struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
		return TextResult(a.Text), nil
	case "fail_json", "fail_marked":
		return nil, errors.New("host unavailable")
	case "boom":
		panic("driver exploded")
	}
	return nil, errors.New("unknown tool: " + name)
}

func newTestServer(t *testing.T) (*Server, *echoToolset) {
	t.Helper()
	tools := &echoToolset{}
	srv, err := New(Options{Name: "test-bridge", Version: "v0.0.1", Logger: zerolog.Nop()}, tools)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return srv, tools
}

func TestCallTool_Success(t *testing.T) {
	srv, _ := newTestServer(t)

	result := srv.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"hello"}`))
	if result.IsError {
		t.Fatalf("unexpected error result: %s", ResultText(result))
	}
	if got := ResultText(result); got != "hello" {
		t.Errorf("got %q, want hello", got)
	}
}

func TestCallTool_MissingRequiredArgument(t *testing.T) {
	srv, tools := newTestServer(t)

	for _, args := range []string{``, `null`, `{}`, `{"text":null}`} {
		result := srv.CallTool(context.Background(), "echo", json.RawMessage(args))
		if !result.IsError {
			t.Fatalf("args %q: expected error result", args)
		}
		if got := ResultText(result); got != "Error: missing required argument(s): text" {
			t.Errorf("args %q: got %q", args, got)
		}
	}
	if len(tools.calls) != 0 {
		t.Errorf("toolset should not run without required args, ran %v", tools.calls)
	}
}

func TestCallTool_ErrorStyles(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		tool string
		want string
	}{
		{"fail_json", "{\n  \"error\": \"host unavailable\"\n}"},
		{"fail_marked", "✗ Error: host unavailable"},
		{"missing_tool", "Error: unknown tool: missing_tool"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			result := srv.CallTool(context.Background(), tt.tool, nil)
			if !result.IsError {
				t.Fatal("expected error result")
			}
			if got := ResultText(result); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallTool_RecoversPanic(t *testing.T) {
	srv, _ := newTestServer(t)

	result := srv.CallTool(context.Background(), "boom", nil)
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if got := ResultText(result); !strings.Contains(got, "driver exploded") {
		t.Errorf("panic message not reported: %q", got)
	}
}

func TestCallTool_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	srv.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"a"}`))
	srv.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"b"}`))
	srv.CallTool(context.Background(), "fail_json", nil)

	if got := testutil.ToFloat64(srv.Metrics().calls.WithLabelValues("test-bridge", "echo", "ok")); got != 2 {
		t.Errorf("echo ok calls: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(srv.Metrics().calls.WithLabelValues("test-bridge", "fail_json", "error")); got != 1 {
		t.Errorf("fail_json error calls: got %v, want 1", got)
	}
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name  string
		tools []Tool
	}{
		{"duplicate", []Tool{
			{Name: "a", InputSchema: map[string]interface{}{"type": "object"}},
			{Name: "a", InputSchema: map[string]interface{}{"type": "object"}},
		}},
		{"empty name", []Tool{{InputSchema: map[string]interface{}{"type": "object"}}}},
		{"no schema", []Tool{{Name: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(Options{Name: "x", Logger: zerolog.Nop()}, staticToolset(tt.tools)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

type staticToolset []Tool

func (s staticToolset) Tools() []Tool { return s }

func (s staticToolset) Execute(context.Context, string, json.RawMessage) (*mcp.CallToolResult, error) {
	return TextResult("ok"), nil
}

func connectClient(t *testing.T, srv *Server) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.serve(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestMCPSession_ListAndCall(t *testing.T) {
	srv, _ := newTestServer(t)
	session := connectClient(t, srv)
	ctx := context.Background()

	list, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(list.Tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(list.Tools))
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]interface{}{"text": "over the wire"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", ResultText(result))
	}
	if got := ResultText(result); got != "over the wire" {
		t.Errorf("got %q, want %q", got, "over the wire")
	}

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "fail_marked",
		Arguments: map[string]interface{}{},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError for failing tool")
	}
}

func TestServe_StopsOnContext(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.serve(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer session.Close()

	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q, want short", got)
	}
	if got := truncate("✓ abcdef", 3); got != "✓ a..." {
		t.Errorf("got %q, want %q", got, "✓ a...")
	}
}
