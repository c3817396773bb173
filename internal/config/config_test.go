package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BRIDGE_LOG_LEVEL", "BRIDGE_LOG_FILE", "MCP_TRANSPORT", "MCP_HOST", "MCP_PORT",
		"MCP_RATE_LIMIT", "MCP_RATE_BURST", "DESKTOP_DIR", "DESKTOP_SCREENSHOT_DIR",
		"DESKTOP_FAIL_SAFE", "DESKTOP_OCR_LANGUAGE", "DESKTOP_TESSDATA_DIR", "GODOT_HOST", "GODOT_PORT",
		"GODOT_CONNECT_TIMEOUT", "GODOT_READ_TIMEOUT", "GODOT_PROJECT_DIR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Transport != TransportStdio {
		t.Errorf("Transport: got %s, want stdio", cfg.Transport)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %s, want info", cfg.LogLevel)
	}
	if cfg.Editor.Host != "localhost" || cfg.Editor.Port != 4242 {
		t.Errorf("Editor: got %s:%d, want localhost:4242", cfg.Editor.Host, cfg.Editor.Port)
	}
	if cfg.Editor.ConnectTimeout != 15*time.Second {
		t.Errorf("ConnectTimeout: got %v, want 15s", cfg.Editor.ConnectTimeout)
	}
	if cfg.Editor.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout: got %v, want 5s", cfg.Editor.ReadTimeout)
	}
	if !cfg.Desktop.FailSafe {
		t.Error("FailSafe should default to true")
	}
	if filepath.Base(cfg.Desktop.Dir) != "Desktop" {
		t.Errorf("Desktop.Dir: got %s, want .../Desktop", cfg.Desktop.Dir)
	}
	if cfg.HTTPAddress() != "127.0.0.1:8000" {
		t.Errorf("HTTPAddress: got %s", cfg.HTTPAddress())
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level: debug
transport: http
port: 9100
desktop:
  dir: /tmp/desk
  fail_safe: false
  tessdata_dir: /usr/share/tessdata
editor:
  host: 10.0.0.5
  port: 5000
  read_timeout: 2s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %s, want debug", cfg.LogLevel)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("Transport: got %s, want http", cfg.Transport)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port: got %d, want 9100", cfg.Port)
	}
	if cfg.Desktop.Dir != "/tmp/desk" {
		t.Errorf("Desktop.Dir: got %s", cfg.Desktop.Dir)
	}
	if cfg.Desktop.FailSafe {
		t.Error("FailSafe: got true, want false")
	}
	if cfg.Desktop.TessdataDir != "/usr/share/tessdata" {
		t.Errorf("TessdataDir: got %q", cfg.Desktop.TessdataDir)
	}
	if cfg.Editor.Host != "10.0.0.5" || cfg.Editor.Port != 5000 {
		t.Errorf("Editor: got %s:%d", cfg.Editor.Host, cfg.Editor.Port)
	}
	if cfg.Editor.ReadTimeout != 2*time.Second {
		t.Errorf("ReadTimeout: got %v, want 2s", cfg.Editor.ReadTimeout)
	}
	// Untouched keys keep their defaults
	if cfg.Editor.ConnectTimeout != 15*time.Second {
		t.Errorf("ConnectTimeout: got %v, want 15s", cfg.Editor.ConnectTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "editor:\n  port: 5000\n")
	t.Setenv("GODOT_PORT", "6000")
	t.Setenv("GODOT_CONNECT_TIMEOUT", "3s")
	t.Setenv("DESKTOP_DIR", "/srv/desk")
	t.Setenv("DESKTOP_TESSDATA_DIR", "/opt/tessdata")
	t.Setenv("MCP_TRANSPORT", "SSE")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Editor.Port != 6000 {
		t.Errorf("Editor.Port: got %d, want 6000", cfg.Editor.Port)
	}
	if cfg.Editor.ConnectTimeout != 3*time.Second {
		t.Errorf("ConnectTimeout: got %v, want 3s", cfg.Editor.ConnectTimeout)
	}
	if cfg.Desktop.Dir != "/srv/desk" {
		t.Errorf("Desktop.Dir: got %s", cfg.Desktop.Dir)
	}
	if cfg.Desktop.TessdataDir != "/opt/tessdata" {
		t.Errorf("TessdataDir: got %q", cfg.Desktop.TessdataDir)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("sse alias: got %s, want http", cfg.Transport)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"transport", map[string]string{"MCP_TRANSPORT": "websocket"}, "invalid transport"},
		{"log level", map[string]string{"BRIDGE_LOG_LEVEL": "loud"}, "invalid log level"},
		{"editor port", map[string]string{"GODOT_PORT": "70000"}, "invalid editor port"},
		{"http port", map[string]string{"MCP_TRANSPORT": "http", "MCP_PORT": "0"}, "invalid port"},
		{"timeout", map[string]string{"GODOT_READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{"rate", map[string]string{"MCP_RATE_LIMIT": "-1"}, "rate limit"},
		{"bad duration", map[string]string{"GODOT_READ_TIMEOUT": "soon"}, "parse env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "editor: [not, a, map\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
