// Package config loads bridge configuration from an optional YAML file and
// the environment.
//
// Values are resolved in three layers: built-in defaults, then the YAML file
// (when a path is given), then environment variables. Environment variables
// always win, so a checked-in config file can be overridden per launch by the
// MCP client that starts the bridge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// TransportType selects how the MCP server talks to its client.
type TransportType string

const (
	// TransportStdio uses stdin/stdout for communication.
	TransportStdio TransportType = "stdio"
	// TransportHTTP serves the streamable HTTP transport.
	TransportHTTP TransportType = "http"
	// transportSSE is accepted as an alias of TransportHTTP.
	transportSSE TransportType = "sse"
)

// Config holds the configuration shared by both bridges.
type Config struct {
	LogLevel  string        `yaml:"log_level" env:"BRIDGE_LOG_LEVEL"`
	LogFile   string        `yaml:"log_file" env:"BRIDGE_LOG_FILE"`
	Transport TransportType `yaml:"transport" env:"MCP_TRANSPORT"`
	Host      string        `yaml:"host" env:"MCP_HOST"`
	Port      int           `yaml:"port" env:"MCP_PORT"`
	RateLimit float64       `yaml:"rate_limit" env:"MCP_RATE_LIMIT"`
	RateBurst int           `yaml:"rate_burst" env:"MCP_RATE_BURST"`

	Desktop Desktop `yaml:"desktop" envPrefix:"DESKTOP_"`
	Editor  Editor  `yaml:"editor" envPrefix:"GODOT_"`
}

// Desktop configures the GUI automation bridge.
type Desktop struct {
	Dir           string `yaml:"dir" env:"DIR"`
	ScreenshotDir string `yaml:"screenshot_dir" env:"SCREENSHOT_DIR"`
	FailSafe      bool   `yaml:"fail_safe" env:"FAIL_SAFE"`
	OCRLanguage   string `yaml:"ocr_language" env:"OCR_LANGUAGE"`
	// TessdataDir overrides Tesseract's language data directory.
	TessdataDir string `yaml:"tessdata_dir" env:"TESSDATA_DIR"`
}

// Editor configures the Godot editor bridge.
type Editor struct {
	Host           string        `yaml:"host" env:"HOST"`
	Port           int           `yaml:"port" env:"PORT"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"CONNECT_TIMEOUT"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	ProjectDir     string        `yaml:"project_dir" env:"PROJECT_DIR"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	desktopDir := "Desktop"
	if home, err := os.UserHomeDir(); err == nil {
		desktopDir = filepath.Join(home, "Desktop")
	}

	return &Config{
		LogLevel:  "info",
		Transport: TransportStdio,
		Host:      "127.0.0.1",
		Port:      8000,
		RateBurst: 10,
		Desktop: Desktop{
			Dir:           desktopDir,
			ScreenshotDir: os.TempDir(),
			FailSafe:      true,
			OCRLanguage:   "eng",
		},
		Editor: Editor{
			Host:           "localhost",
			Port:           4242,
			ConnectTimeout: 15 * time.Second,
			ReadTimeout:    5 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration and folds aliases.
func (c *Config) normalize() error {
	c.Transport = TransportType(strings.ToLower(strings.TrimSpace(string(c.Transport))))
	switch c.Transport {
	case "":
		c.Transport = TransportStdio
	case transportSSE:
		c.Transport = TransportHTTP
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport type: %s (must be 'stdio' or 'http')", c.Transport)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "":
		c.LogLevel = "info"
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.Transport == TransportHTTP && (c.Port <= 0 || c.Port > 65535) {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}
	if c.RateBurst <= 0 {
		c.RateBurst = 1
	}

	if c.Editor.Host == "" {
		return errors.New("editor host cannot be empty")
	}
	if c.Editor.Port <= 0 || c.Editor.Port > 65535 {
		return fmt.Errorf("invalid editor port: %d", c.Editor.Port)
	}
	if c.Editor.ConnectTimeout <= 0 || c.Editor.ReadTimeout <= 0 {
		return errors.New("editor timeouts must be positive")
	}

	if c.Desktop.ScreenshotDir == "" {
		c.Desktop.ScreenshotDir = os.TempDir()
	}
	if c.Desktop.OCRLanguage == "" {
		c.Desktop.OCRLanguage = "eng"
	}
	return nil
}

// HTTPAddress returns the listen address for the HTTP transport.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
