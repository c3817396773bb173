package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/host-bridge-mcp/internal/config"
	"github.com/ironsheep/host-bridge-mcp/internal/editor"
	"github.com/ironsheep/host-bridge-mcp/internal/logging"
	"github.com/ironsheep/host-bridge-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const instructions = "Godot editor control through the editor's TCP plugin: nodes, scenes, files, " +
	"environment, physics layers, Terrain3D and scripts. Use godot_check_connection first if " +
	"calls fail. Paths inside the project start with res://."

func main() {
	var configPath string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("editor-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a file path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "unknown option: %s (see --help)\n", args[i])
			os.Exit(2)
		}
	}

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "editor-mcp: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("editor-mcp - MCP server for the Godot editor")
	fmt.Println()
	fmt.Println("Usage: editor-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config, -c PATH  Load settings from a YAML file")
	fmt.Println("  --version, -v      Print version information")
	fmt.Println("  --help, -h         Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  BRIDGE_LOG_LEVEL=debug      Log level (trace, debug, info, warn, error)")
	fmt.Println("  BRIDGE_LOG_FILE=path        Also write logs to a file")
	fmt.Println("  MCP_TRANSPORT=http          Serve streamable HTTP instead of stdio")
	fmt.Println("  MCP_HOST, MCP_PORT          HTTP listen address (default 127.0.0.1:8000)")
	fmt.Println("  GODOT_HOST, GODOT_PORT      Editor plugin address (default localhost:4242)")
	fmt.Println("  GODOT_CONNECT_TIMEOUT=15s   Connect timeout")
	fmt.Println("  GODOT_READ_TIMEOUT=5s       Per-chunk read timeout")
	fmt.Println("  GODOT_PROJECT_DIR=path      Project folder, for res:// paths written locally")
	fmt.Println()
	fmt.Println("By default this server communicates via MCP protocol over stdin/stdout.")
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile, "editor")
	if err != nil {
		return err
	}
	defer closer.Close()

	client := editor.NewClient(cfg.Editor, logger)

	logger.Info().
		Str("version", Version).
		Str("editor", client.Address()).
		Str("transport", string(cfg.Transport)).
		Msg("starting editor bridge")

	srv, err := server.New(server.Options{
		Name:         "editor-mcp",
		Version:      Version,
		Instructions: instructions,
		Logger:       logger,
	}, editor.NewService(client, cfg.Editor, logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, cfg)
}
