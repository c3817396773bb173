package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/host-bridge-mcp/internal/config"
	"github.com/ironsheep/host-bridge-mcp/internal/desktop"
	"github.com/ironsheep/host-bridge-mcp/internal/gui"
	"github.com/ironsheep/host-bridge-mcp/internal/logging"
	"github.com/ironsheep/host-bridge-mcp/internal/ocr"
	"github.com/ironsheep/host-bridge-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const instructions = "Desktop control: move and click the mouse, type and press keys, take screenshots, " +
	"read text on screen, and manage files on the user's desktop. Screenshots are scaled down; " +
	"use mouse_click_scaled or the grid labels to click at real screen coordinates. " +
	"Moving the cursor into a screen corner stops all input actions."

func main() {
	var configPath string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("desktop-mcp %s\n", Version)
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
		fmt.Fprintf(os.Stderr, "desktop-mcp: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("desktop-mcp - MCP server for desktop GUI automation")
	fmt.Println()
	fmt.Println("Usage: desktop-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config, -c PATH  Load settings from a YAML file")
	fmt.Println("  --version, -v      Print version information")
	fmt.Println("  --help, -h         Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  BRIDGE_LOG_LEVEL=debug       Log level (trace, debug, info, warn, error)")
	fmt.Println("  BRIDGE_LOG_FILE=path         Also write logs to a file")
	fmt.Println("  MCP_TRANSPORT=http           Serve streamable HTTP instead of stdio")
	fmt.Println("  MCP_HOST, MCP_PORT           HTTP listen address (default 127.0.0.1:8000)")
	fmt.Println("  DESKTOP_DIR=path             Desktop folder for the file tools")
	fmt.Println("  DESKTOP_SCREENSHOT_DIR=path  Where screenshots are saved")
	fmt.Println("  DESKTOP_FAIL_SAFE=false      Disable the screen corner fail-safe")
	fmt.Println("  DESKTOP_OCR_LANGUAGE=eng     Default Tesseract language")
	fmt.Println("  DESKTOP_TESSDATA_DIR=path    Tesseract language data directory")
	fmt.Println()
	fmt.Println("By default this server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile, "desktop")
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Str("transport", string(cfg.Transport)).
		Msg("starting desktop bridge")

	if err := desktop.EnableDPIAwareness(); err != nil {
		logger.Warn().Err(err).Msg("could not enable DPI awareness; coordinates may be scaled")
	}

	var driver desktop.Driver
	robot, err := desktop.NewRobotDriver()
	if err != nil {
		if !errors.Is(err, desktop.ErrUnsupported) {
			return err
		}
		logger.Warn().Err(err).Msg("input and capture unavailable; only desktop file tools will work")
		driver = desktop.Unsupported()
	} else {
		driver = robot
	}

	ctl := desktop.NewController(driver, cfg.Desktop.FailSafe)
	svc := gui.NewService(ctl, cfg.Desktop, ocr.NewTesseract(cfg.Desktop.TessdataDir), logger)

	srv, err := server.New(server.Options{
		Name:         "desktop-mcp",
		Version:      Version,
		Instructions: instructions,
		Logger:       logger,
	}, svc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, cfg)
}
