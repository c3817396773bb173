package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/ironsheep/host-bridge-mcp/internal/config"
	"github.com/ironsheep/host-bridge-mcp/internal/imaging"
	"github.com/ironsheep/host-bridge-mcp/internal/server"
)

const resPrefix = "res://"

// Service executes the editor bridge tools.
type Service struct {
	client     *Client
	projectDir string
	logger     zerolog.Logger
}

// NewService wires the tools to client. cfg supplies the project directory
// used to resolve res:// paths for files written locally.
func NewService(client *Client, cfg config.Editor, logger zerolog.Logger) *Service {
	return &Service{
		client:     client,
		projectDir: cfg.ProjectDir,
		logger:     logger,
	}
}

var _ server.Toolset = (*Service)(nil)

// Tools returns the tool definitions.
func (s *Service) Tools() []server.Tool {
	return Definitions()
}

// Execute runs a tool: local helpers directly, everything else as one
// editor round trip.
func (s *Service) Execute(ctx context.Context, name string, raw json.RawMessage) (*mcp.CallToolResult, error) {
	args, err := server.ParseArgs(raw)
	if err != nil {
		return nil, err
	}

	switch name {
	case toolCheckConnection:
		return s.handleCheckConnection(ctx)
	case toolGenerateHeightmap:
		return s.handleGenerateHeightmap(args)
	}

	cmd, err := Build(name, args)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Send(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(cmd.Name()); err != nil {
		return nil, err
	}
	return server.TextResult(Format(resp)), nil
}

func (s *Service) handleCheckConnection(ctx context.Context) (*mcp.CallToolResult, error) {
	if err := s.client.Ping(ctx); err != nil {
		return nil, err
	}
	return server.TextResult("✓ Connected to editor at " + s.client.Address()), nil
}

func (s *Service) handleGenerateHeightmap(args server.Args) (*mcp.CallToolResult, error) {
	target, err := args.RequireString("file_path")
	if err != nil {
		return nil, err
	}
	path, err := s.localPath(target)
	if err != nil {
		return nil, err
	}
	width := args.Int("width", imaging.DefaultHeightmapSize)
	height := args.Int("height", imaging.DefaultHeightmapSize)

	img, err := imaging.RadialHeightmap(width, height, args.Float("smooth", 0))
	if err != nil {
		return nil, err
	}
	if err := imaging.SavePNG(path, img); err != nil {
		return nil, err
	}
	s.logger.Info().Str("path", path).Int("width", width).Int("height", height).Msg("heightmap written")
	return server.TextResult(fmt.Sprintf("✓ Heightmap written to %s (%d x %d)", path, width, height)), nil
}

// localPath maps an absolute path or a res:// path inside the configured
// project onto the local filesystem.
func (s *Service) localPath(p string) (string, error) {
	if !strings.HasPrefix(p, resPrefix) {
		if !filepath.IsAbs(p) {
			return "", fmt.Errorf("file_path must be absolute or start with %s: %s", resPrefix, p)
		}
		return filepath.Clean(p), nil
	}
	if s.projectDir == "" {
		return "", fmt.Errorf("cannot resolve %s: editor project_dir is not configured", p)
	}
	rel := filepath.FromSlash(strings.TrimPrefix(p, resPrefix))
	root := filepath.Clean(s.projectDir)
	full := filepath.Join(root, rel)
	if r, err := filepath.Rel(root, full); err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s escapes the project directory", p)
	}
	return full, nil
}
