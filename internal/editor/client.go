package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/host-bridge-mcp/internal/config"
)

// readChunk is the size of each read from the editor connection.
const readChunk = 4096

var (
	// ErrNoResponse is returned when the editor closes the connection or
	// stops sending before any byte of a response arrived.
	ErrNoResponse = errors.New("no response from editor")

	// ErrInvalidResponse is returned when the response is not a JSON object.
	ErrInvalidResponse = errors.New("invalid response from editor (JSON error)")

	// ErrTimeout is returned when the editor does not accept the connection
	// within the connect timeout.
	ErrTimeout = errors.New("timeout - editor not responding")

	// ErrRefused is returned when nothing listens on the editor port.
	ErrRefused = errors.New("cannot connect")
)

// Command is one request to the editor plugin. It always carries a "cmd"
// field.
type Command map[string]interface{}

// Name returns the command name.
func (c Command) Name() string {
	s, _ := c["cmd"].(string)
	return s
}

// Client talks to the editor plugin, one connection per command.
type Client struct {
	host           string
	port           int
	connectTimeout time.Duration
	readTimeout    time.Duration
	logger         zerolog.Logger
}

// NewClient returns a client for the editor configured in cfg.
func NewClient(cfg config.Editor, logger zerolog.Logger) *Client {
	return &Client{
		host:           cfg.Host,
		port:           cfg.Port,
		connectTimeout: cfg.ConnectTimeout,
		readTimeout:    cfg.ReadTimeout,
		logger:         logger,
	}
}

// Address returns the editor's host:port.
func (c *Client) Address() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

// dial opens a connection to the editor, translating timeouts and refusals
// into ErrTimeout and ErrRefused.
func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: c.connectTimeout}
	conn, err := d.DialContext(ctx, "tcp", c.Address())
	if err == nil {
		return conn, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if isConnRefused(err) {
		return nil, fmt.Errorf("%w - is the editor plugin active and listening on port %d?", ErrRefused, c.port)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return nil, ErrTimeout
	}
	return nil, fmt.Errorf("editor communication failed: %w", err)
}

// Ping checks that the editor accepts connections.
func (c *Client) Ping(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	return conn.Close()
}

// Send writes cmd to a fresh connection and reads back one JSON response.
//
// The response is read in chunks, each under the read timeout. Reading
// stops at EOF, when a chunk times out, or as soon as the bytes received so
// far form valid JSON; the plugin does not frame its replies.
func (c *Client) Send(ctx context.Context, cmd Command) (Response, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode command: %w", err)
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	start := time.Now()
	if _, err := conn.Write(payload); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("editor communication failed: %w", err)
	}

	data, err := c.readResponse(conn)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("cmd", cmd.Name()).
		Int("sent", len(payload)).
		Int("received", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("editor round trip")

	if len(data) == 0 {
		return nil, ErrNoResponse
	}
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil || resp == nil {
		return nil, ErrInvalidResponse
	}
	return resp, nil
}

func (c *Client) readResponse(conn net.Conn) ([]byte, error) {
	var data []byte
	buf := make([]byte, readChunk)
	for {
		if err := conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return nil, fmt.Errorf("editor communication failed: %w", err)
		}
		n, err := conn.Read(buf)
		data = append(data, buf[:n]...)
		if n > 0 && json.Valid(data) {
			return data, nil
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		// A silent editor means it has sent everything it will send.
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return data, nil
		}
		return nil, fmt.Errorf("editor communication failed: %w", err)
	}
}
