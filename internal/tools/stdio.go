package tools

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
)

// ListToolsName is the reserved tool name that returns the registry
// listing instead of executing a tool.
const ListToolsName = "tools/list"

// maxLineBytes bounds a single stdio request line.
const maxLineBytes = 1 << 20

type stdioRequest struct {
	ID        any             `json:"id,omitempty"`
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type stdioResponse struct {
	ID     any    `json:"id,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// StdioServer serves line-delimited JSON tool calls: one request object
// per input line, one response object per output line.
type StdioServer struct {
	registry *Registry
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
}

// NewStdioServer creates a stdio server over the registry.
func NewStdioServer(registry *Registry, in io.Reader, out io.Writer, logger *slog.Logger) *StdioServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &StdioServer{
		registry: registry,
		in:       in,
		out:      out,
		logger:   logger.With(slog.String("component", "stdio")),
	}
}

// Run reads requests until EOF or context cancellation. Malformed lines
// produce an error response; they never terminate the loop.
func (s *StdioServer) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(s.out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req stdioRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.write(enc, stdioResponse{Error: "malformed request: " + err.Error()})
			continue
		}
		if req.Tool == "" {
			s.write(enc, stdioResponse{ID: req.ID, Error: "missing tool name"})
			continue
		}
		if req.Tool == ListToolsName {
			s.write(enc, stdioResponse{ID: req.ID, Result: s.registry.List()})
			continue
		}

		result, err := s.registry.Execute(ctx, req.Tool, req.Arguments)
		if err != nil {
			s.write(enc, stdioResponse{ID: req.ID, Error: err.Error()})
			continue
		}
		s.write(enc, stdioResponse{ID: req.ID, Result: result})
	}
	return scanner.Err()
}

func (s *StdioServer) write(enc *json.Encoder, resp stdioResponse) {
	if err := enc.Encode(resp); err != nil {
		s.logger.Error("failed to write response", slog.String("error", err.Error()))
	}
}
