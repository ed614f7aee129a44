package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// ErrToolNotFound is returned by Execute for an unregistered tool name.
var ErrToolNotFound = errors.New("tool not found")

// Definition is the listing entry for one registered tool.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Registry holds the tool set and executes calls with a per-call timeout
// and panic recovery.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]Tool
	timeout time.Duration
	logger  *slog.Logger
}

// NewRegistry creates an empty registry. timeout bounds each Execute call;
// zero means 30 seconds.
func NewRegistry(timeout time.Duration, logger *slog.Logger) *Registry {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		tools:   make(map[string]Tool),
		timeout: timeout,
		logger:  logger.With(slog.String("component", "tool_registry")),
	}
}

// Register adds a tool, replacing any existing tool of the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all tool definitions sorted by name.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, Definition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute runs one tool call. A panicking handler is recovered and
// reported as an error; the call context carries the registry timeout.
func (r *Registry) Execute(ctx context.Context, name string, args json.RawMessage) (result any, err error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("tool panicked",
				slog.String("tool", name),
				slog.Any("panic", p))
			result = nil
			err = fmt.Errorf("tool %s panicked: %v", name, p)
		}
		r.logger.Debug("tool executed",
			slog.String("tool", name),
			slog.Duration("duration", time.Since(start)),
			slog.Bool("ok", err == nil))
	}()

	return tool.Call(ctx, args)
}
