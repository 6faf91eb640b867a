package toolbelt

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/iter"
)

// Handler executes one dynamically-dispatched tool call and returns its
// string result. Handlers are asynchronous in the caller's sense: they may
// block on I/O and must honor ctx themselves — the registry imposes no
// timeout, cancellation, or concurrency limit.
type Handler func(ctx context.Context, call Call) (string, error)

// Registry maps tool names to handlers, resolved at runtime from untyped
// JSON calls. Populate at startup via Register, read for the lifetime of
// the process; there is no teardown. Concurrent Register and HandleTool
// calls are safe, and readers never observe a partially-inserted entry.
type Registry struct {
	mu          sync.RWMutex
	handlers    map[string]Handler // wrapped with middlewares, used by HandleTool
	rawHandlers map[string]Handler // unwrapped, used by Use to re-apply middlewares from scratch
	middlewares []Middleware
	opts        registryOptions
}

// NewRegistry creates a Registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		handlers:    make(map[string]Handler),
		rawHandlers: make(map[string]Handler),
		opts:        o,
	}
}

// Register adds a handler under name. Registration is idempotent: a later
// Register for the same name overwrites the earlier handler, last write
// wins. Stored middlewares (see Use) are applied before insertion.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rawHandlers[name] = h
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}
	r.handlers[name] = h
}

// IsRegistered reports whether a handler exists under name.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// RegisteredTools returns the registered tool names, sorted for
// deterministic output.
func (r *Registry) RegisteredTools() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandleTool looks up the handler for call.ToolName and invokes it. An
// unknown name fails with UnknownToolError enumerating the names registered
// at failure time. Handler failures surface as ExecutionError; nothing is
// retried or suppressed. Calls without an ID get one backfilled for hook
// correlation.
func (r *Registry) HandleTool(ctx context.Context, call Call) (out string, err error) {
	r.mu.RLock()
	h, ok := r.handlers[call.ToolName]
	r.mu.RUnlock()
	if !ok {
		return "", &UnknownToolError{Name: call.ToolName, Registered: r.RegisteredTools()}
	}

	if call.ID == "" {
		call.ID = uuid.NewString()
	}
	start := time.Now()
	defer func() {
		if r.opts.onAfter != nil {
			r.opts.onAfter(ctx, call, out, err, time.Since(start))
		}
	}()
	if r.opts.recoverPanics {
		defer func() {
			if p := recover(); p != nil {
				out = ""
				err = &ExecutionError{Reason: (&panicError{p: p}).Error()}
			}
		}()
	}
	if r.opts.onBefore != nil {
		r.opts.onBefore(ctx, call)
	}

	out, err = h(ctx, call)
	if err != nil && !errors.Is(err, ErrExecutionFailed) {
		err = &ExecutionError{Reason: err.Error()}
	}
	return out, err
}

// BatchResult is the outcome of one call in HandleBatch.
type BatchResult struct {
	ID       string
	ToolName string
	Output   string
	Err      error
}

// HandleBatch dispatches all calls concurrently and returns their results
// in input order. One failure does not cancel the others.
func (r *Registry) HandleBatch(ctx context.Context, calls []Call) []BatchResult {
	if len(calls) == 0 {
		return nil
	}
	return iter.Map(calls, func(c *Call) BatchResult {
		call := *c
		if call.ID == "" {
			call.ID = uuid.NewString()
		}
		out, err := r.HandleTool(ctx, call)
		return BatchResult{ID: call.ID, ToolName: call.ToolName, Output: out, Err: err}
	})
}

// defaultRegistry is the process-wide instance used by the package-level
// registration and dispatch functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a handler to the process-wide registry.
func Register(name string, h Handler) { defaultRegistry.Register(name, h) }

// IsRegistered reports whether name is registered in the process-wide registry.
func IsRegistered(name string) bool { return defaultRegistry.IsRegistered(name) }

// RegisteredTools lists the process-wide registry's tool names.
func RegisteredTools() []string { return defaultRegistry.RegisteredTools() }

// HandleTool dispatches a call against the process-wide registry.
func HandleTool(ctx context.Context, call Call) (string, error) {
	return defaultRegistry.HandleTool(ctx, call)
}
