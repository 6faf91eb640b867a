package toolbelt

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a Handler with cross-cutting behavior (logging,
// recovery, timeout).
type Middleware func(Handler) Handler

// WithLogging returns a middleware that logs start, end, duration, and errors.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, call Call) (string, error) {
			logger.Info("tool start", "tool", call.ToolName, "call_id", call.ID)
			start := time.Now()
			out, err := next(ctx, call)
			dur := time.Since(start)
			if err != nil {
				logger.Error("tool error", "tool", call.ToolName, "call_id", call.ID, "duration", dur, "error", err)
				return "", err
			}
			logger.Info("tool end", "tool", call.ToolName, "call_id", call.ID, "duration", dur)
			return out, nil
		}
	}
}

// WithRecovery returns a middleware that recovers panics and returns an
// ExecutionError.
func WithRecovery() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call Call) (out string, err error) {
			defer func() {
				if p := recover(); p != nil {
					out = ""
					err = &ExecutionError{Reason: (&panicError{p: p}).Error()}
				}
			}()
			return next(ctx, call)
		}
	}
}

// WithTimeoutMiddleware returns a middleware that bounds the handler with a
// deadline. The registry itself never imposes one; attaching this is the
// handler author's choice.
func WithTimeoutMiddleware(d time.Duration) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call Call) (string, error) {
			if d <= 0 {
				return next(ctx, call)
			}
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, call)
		}
	}
}

// Use stores the given middlewares and reapplies them from scratch to all
// registered handlers (onion order: first middleware is outermost).
// Handlers registered after Use also get the chain. Calling Use again
// replaces the chain and rewraps from the raw handlers, so nothing is
// double-wrapped.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, raw := range r.rawHandlers {
		h := raw
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		r.handlers[name] = h
	}
}
