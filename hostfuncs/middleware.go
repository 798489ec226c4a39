package hostfuncs

import (
	"context"
	"log/slog"
	"time"
)

// Middleware is a function that wraps a Handler to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
//
// Example usage:
//
//	counting := func(next Handler) Handler {
//	    return func(ctx context.Context, mem Memory, params []uint32) error {
//	        calls++
//	        return next(ctx, mem, params)
//	    }
//	}
type Middleware func(next Handler) Handler

// RegistryOption is a functional option for configuring a HandlerRegistry.
type RegistryOption func(*registryBuilder)

func syscallName(ctx context.Context) string {
	if hc, ok := ctx.(HostContext); ok {
		return hc.SyscallName()
	}
	return "unknown"
}

// PanicRecoveryMiddleware returns a middleware that converts a panicking
// handler into an INTERNAL_ERROR instead of crashing the host.
func PanicRecoveryMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, mem Memory, params []uint32) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = NewPanicError(syscallName(ctx), r)
				}
			}()
			return next(ctx, mem, params)
		}
	}
}

// LoggingMiddleware returns a middleware that logs host call invocations at
// debug level and failures at error level.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, mem Memory, params []uint32) error {
			name := syscallName(ctx)
			start := time.Now()
			err := next(ctx, mem, params)
			if err != nil {
				logger.ErrorContext(ctx, "host call failed",
					slog.String("syscall", name),
					slog.Any("error", err))
				return err
			}
			logger.DebugContext(ctx, "host call completed",
				slog.String("syscall", name),
				slog.Duration("duration", time.Since(start)))
			return nil
		}
	}
}
