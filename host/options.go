package host

import (
	"io"
	"log/slog"

	"github.com/reglet-dev/swiprint/application/config"
	"github.com/reglet-dev/swiprint/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithRegistry replaces the default host calls. The registry's console
// calls decide where their output goes; WASI streams still reach the
// executor's console.
func WithRegistry(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithOutput streams console output to w instead of capturing it.
func WithOutput(w io.Writer) Option {
	return func(e *Executor) {
		e.output = w
	}
}

// WithLogger sets the logger for host call and program lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithConfig sets the runtime configuration.
func WithConfig(cfg config.Config) Option {
	return func(e *Executor) {
		e.cfg = cfg
	}
}
