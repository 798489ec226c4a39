// Package log provides a slog handler that writes through the format engine,
// one character at a time, to any format.Emitter.
//
// Guests use it with the putc console so log lines travel the same path as
// printf output; hosts can point it at a writer.
package log

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/reglet-dev/swiprint/format"
)

// ConsoleHandler implements slog.Handler, rendering each record as
//
//	LEVEL message key=value key=value
//
// followed by a newline.
type ConsoleHandler struct {
	out    format.Emitter
	mu     *sync.Mutex
	opts   handlerConfig
	prefix string // group prefix for attributes added later
	attrs  []groupedAttr
}

type groupedAttr struct {
	prefix string
	attr   slog.Attr
}

// HandlerOption configures the ConsoleHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Leveler
	addSource bool
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Leveler) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewConsoleHandler creates a ConsoleHandler writing to out.
func NewConsoleHandler(out format.Emitter, opts ...HandlerOption) *ConsoleHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ConsoleHandler{out: out, mu: &sync.Mutex{}, opts: cfg}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level.Level()
}

// WithAttrs returns a new ConsoleHandler that includes the given attributes.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]groupedAttr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(h2.attrs, h.attrs)
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, groupedAttr{prefix: h.prefix, attr: a})
	}
	return &h2
}

// WithGroup returns a new ConsoleHandler that qualifies later attribute
// keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// Handle writes the record. Output shares one lock across handlers derived
// from the same NewConsoleHandler call, so lines never interleave.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	format.Printf(h.out, "%s %s", r.Level.String(), r.Message)

	if h.opts.addSource && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		if f.File != "" {
			format.Printf(h.out, " source=%s:%d", f.File, f.Line)
		}
	}

	for _, ga := range h.attrs {
		writeAttr(h.out, ga.prefix, ga.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(h.out, h.prefix, a)
		return true
	})

	h.out.Emit('\n')
	return nil
}
