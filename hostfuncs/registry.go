package hostfuncs

import (
	"context"
	"fmt"
	"sort"
)

// HandlerRegistry is an immutable collection of named host calls.
// Once created via NewRegistry, calls cannot be added or removed, so lookups
// need no locking.
type HandlerRegistry struct {
	syscalls   map[string]Syscall
	names      []string // sorted for consistent iteration
	middleware []Middleware
}

// registryBuilder accumulates configuration during registry construction.
type registryBuilder struct {
	syscalls   map[string]Syscall
	middleware []Middleware
	errors     []error
}

// NewRegistry creates an immutable HandlerRegistry with the given options.
// Returns an error if any call name is registered twice.
//
// Example usage:
//
//	registry, err := NewRegistry(
//	    WithMiddleware(PanicRecoveryMiddleware()),
//	    WithBundle(ConsoleBundle(out)),
//	    WithSyscall(Syscall{Name: "tick", Handler: tick}),
//	)
func NewRegistry(opts ...RegistryOption) (*HandlerRegistry, error) {
	b := &registryBuilder{
		syscalls: make(map[string]Syscall),
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	names := make([]string, 0, len(b.syscalls))
	for name := range b.syscalls {
		names = append(names, name)
	}
	sort.Strings(names)

	// Apply middleware chain to all handlers (FIFO order)
	wrapped := make(map[string]Syscall, len(b.syscalls))
	for name, sc := range b.syscalls {
		h := sc.Handler
		for i := len(b.middleware) - 1; i >= 0; i-- {
			h = b.middleware[i](h)
		}
		sc.Handler = h
		wrapped[name] = sc
	}

	return &HandlerRegistry{
		syscalls:   wrapped,
		names:      names,
		middleware: b.middleware,
	}, nil
}

// Invoke dispatches a host call by name.
func (r *HandlerRegistry) Invoke(ctx context.Context, name string, mem Memory, params []uint32) error {
	sc, ok := r.syscalls[name]
	if !ok {
		return NewNotFoundError(name)
	}
	if len(params) != sc.Params {
		return NewValidationError(name, fmt.Sprintf("expected %d parameters, got %d", sc.Params, len(params)))
	}

	hctx := HostContextFrom(ctx, name)
	return sc.Handler(hctx, mem, params)
}

// Lookup returns the registered call with the given name, middleware applied.
func (r *HandlerRegistry) Lookup(name string) (Syscall, bool) {
	sc, ok := r.syscalls[name]
	return sc, ok
}

// Has returns true if a call with the given name is registered.
func (r *HandlerRegistry) Has(name string) bool {
	_, ok := r.syscalls[name]
	return ok
}

// Names returns a sorted list of all registered call names.
func (r *HandlerRegistry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

func (b *registryBuilder) addSyscall(sc Syscall) error {
	if sc.Name == "" {
		return fmt.Errorf("syscall name cannot be empty")
	}
	if sc.Handler == nil {
		return fmt.Errorf("syscall %q has no handler", sc.Name)
	}
	if sc.Params < 0 {
		return fmt.Errorf("syscall %q has negative parameter count", sc.Name)
	}
	if _, exists := b.syscalls[sc.Name]; exists {
		return fmt.Errorf("duplicate syscall name: %q", sc.Name)
	}
	b.syscalls[sc.Name] = sc
	return nil
}

// WithSyscall registers a single host call.
func WithSyscall(sc Syscall) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addSyscall(sc); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithMiddleware adds middleware to the registry.
// Middleware executes in FIFO order (first added wraps first).
func WithMiddleware(mw ...Middleware) RegistryOption {
	return func(b *registryBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}
