package hostfuncs

import (
	"context"
)

// HostContext wraps a context.Context with the name of the host call being
// served, so middleware can tell calls apart.
type HostContext interface {
	context.Context

	// SyscallName returns the name of the host call being invoked.
	SyscallName() string
}

type hostContext struct {
	context.Context
	name string
}

// NewHostContext creates a new HostContext wrapping the given context.
func NewHostContext(ctx context.Context, name string) HostContext {
	return &hostContext{Context: ctx, name: name}
}

func (c *hostContext) SyscallName() string {
	return c.name
}

// HostContextFrom returns ctx if it already is a HostContext for name, and
// wraps it otherwise.
func HostContextFrom(ctx context.Context, name string) HostContext {
	if hc, ok := ctx.(HostContext); ok && hc.SyscallName() == name {
		return hc
	}
	return NewHostContext(ctx, name)
}
