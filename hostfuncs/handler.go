package hostfuncs

import (
	"context"
)

// Handler implements one host call. params holds the call's i32 arguments in
// order. A non-nil error aborts the guest.
type Handler func(ctx context.Context, mem Memory, params []uint32) error

// Syscall describes a host call exported to guests.
type Syscall struct {
	// Name is the exported function name.
	Name string

	// Params is the number of i32 parameters the call takes.
	Params int

	// Handler implements the call.
	Handler Handler
}
