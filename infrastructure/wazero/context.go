package wazero

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

type contextKey struct {
	name string
}

var runKey = &contextKey{name: "run"}

// run identifies the guest execution a host call belongs to.
type run struct {
	program string
	id      string
}

func runFrom(ctx context.Context) run {
	r, _ := ctx.Value(runKey).(run)
	return r
}

// WithProgramName tags ctx with the guest program name.
// Host call failures are logged with it.
func WithProgramName(ctx context.Context, name string) context.Context {
	r := runFrom(ctx)
	r.program = name
	return context.WithValue(ctx, runKey, r)
}

// WithRunID tags ctx with the ID of the current run.
func WithRunID(ctx context.Context, id string) context.Context {
	r := runFrom(ctx)
	r.id = id
	return context.WithValue(ctx, runKey, r)
}

// ProgramNameFromContext retrieves the program name from the context.
func ProgramNameFromContext(ctx context.Context) (string, bool) {
	r := runFrom(ctx)
	return r.program, r.program != ""
}

// RunIDFromContext retrieves the run ID from the context.
func RunIDFromContext(ctx context.Context) (string, bool) {
	r := runFrom(ctx)
	return r.id, r.id != ""
}

// GetProgramName extracts the program name from context, falling back to the module name.
func GetProgramName(ctx context.Context, mod api.Module) string {
	if name, ok := ProgramNameFromContext(ctx); ok {
		return name
	}
	return mod.Name()
}

// logAttrs returns the program and, when known, run_id attributes for ctx.
func logAttrs(ctx context.Context, mod api.Module) []any {
	attrs := []any{"program", GetProgramName(ctx, mod)}
	if id, ok := RunIDFromContext(ctx); ok {
		attrs = append(attrs, "run_id", id)
	}
	return attrs
}
