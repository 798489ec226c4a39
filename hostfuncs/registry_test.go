package hostfuncs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopHandler(context.Context, Memory, []uint32) error { return nil }

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Empty(t, reg.Names())
}

func TestNewRegistry_WithSyscall(t *testing.T) {
	reg, err := NewRegistry(
		WithSyscall(Syscall{Name: "tick", Params: 0, Handler: nopHandler}),
		WithSyscall(Syscall{Name: "add", Params: 2, Handler: nopHandler}),
	)
	require.NoError(t, err)

	assert.True(t, reg.Has("tick"))
	assert.True(t, reg.Has("add"))
	assert.False(t, reg.Has("missing"))
	assert.Equal(t, []string{"add", "tick"}, reg.Names())

	sc, ok := reg.Lookup("add")
	require.True(t, ok)
	assert.Equal(t, 2, sc.Params)
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []RegistryOption
		wantErr string
	}{
		{
			name: "duplicate name",
			opts: []RegistryOption{
				WithSyscall(Syscall{Name: "putc", Params: 1, Handler: nopHandler}),
				WithSyscall(Syscall{Name: "putc", Params: 1, Handler: nopHandler}),
			},
			wantErr: "duplicate syscall name",
		},
		{
			name:    "empty name",
			opts:    []RegistryOption{WithSyscall(Syscall{Handler: nopHandler})},
			wantErr: "cannot be empty",
		},
		{
			name:    "nil handler",
			opts:    []RegistryOption{WithSyscall(Syscall{Name: "x"})},
			wantErr: "has no handler",
		},
		{
			name:    "negative params",
			opts:    []RegistryOption{WithSyscall(Syscall{Name: "x", Params: -1, Handler: nopHandler})},
			wantErr: "negative parameter count",
		},
		{
			name: "bundle clashes with syscall",
			opts: []RegistryOption{
				WithBundle(DiagBundle()),
				WithSyscall(Syscall{Name: "assert_fail", Params: 1, Handler: nopHandler}),
			},
			wantErr: "duplicate syscall name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := NewRegistry(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_Invoke(t *testing.T) {
	var got []uint32
	var gotName string
	reg, err := NewRegistry(WithSyscall(Syscall{
		Name:   "add",
		Params: 2,
		Handler: func(ctx context.Context, _ Memory, params []uint32) error {
			got = params
			gotName = ctx.(HostContext).SyscallName()
			return nil
		},
	}))
	require.NoError(t, err)

	require.NoError(t, reg.Invoke(context.Background(), "add", SliceMemory(nil), []uint32{1, 2}))
	assert.Equal(t, []uint32{1, 2}, got)
	assert.Equal(t, "add", gotName)
}

func TestRegistry_InvokeErrors(t *testing.T) {
	reg, err := NewRegistry(WithBundle(DiagBundle()))
	require.NoError(t, err)

	err = reg.Invoke(context.Background(), "nope", SliceMemory(nil), nil)
	assert.ErrorIs(t, err, ErrNotFound)

	err = reg.Invoke(context.Background(), "assert_fail", SliceMemory(nil), nil)
	assert.ErrorIs(t, err, ErrValidation)

	err = reg.Invoke(context.Background(), "assert_fail", SliceMemory(nil), []uint32{12})
	assert.ErrorIs(t, err, ErrAssertionFailed)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestRegistry_NamesIsCopy(t *testing.T) {
	reg, err := NewRegistry(WithBundle(DiagBundle()))
	require.NoError(t, err)

	names := reg.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"assert_fail"}, reg.Names())
}
