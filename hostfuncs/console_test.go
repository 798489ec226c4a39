package hostfuncs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsoleRegistry(t *testing.T, opts ...ConsoleOption) (*HandlerRegistry, *BoundedBuffer) {
	t.Helper()
	out := NewBoundedBuffer(0)
	reg, err := NewRegistry(WithBundle(AllBundles(out, opts...)))
	require.NoError(t, err)
	return reg, out
}

func TestConsole_Putc(t *testing.T) {
	reg, out := newConsoleRegistry(t)
	ctx := context.Background()

	for _, c := range []uint32{'h', 'i', 0x100 | '!'} {
		require.NoError(t, reg.Invoke(ctx, "putc", SliceMemory(nil), []uint32{c}))
	}
	assert.Equal(t, "hi!", out.String())
}

func TestConsole_Puts(t *testing.T) {
	reg, out := newConsoleRegistry(t)
	im := newImage(64)
	s := im.str("Hello World")

	require.NoError(t, reg.Invoke(context.Background(), "puts", im.mem, []uint32{s}))
	assert.Equal(t, "Hello World\n", out.String())

	err := reg.Invoke(context.Background(), "puts", im.mem, []uint32{0x7FFFFFFF})
	assert.ErrorIs(t, err, ErrMemoryFault)
}

func TestConsole_Printf(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     func(im *image) []uint32
		want     string
	}{
		{
			name:     "integers",
			template: "%d %u %x %X %o %b",
			args: func(*image) []uint32 {
				return []uint32{0xFFFFFFFF, 0xFFFFFFFF, 255, 255, 8, 5}
			},
			want: "-1 4294967295 ff FF 10 101",
		},
		{
			name:     "strings and chars",
			template: "[%5s|%c|%s]",
			args: func(im *image) []uint32 {
				return []uint32{im.str("abc"), 'Z', 0}
			},
			want: "[  abc|Z|(null)]",
		},
		{
			name:     "zero padded hex bytes",
			template: "%02x%02x%02x",
			args: func(*image) []uint32 {
				return []uint32{0xc0, 0x8, 0x2}
			},
			want: "c00802",
		},
		{
			name:     "min int",
			template: "%d",
			args: func(*image) []uint32 {
				return []uint32{0x80000000}
			},
			want: "-2147483648",
		},
		{
			name:     "literal",
			template: "100%% done\n",
			args:     func(*image) []uint32 { return nil },
			want:     "100% done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, out := newConsoleRegistry(t)
			im := newImage(256)
			tmpl := im.str(tt.template)
			args := im.words(tt.args(im)...)

			require.NoError(t, reg.Invoke(context.Background(), "printf", im.mem, []uint32{tmpl, args}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestConsole_PrintfFaultKeepsOutput(t *testing.T) {
	reg, out := newConsoleRegistry(t)
	im := newImage(64)
	tmpl := im.str("a=%d s=%s!")
	args := im.words(5, 0x00FFFFF0)

	err := reg.Invoke(context.Background(), "printf", im.mem, []uint32{tmpl, args})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMemoryFault)
	assert.Equal(t, "a=5 s=(null)!", out.String())
}

func TestConsole_PrintfBadTemplate(t *testing.T) {
	reg, out := newConsoleRegistry(t)

	err := reg.Invoke(context.Background(), "printf", SliceMemory(make([]byte, 16)), []uint32{1 << 20, 0})
	assert.ErrorIs(t, err, ErrMemoryFault)
	assert.Empty(t, out.String())
}

func TestConsole_MaxStringLen(t *testing.T) {
	reg, out := newConsoleRegistry(t, WithMaxStringLen(5))
	im := newImage(64)
	s := im.str("truncated")

	require.NoError(t, reg.Invoke(context.Background(), "puts", im.mem, []uint32{s}))
	assert.Equal(t, "trunc\n", out.String())
}
