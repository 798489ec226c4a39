package hostfuncs

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/swiprint/format"
)

// image lays out guest memory for tests: strings and argument words are
// appended and their offsets returned.
type image struct {
	mem SliceMemory
}

func newImage(size int) *image {
	// offset 0 stays unused so a zero pointer is always NULL
	return &image{mem: make(SliceMemory, 8, size)}
}

func (im *image) str(s string) uint32 {
	at := uint32(len(im.mem))
	im.mem = append(im.mem, s...)
	im.mem = append(im.mem, 0)
	return at
}

func (im *image) words(ws ...uint32) uint32 {
	for len(im.mem)%4 != 0 {
		im.mem = append(im.mem, 0)
	}
	at := uint32(len(im.mem))
	for _, w := range ws {
		im.mem = binary.LittleEndian.AppendUint32(im.mem, w)
	}
	return at
}

func TestSliceMemory(t *testing.T) {
	mem := SliceMemory{1, 2, 3, 4, 5}

	assert.Equal(t, uint32(5), mem.Size())

	b, ok := mem.Read(1, 3)
	require.True(t, ok)
	assert.Equal(t, []byte{2, 3, 4}, b)

	_, ok = mem.Read(3, 3)
	assert.False(t, ok)
	_, ok = mem.Read(0xFFFFFFFF, 2)
	assert.False(t, ok)

	w, ok := mem.ReadUint32Le(1)
	require.True(t, ok)
	assert.Equal(t, uint32(0x05040302), w)

	_, ok = mem.ReadUint32Le(2)
	assert.False(t, ok)
}

func TestReadCString(t *testing.T) {
	im := newImage(64)
	hello := im.str("hello")
	tail := uint32(len(im.mem))
	im.mem = append(im.mem, "abc"...)

	tests := []struct {
		name   string
		ptr    uint32
		maxLen uint32
		want   string
		ok     bool
	}{
		{name: "terminated", ptr: hello, want: "hello", ok: true},
		{name: "bounded", ptr: hello, maxLen: 3, want: "hel", ok: true},
		{name: "runs to end of memory", ptr: tail, want: "abc", ok: true},
		{name: "empty at NUL", ptr: 0, want: "", ok: true},
		{name: "out of range", ptr: im.mem.Size(), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReadCString(im.mem, tt.ptr, tt.maxLen)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryArgs(t *testing.T) {
	im := newImage(128)
	name := im.str("world")
	args := im.words(7, 0xFFFFFFD6, name, 0, 'x')

	a := NewMemoryArgs(im.mem, args)
	assert.Equal(t, uint32(7), a.NextWord())
	assert.Equal(t, uint32(0xFFFFFFD6), a.NextWord())
	assert.Equal(t, "world", a.NextString())
	assert.Equal(t, format.NullString, a.NextString())
	assert.Equal(t, uint32('x'), a.NextWord())
	assert.NoError(t, a.Err())
}

func TestMemoryArgs_Fault(t *testing.T) {
	im := newImage(64)
	args := im.words(1, 0xDEAD0000)

	a := NewMemoryArgs(im.mem, args, WithArgsSyscall("vprintf"))
	assert.Equal(t, uint32(1), a.NextWord())
	assert.Equal(t, format.NullString, a.NextString())

	err := a.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMemoryFault)
	assert.Contains(t, err.Error(), "vprintf")
	assert.Contains(t, err.Error(), "0xdead0000")

	// reads past the end keep yielding zero and the first fault is kept
	assert.Zero(t, a.NextWord())
	assert.Equal(t, format.NullString, a.NextString())
	assert.Equal(t, err, a.Err())
}

func TestMemoryArgs_MaxStringLen(t *testing.T) {
	im := newImage(64)
	s := im.str("abcdefgh")
	args := im.words(s)

	a := NewMemoryArgs(im.mem, args, WithArgsMaxStringLen(4))
	assert.Equal(t, "abcd", a.NextString())
}
