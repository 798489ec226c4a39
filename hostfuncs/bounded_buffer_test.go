package hostfuncs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/swiprint/format"
)

func TestBoundedBuffer_Write(t *testing.T) {
	t.Run("writes within limit", func(t *testing.T) {
		buf := NewBoundedBuffer(100)
		n, err := buf.Write([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "hello", buf.String())
		assert.False(t, buf.Truncated())
	})

	t.Run("truncates at limit", func(t *testing.T) {
		buf := NewBoundedBuffer(10)
		n, err := buf.Write([]byte("hello world"))
		require.NoError(t, err)
		// Should report writing all 11 bytes to satisfy io.Writer contract
		assert.Equal(t, 11, n)
		assert.Equal(t, "hello worl", buf.String())
		assert.True(t, buf.Truncated())
	})

	t.Run("partial write at boundary", func(t *testing.T) {
		buf := NewBoundedBuffer(8)
		_, _ = buf.Write([]byte("12345"))
		n, err := buf.Write([]byte("67890"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, "12345678", buf.String())
		assert.True(t, buf.Truncated())
	})

	t.Run("zero limit is unbounded", func(t *testing.T) {
		buf := NewBoundedBuffer(0)
		big := make([]byte, 3*DefaultMaxOutputSize)
		n, err := buf.Write(big)
		require.NoError(t, err)
		assert.Equal(t, len(big), n)
		assert.Equal(t, len(big), buf.Len())
		assert.False(t, buf.Truncated())
	})
}

func TestBoundedBuffer_Emit(t *testing.T) {
	buf := NewBoundedBuffer(6)
	format.Printf(buf, "%d-%s", 42, "abcdef")

	assert.Equal(t, "42-abc", buf.String())
	assert.True(t, buf.Truncated())
}

func TestBoundedBuffer_MixedEmitAndWrite(t *testing.T) {
	buf := NewBoundedBuffer(0)
	buf.Emit('a')
	_, _ = buf.Write([]byte("bc"))
	buf.Emit('d')

	assert.Equal(t, "abcd", buf.String())
}

func TestBoundedBuffer_Reset(t *testing.T) {
	buf := NewBoundedBuffer(5)
	_, _ = buf.Write([]byte("hello world"))
	require.True(t, buf.Truncated())

	buf.Reset()

	assert.False(t, buf.Truncated())
	assert.Zero(t, buf.Len())
	assert.Empty(t, buf.String())
}
