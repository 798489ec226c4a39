package hostfuncs

import (
	"bytes"
	"sync"
)

// DefaultMaxOutputSize is the default console capture limit (1MB).
// Prevents a runaway guest from growing host memory without bound.
const DefaultMaxOutputSize = 1 * 1024 * 1024

// BoundedBuffer captures console output up to a byte limit. It implements
// format.Emitter for host calls and io.Writer for WASI streams, so both land
// in one ordered capture.
type BoundedBuffer struct {
	buffer    bytes.Buffer
	mu        sync.Mutex
	limit     int
	truncated bool
}

// NewBoundedBuffer creates a new BoundedBuffer with the specified limit.
// A limit of zero or less means unbounded.
func NewBoundedBuffer(limit int) *BoundedBuffer {
	return &BoundedBuffer{
		limit: limit,
	}
}

func (b *BoundedBuffer) room() int {
	if b.limit <= 0 {
		return -1
	}
	return b.limit - b.buffer.Len()
}

// Emit implements format.Emitter.
func (b *BoundedBuffer) Emit(c byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.room() == 0 {
		b.truncated = true
		return
	}
	b.buffer.WriteByte(c)
}

// Write implements io.Writer.
// It writes data up to the limit and then silently discards any additional data.
func (b *BoundedBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	remaining := b.room()
	if remaining >= 0 && len(p) > remaining {
		b.truncated = true
		n, err = b.buffer.Write(p[:remaining])
		if err != nil {
			return n, err
		}
		return len(p), nil // Return len(p) to avoid short write error
	}

	return b.buffer.Write(p)
}

// Truncated reports whether any output was discarded.
func (b *BoundedBuffer) Truncated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.truncated
}

// String returns the buffer contents as a string.
func (b *BoundedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.String()
}

// Len returns the current length of the buffer.
func (b *BoundedBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.Len()
}

// Reset resets the buffer and clears the truncation flag.
func (b *BoundedBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffer.Reset()
	b.truncated = false
}
