package host

import (
	"io"
	"sync"

	"github.com/reglet-dev/swiprint/format"
	"github.com/reglet-dev/swiprint/hostfuncs"
)

var _ console = (*hostfuncs.BoundedBuffer)(nil)

// console is the single sink for guest output. Host calls emit into it and
// WASI streams write into it.
type console interface {
	format.Emitter
	io.Writer
	Truncated() bool
}

// streamConsole forwards output to a writer, dropping everything past
// limit bytes when limit is positive.
type streamConsole struct {
	mu        sync.Mutex
	out       *format.WriterEmitter
	limit     int64
	truncated bool
}

func newStreamConsole(w io.Writer, limit int) *streamConsole {
	return &streamConsole{out: format.NewWriterEmitter(w), limit: int64(limit)}
}

func (c *streamConsole) full() bool {
	if c.limit > 0 && c.out.Count() >= c.limit {
		c.truncated = true
		return true
	}
	return false
}

func (c *streamConsole) Emit(b byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.full() {
		c.out.Emit(b)
	}
}

func (c *streamConsole) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range p {
		if c.full() {
			break
		}
		c.out.Emit(b)
	}
	if err := c.out.Err(); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *streamConsole) Truncated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.truncated
}

// Err returns the first error writing to the underlying writer.
func (c *streamConsole) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Err()
}
