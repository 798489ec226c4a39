package hostfuncs

import (
	"bytes"

	"github.com/reglet-dev/swiprint/format"
)

// Memory is the read-only view of guest linear memory the host calls need.
// wazero's api.Memory satisfies it.
type Memory interface {
	// Size returns the memory size in bytes.
	Size() uint32
	// Read returns n bytes at offset, or false if out of range.
	Read(offset, n uint32) ([]byte, bool)
	// ReadUint32Le reads a little-endian uint32 at offset.
	ReadUint32Le(offset uint32) (uint32, bool)
}

// SliceMemory is a Memory backed by a byte slice.
type SliceMemory []byte

// Size implements Memory.
func (m SliceMemory) Size() uint32 {
	return uint32(len(m)) //nolint:gosec // G115: test and native memories are far below 4GiB
}

// Read implements Memory.
func (m SliceMemory) Read(offset, n uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(n)
	if end > uint64(len(m)) {
		return nil, false
	}
	return m[offset:end], true
}

// ReadUint32Le implements Memory.
func (m SliceMemory) ReadUint32Le(offset uint32) (uint32, bool) {
	b, ok := m.Read(offset, 4)
	if !ok {
		return 0, false
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, true
}

// DefaultMaxStringLen bounds the guest strings a host call will scan for
// their NUL terminator.
const DefaultMaxStringLen = 4096

// ReadCString reads the NUL-terminated string at ptr. At most maxLen bytes
// are scanned; a string that reaches maxLen or the end of memory without a
// terminator is returned as far as it goes. ok is false only when ptr itself
// lies outside memory.
func ReadCString(mem Memory, ptr, maxLen uint32) (s string, ok bool) {
	size := mem.Size()
	if ptr >= size {
		return "", false
	}
	n := size - ptr
	if maxLen > 0 && n > maxLen {
		n = maxLen
	}
	b, ok := mem.Read(ptr, n)
	if !ok {
		return "", false
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), true
}

// MemoryArgs is a format.Args cursor over a guest argument block: a run of
// consecutive little-endian 32-bit words. A %s argument is a pointer word
// naming a NUL-terminated string.
//
// A read outside memory yields 0 or format.NullString and latches a
// MEMORY_FAULT error, available from Err once formatting completes. A NULL
// string pointer prints format.NullString and is not a fault.
type MemoryArgs struct {
	mem     Memory
	err     error
	syscall string
	next    uint32
	maxStr  uint32
}

// NewMemoryArgs returns a cursor over the words starting at argsPtr.
func NewMemoryArgs(mem Memory, argsPtr uint32, opts ...MemoryArgsOption) *MemoryArgs {
	a := &MemoryArgs{
		mem:     mem,
		next:    argsPtr,
		maxStr:  DefaultMaxStringLen,
		syscall: "printf",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MemoryArgsOption configures a MemoryArgs cursor.
type MemoryArgsOption func(*MemoryArgs)

// WithArgsMaxStringLen bounds the length of each %s argument.
func WithArgsMaxStringLen(n uint32) MemoryArgsOption {
	return func(a *MemoryArgs) {
		a.maxStr = n
	}
}

// WithArgsSyscall sets the host call name reported in faults.
func WithArgsSyscall(name string) MemoryArgsOption {
	return func(a *MemoryArgs) {
		a.syscall = name
	}
}

func (a *MemoryArgs) fault(offset uint32) {
	if a.err == nil {
		a.err = NewMemoryFault(a.syscall, offset, a.mem.Size())
	}
}

// NextWord implements format.Args.
func (a *MemoryArgs) NextWord() uint32 {
	at := a.next
	a.next += 4
	v, ok := a.mem.ReadUint32Le(at)
	if !ok {
		a.fault(at)
		return 0
	}
	return v
}

// NextString implements format.Args.
func (a *MemoryArgs) NextString() string {
	at := a.next
	a.next += 4
	ptr, ok := a.mem.ReadUint32Le(at)
	if !ok {
		a.fault(at)
		return format.NullString
	}
	if ptr == 0 {
		return format.NullString
	}
	s, ok := ReadCString(a.mem, ptr, a.maxStr)
	if !ok {
		a.fault(ptr)
		return format.NullString
	}
	return s
}

// Err returns the first memory fault hit while reading arguments.
func (a *MemoryArgs) Err() error {
	return a.err
}

var _ format.Args = (*MemoryArgs)(nil)
