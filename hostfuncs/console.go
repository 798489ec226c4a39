package hostfuncs

import (
	"context"

	"github.com/reglet-dev/swiprint/format"
)

type consoleConfig struct {
	maxStringLen uint32
}

// ConsoleOption configures ConsoleBundle.
type ConsoleOption func(*consoleConfig)

// WithMaxStringLen bounds every guest string the console reads: templates,
// puts arguments and %s arguments.
func WithMaxStringLen(n uint32) ConsoleOption {
	return func(c *consoleConfig) {
		if n > 0 {
			c.maxStringLen = n
		}
	}
}

// ConsoleBundle returns the guest output calls, all writing to e:
//
//	putc(c)                 emit the low 8 bits of c
//	puts(ptr)               emit a NUL-terminated string and a newline
//	printf(fmt_ptr, args)   format the template at fmt_ptr with the argument
//	                        words at args
//
// Output already emitted stays emitted when a call faults part way.
func ConsoleBundle(e format.Emitter, opts ...ConsoleOption) Bundle {
	cfg := consoleConfig{maxStringLen: DefaultMaxStringLen}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &console{out: e, maxStr: cfg.maxStringLen}
	return &staticBundle{
		syscalls: []Syscall{
			{Name: "putc", Params: 1, Handler: c.putc},
			{Name: "puts", Params: 1, Handler: c.puts},
			{Name: "printf", Params: 2, Handler: c.printf},
		},
	}
}

type console struct {
	out    format.Emitter
	maxStr uint32
}

func (c *console) putc(_ context.Context, _ Memory, params []uint32) error {
	c.out.Emit(byte(params[0]))
	return nil
}

func (c *console) puts(_ context.Context, mem Memory, params []uint32) error {
	s, ok := ReadCString(mem, params[0], c.maxStr)
	if !ok {
		return NewMemoryFault("puts", params[0], mem.Size())
	}
	for i := 0; i < len(s); i++ {
		c.out.Emit(s[i])
	}
	c.out.Emit('\n')
	return nil
}

func (c *console) printf(_ context.Context, mem Memory, params []uint32) error {
	template, ok := ReadCString(mem, params[0], c.maxStr)
	if !ok {
		return NewMemoryFault("printf", params[0], mem.Size())
	}
	args := NewMemoryArgs(mem, params[1], WithArgsMaxStringLen(c.maxStr))
	format.Vprintf(c.out, template, args)
	return args.Err()
}
