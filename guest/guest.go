package guest

import (
	"log/slog"
	"runtime"

	"github.com/reglet-dev/swiprint/format"
	"github.com/reglet-dev/swiprint/log"
)

// Console emits each character through the putc host call.
var Console format.Emitter = format.EmitterFunc(func(c byte) {
	putc(uint32(c))
})

// Printf formats inside the guest and prints the result through Console.
func Printf(template string, args ...any) {
	format.Printf(Console, template, args...)
}

// Puts prints s and a newline through Console.
func Puts(s string) {
	for i := 0; i < len(s); i++ {
		Console.Emit(s[i])
	}
	Console.Emit('\n')
}

// Assert aborts the program through assert_fail, reporting the caller's
// line, when cond is false.
func Assert(cond bool) {
	if cond {
		return
	}
	_, _, line, _ := runtime.Caller(1)
	assert_fail(uint32(line)) //nolint:gosec // G115: line numbers are positive
}

// Exit ends the program with code.
func Exit(code uint32) {
	exit(code)
}

// Logger returns a logger whose lines go through Console.
func Logger(opts ...log.HandlerOption) *slog.Logger {
	return slog.New(log.NewConsoleHandler(Console, opts...))
}
