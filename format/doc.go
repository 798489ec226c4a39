// Package format implements a freestanding printf-style formatting engine.
//
// The engine has no output of its own. Every character it produces is handed,
// one at a time and in order, to an Emitter supplied by the caller: a system
// call, a device register, a WebAssembly host import, or an in-memory buffer
// in tests. Nothing is buffered between characters and no package-level state
// is shared between calls, so concurrent calls are safe as long as their
// emitters are.
//
// # Directive syntax
//
//	% [0] [width] specifier
//
// The only flag is a leading 0, which pads with zeros instead of spaces.
// Width is a decimal field width, clamped to MaxWidth. The specifiers are:
//
//	%   a literal percent sign, consumes no argument
//	d i signed decimal
//	u   unsigned decimal
//	x X hexadecimal, lower and upper case digits
//	o   octal
//	b   binary
//	c   a single character, never padded
//	s   a string, right-justified in the field, never truncated
//
// Integer arguments are 32-bit machine words. An unknown specifier is echoed
// as a percent sign followed by the specifier character; it is not an error.
//
// # Arguments
//
// Arguments are read through an Args cursor that only moves forward. Printf
// wraps Go values in a ValueArgs; other cursors (for example one reading a
// guest's linear memory) can be passed to Vprintf. A cursor that runs out of
// arguments yields zero for words and "(null)" for strings.
package format
