package format

import "strings"

// Args is a forward-only cursor over the arguments of one Printf call.
// Each directive consumes what its kind requires and nothing is read twice.
type Args interface {
	// NextWord consumes one machine-word argument.
	NextWord() uint32
	// NextString consumes one string reference and returns the characters
	// up to, not including, its terminating NUL.
	NextString() string
}

// NullString is what a %s directive prints when no usable string argument
// is available.
const NullString = "(null)"

type stringer interface {
	String() string
}

// ValueArgs is an Args cursor over Go values.
//
// Integers of any width are truncated to their low 32 bits and bool maps to
// 0 or 1. Strings, byte slices and values with a String method satisfy %s.
// Missing or mismatched arguments yield 0 and NullString.
type ValueArgs struct {
	values []any
	pos    int
}

// NewValueArgs returns a cursor positioned on the first of values.
func NewValueArgs(values ...any) *ValueArgs {
	return &ValueArgs{values: values}
}

func (a *ValueArgs) next() (any, bool) {
	if a.pos >= len(a.values) {
		return nil, false
	}
	v := a.values[a.pos]
	a.pos++
	return v, true
}

// NextWord implements Args.
func (a *ValueArgs) NextWord() uint32 {
	v, ok := a.next()
	if !ok {
		return 0
	}
	w, _ := Word(v)
	return w
}

// NextString implements Args.
func (a *ValueArgs) NextString() string {
	v, ok := a.next()
	if !ok {
		return NullString
	}
	switch s := v.(type) {
	case string:
		return cstring(s)
	case []byte:
		return cstring(string(s))
	case stringer:
		return cstring(s.String())
	}
	return NullString
}

// Remaining returns the number of arguments not yet consumed.
func (a *ValueArgs) Remaining() int {
	return len(a.values) - a.pos
}

// Word converts an integer-like Go value to a 32-bit machine word, keeping
// the low 32 bits of its two's complement representation. ok is false for
// values that are not integers or booleans.
func Word(v any) (w uint32, ok bool) {
	switch n := v.(type) {
	case int:
		return uint32(n), true
	case int8:
		return uint32(n), true
	case int16:
		return uint32(n), true
	case int32:
		return uint32(n), true
	case int64:
		return uint32(n), true
	case uint:
		return uint32(n), true
	case uint8:
		return uint32(n), true
	case uint16:
		return uint32(n), true
	case uint32:
		return n, true
	case uint64:
		return uint32(n), true
	case uintptr:
		return uint32(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func cstring(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
