package wasmtest

const (
	opUnreachable = 0x00
	opEnd         = 0x0B
	opReturn      = 0x0F
	opCall        = 0x10
	opDrop        = 0x1A
	opLocalGet    = 0x20
	opI32Const    = 0x41
)

// I32Const pushes v.
func I32Const(v int32) []byte {
	return appendS32([]byte{opI32Const}, v)
}

// Call calls function idx.
func Call(idx uint32) []byte {
	return appendU32([]byte{opCall}, idx)
}

// LocalGet pushes parameter or local i.
func LocalGet(i uint32) []byte {
	return appendU32([]byte{opLocalGet}, i)
}

// Drop discards the top of the stack.
func Drop() []byte { return []byte{opDrop} }

// Return returns from the current function.
func Return() []byte { return []byte{opReturn} }

// Unreachable traps.
func Unreachable() []byte { return []byte{opUnreachable} }

// Putc returns the instructions that call putc with c.
func Putc(putc uint32, c byte) []byte {
	return append(I32Const(int32(c)), Call(putc)...)
}

// PutString calls putc once per byte of s.
func PutString(putc uint32, s string) []byte {
	var out []byte
	for i := 0; i < len(s); i++ {
		out = append(out, Putc(putc, s[i])...)
	}
	return out
}
