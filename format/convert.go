package format

// bufferSize fits a 32-bit word written in base 2.
const bufferSize = 32

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// convBuf holds the digits of one conversion, least significant first.
type convBuf [bufferSize]byte

// convert writes the digits of v in base into b and returns how many were
// written. Zero produces a single '0'.
func (b *convBuf) convert(v, base uint32, upper bool) int {
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	n := 0
	for {
		b[n] = digits[v%base]
		n++
		v /= base
		if v == 0 {
			return n
		}
	}
}

// AppendUint appends the digits of v in base to dst, most significant first.
// base must be 2, 8, 10 or 16.
func AppendUint(dst []byte, v uint32, base int, upper bool) []byte {
	switch base {
	case 2, 8, 10, 16:
	default:
		panic("format: illegal AppendUint base")
	}
	var buf convBuf
	n := buf.convert(v, uint32(base), upper)
	for n > 0 {
		n--
		dst = append(dst, buf[n])
	}
	return dst
}

// magnitude splits a word interpreted as a two's complement int32 into its
// sign and absolute value. The negation happens in unsigned arithmetic so the
// minimum int32 keeps its magnitude 2147483648.
func magnitude(w uint32) (neg bool, abs uint32) {
	if int32(w) < 0 {
		return true, ^w + 1
	}
	return false, w
}
