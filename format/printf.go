package format

// Printf formats template with Go values and emits the result through e.
func Printf(e Emitter, template string, args ...any) {
	Vprintf(e, template, NewValueArgs(args...))
}

// Vprintf formats template, reading arguments from args, and emits the
// result through e one character at a time. It always completes.
func Vprintf(e Emitter, template string, args Args) {
	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' {
			e.Emit(c)
			i++
			continue
		}
		d, next, ok := parseDirective(template, i+1)
		if !ok {
			// template ended inside a directive
			e.Emit('%')
			return
		}
		emitDirective(e, d, args)
		i = next
	}
}

func emitDirective(e Emitter, d Directive, args Args) {
	switch d.Kind {
	case KindPercent:
		e.Emit('%')
	case KindChar:
		e.Emit(byte(args.NextWord()))
	case KindString:
		s := args.NextString()
		pad(e, d, len(s))
		for i := 0; i < len(s); i++ {
			e.Emit(s[i])
		}
	case KindSigned:
		neg, abs := magnitude(args.NextWord())
		if neg {
			e.Emit('-')
		}
		emitNumber(e, d, abs)
	case KindUnsigned, KindHexLower, KindHexUpper, KindOctal, KindBinary:
		emitNumber(e, d, args.NextWord())
	default:
		e.Emit('%')
		e.Emit(d.Verb)
	}
}

func emitNumber(e Emitter, d Directive, v uint32) {
	var buf convBuf
	n := buf.convert(v, d.Kind.base(), d.Kind == KindHexUpper)
	pad(e, d, n)
	for n > 0 {
		n--
		e.Emit(buf[n])
	}
}

// pad emits the fill characters that right-justify n characters in the
// directive's field.
func pad(e Emitter, d Directive, n int) {
	fill := byte(' ')
	if d.ZeroPad {
		fill = '0'
	}
	for w := d.Width; w > n; w-- {
		e.Emit(fill)
	}
}
