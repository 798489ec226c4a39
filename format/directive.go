package format

// Kind is the conversion a directive performs.
type Kind uint8

// Directive kinds.
const (
	KindUnknown Kind = iota
	KindPercent
	KindSigned
	KindUnsigned
	KindHexLower
	KindHexUpper
	KindOctal
	KindBinary
	KindChar
	KindString
)

var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindPercent:  "percent",
	KindSigned:   "signed-decimal",
	KindUnsigned: "unsigned-decimal",
	KindHexLower: "hex-lower",
	KindHexUpper: "hex-upper",
	KindOctal:    "octal",
	KindBinary:   "binary",
	KindChar:     "char",
	KindString:   "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Integer reports whether the kind consumes a machine word and prints it as
// a number.
func (k Kind) Integer() bool {
	switch k {
	case KindSigned, KindUnsigned, KindHexLower, KindHexUpper, KindOctal, KindBinary:
		return true
	}
	return false
}

// Consumes reports how many arguments a directive of this kind reads.
func (k Kind) Consumes() int {
	switch k {
	case KindPercent, KindUnknown:
		return 0
	}
	return 1
}

func (k Kind) base() uint32 {
	switch k {
	case KindHexLower, KindHexUpper:
		return 16
	case KindOctal:
		return 8
	case KindBinary:
		return 2
	}
	return 10
}

func kindOf(c byte) Kind {
	switch c {
	case '%':
		return KindPercent
	case 'd', 'i':
		return KindSigned
	case 'u':
		return KindUnsigned
	case 'x':
		return KindHexLower
	case 'X':
		return KindHexUpper
	case 'o':
		return KindOctal
	case 'b':
		return KindBinary
	case 'c':
		return KindChar
	case 's':
		return KindString
	}
	return KindUnknown
}

// Directive is one parsed %-sequence.
type Directive struct {
	ZeroPad bool
	Width   int
	Kind    Kind
	// Verb is the specifier character as written in the template.
	Verb byte
}

// MaxWidth is the largest field width honoured. Wider requests are clamped so
// a field never exceeds the conversion buffer capacity.
const MaxWidth = bufferSize

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseDirective parses the directive whose body starts at template[i], the
// byte after '%'. It returns the directive and the index just past it. ok is
// false when the template ends before a specifier character.
func parseDirective(template string, i int) (d Directive, next int, ok bool) {
	if i < len(template) && template[i] == '0' {
		d.ZeroPad = true
		i++
	}
	for i < len(template) && isDigit(template[i]) {
		// saturate instead of overflowing on absurd widths
		if d.Width <= MaxWidth {
			d.Width = d.Width*10 + int(template[i]-'0')
		}
		i++
	}
	if d.Width > MaxWidth {
		d.Width = MaxWidth
	}
	if i >= len(template) {
		return d, i, false
	}
	d.Verb = template[i]
	d.Kind = kindOf(d.Verb)
	return d, i + 1, true
}

// Directives returns the directives of template in order, including %% and
// unknown specifiers. A directive cut short by the end of the template is
// not included.
func Directives(template string) []Directive {
	var out []Directive
	for i := 0; i < len(template); {
		if template[i] != '%' {
			i++
			continue
		}
		d, next, ok := parseDirective(template, i+1)
		if !ok {
			break
		}
		out = append(out, d)
		i = next
	}
	return out
}
