package programs

import "github.com/reglet-dev/swiprint/format"

// Hello prints the printf feature tour: every directive, negative numbers
// through %u and %d, and a count from 0 to 16 in four bases.
func Hello(e format.Emitter) {
	p := func(template string, args ...any) { format.Printf(e, template, args...) }

	p("Testing aprintf now.\naprintf supports: d, i, u, x, X, o, b, s, c\n\n")
	p("Testing %%d:\t")
	p("%s=%d\n", "1+2", 1+2)
	p("Testing %%c:\t")
	p("%c%c%c\n", 'a', 'b', 'c')
	p("Testing <=0:\t")
	p("1-1=%u, 1-2u=%u, 1-3d=%d\n", 1-1, 1-2, 1-3)
	p("1-1=0, 1-2=%d\n", 1-2)
	p("Testing %%dxX:\t")
	a, b := 511, 65535
	p("  %d+ %d=  %d\n", a, b, a+b)
	p("\t\t0x%x+0x%x=0x%x\n", a, b, a+b)
	p("\t\t0x%X+0x%X=0x%X\n\n", a, b, a+b)
	p("Displaying ritual pointless message:\n\t")
	p("Hello, world!\n\n")
	p("Counting in multiple bases:\n")
	for i := 0; i <= 16; i++ {
		p("%d\t%x\t%o\t%b\n", i, i, i, i)
	}
	p("\n\nProgram complete.\n")
}
