// Package wasmtest assembles small WebAssembly binaries for tests, so host
// code can be exercised against real guest modules without a wasm toolchain.
//
// Only what the host tests need is supported: i32 function signatures,
// imported and local functions, one memory, active data segments and
// function or memory exports.
package wasmtest

import (
	"fmt"
)

const (
	valI32 = 0x7F

	kindFunc   = 0x00
	kindMemory = 0x02
)

type funcType struct {
	params, results int
}

type importFunc struct {
	module, name string
	typ          int
}

type localFunc struct {
	typ  int
	body []byte
}

type export struct {
	name string
	kind byte
	idx  uint32
}

type segment struct {
	offset uint32
	data   []byte
}

// Module is a WebAssembly module under construction.
type Module struct {
	types    []funcType
	imports  []importFunc
	funcs    []localFunc
	exports  []export
	data     []segment
	memPages uint32
	hasMem   bool
}

// New returns an empty module.
func New() *Module {
	return &Module{}
}

func (m *Module) typeIndex(params, results int) int {
	ft := funcType{params: params, results: results}
	for i, t := range m.types {
		if t == ft {
			return i
		}
	}
	m.types = append(m.types, ft)
	return len(m.types) - 1
}

// Import declares an imported function taking params i32 values and
// returning results i32 values, and returns its function index. All imports
// must be declared before the first Func.
func (m *Module) Import(module, name string, params, results int) uint32 {
	if len(m.funcs) > 0 {
		panic("wasmtest: Import after Func")
	}
	m.imports = append(m.imports, importFunc{module: module, name: name, typ: m.typeIndex(params, results)})
	return uint32(len(m.imports) - 1) //nolint:gosec // G115: test modules are tiny
}

// Func defines a function from the concatenated instructions and returns its
// function index. The closing end opcode is appended.
func (m *Module) Func(params, results int, instrs ...[]byte) uint32 {
	var body []byte
	for _, in := range instrs {
		body = append(body, in...)
	}
	body = append(body, opEnd)
	m.funcs = append(m.funcs, localFunc{typ: m.typeIndex(params, results), body: body})
	return uint32(len(m.imports) + len(m.funcs) - 1) //nolint:gosec // G115: test modules are tiny
}

// Memory declares the module's memory with a minimum of pages 64KiB pages.
func (m *Module) Memory(pages uint32) *Module {
	m.memPages = pages
	m.hasMem = true
	return m
}

// ExportFunc exports function idx under name.
func (m *Module) ExportFunc(name string, idx uint32) *Module {
	m.exports = append(m.exports, export{name: name, kind: kindFunc, idx: idx})
	return m
}

// ExportMemory exports the module's memory under name.
func (m *Module) ExportMemory(name string) *Module {
	m.exports = append(m.exports, export{name: name, kind: kindMemory})
	return m
}

// Data places b in memory at offset when the module is instantiated.
func (m *Module) Data(offset uint32, b []byte) *Module {
	m.data = append(m.data, segment{offset: offset, data: append([]byte(nil), b...)})
	return m
}

// CString places s followed by a NUL at offset.
func (m *Module) CString(offset uint32, s string) *Module {
	return m.Data(offset, append([]byte(s), 0))
}

// Words places little-endian 32-bit words at offset.
func (m *Module) Words(offset uint32, ws ...uint32) *Module {
	b := make([]byte, 0, 4*len(ws))
	for _, w := range ws {
		b = append(b, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return m.Data(offset, b)
}

// Bytes encodes the module in the binary format.
func (m *Module) Bytes() []byte {
	if len(m.data) > 0 && !m.hasMem {
		panic(fmt.Sprintf("wasmtest: %d data segments without memory", len(m.data)))
	}

	out := []byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}

	if len(m.types) > 0 {
		var s []byte
		s = appendU32(s, uint32(len(m.types))) //nolint:gosec // G115: test modules are tiny
		for _, t := range m.types {
			s = append(s, 0x60)
			s = appendValTypes(s, t.params)
			s = appendValTypes(s, t.results)
		}
		out = appendSection(out, 1, s)
	}

	if len(m.imports) > 0 {
		var s []byte
		s = appendU32(s, uint32(len(m.imports))) //nolint:gosec // G115: test modules are tiny
		for _, im := range m.imports {
			s = appendName(s, im.module)
			s = appendName(s, im.name)
			s = append(s, kindFunc)
			s = appendU32(s, uint32(im.typ)) //nolint:gosec // G115: test modules are tiny
		}
		out = appendSection(out, 2, s)
	}

	if len(m.funcs) > 0 {
		var s []byte
		s = appendU32(s, uint32(len(m.funcs))) //nolint:gosec // G115: test modules are tiny
		for _, f := range m.funcs {
			s = appendU32(s, uint32(f.typ)) //nolint:gosec // G115: test modules are tiny
		}
		out = appendSection(out, 3, s)
	}

	if m.hasMem {
		s := []byte{0x01, 0x00}
		s = appendU32(s, m.memPages)
		out = appendSection(out, 5, s)
	}

	if len(m.exports) > 0 {
		var s []byte
		s = appendU32(s, uint32(len(m.exports))) //nolint:gosec // G115: test modules are tiny
		for _, e := range m.exports {
			s = appendName(s, e.name)
			s = append(s, e.kind)
			s = appendU32(s, e.idx)
		}
		out = appendSection(out, 7, s)
	}

	if len(m.funcs) > 0 {
		var s []byte
		s = appendU32(s, uint32(len(m.funcs))) //nolint:gosec // G115: test modules are tiny
		for _, f := range m.funcs {
			code := append([]byte{0x00}, f.body...) // no locals
			s = appendU32(s, uint32(len(code)))     //nolint:gosec // G115: test modules are tiny
			s = append(s, code...)
		}
		out = appendSection(out, 10, s)
	}

	if len(m.data) > 0 {
		var s []byte
		s = appendU32(s, uint32(len(m.data))) //nolint:gosec // G115: test modules are tiny
		for _, d := range m.data {
			s = append(s, 0x00)
			s = append(s, I32Const(int32(d.offset))...) //nolint:gosec // G115: offsets stay below 2GiB
			s = append(s, opEnd)
			s = appendU32(s, uint32(len(d.data))) //nolint:gosec // G115: test modules are tiny
			s = append(s, d.data...)
		}
		out = appendSection(out, 11, s)
	}

	return out
}

func appendSection(dst []byte, id byte, body []byte) []byte {
	dst = append(dst, id)
	dst = appendU32(dst, uint32(len(body))) //nolint:gosec // G115: test modules are tiny
	return append(dst, body...)
}

func appendValTypes(dst []byte, n int) []byte {
	dst = appendU32(dst, uint32(n)) //nolint:gosec // G115: test modules are tiny
	for i := 0; i < n; i++ {
		dst = append(dst, valI32)
	}
	return dst
}

func appendName(dst []byte, s string) []byte {
	dst = appendU32(dst, uint32(len(s))) //nolint:gosec // G115: test modules are tiny
	return append(dst, s...)
}

// appendU32 appends v as unsigned LEB128.
func appendU32(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

// appendS32 appends v as signed LEB128.
func appendS32(dst []byte, v int32) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}
