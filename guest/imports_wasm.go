//go:build wasip1

package guest

//go:wasmimport armsim putc
func putc(c uint32)

//go:wasmimport armsim assert_fail
//nolint:revive // intentional snake_case to match WASM import convention
func assert_fail(line uint32)

//go:wasmimport armsim exit
func exit(code uint32)
