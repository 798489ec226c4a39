//go:build !wasip1

package guest

import (
	"fmt"
	"io"
	"os"
)

// Native stand-ins for the host calls.
var (
	stdout io.Writer = os.Stdout
	osExit           = os.Exit
)

func putc(c uint32) {
	_, _ = stdout.Write([]byte{byte(c)})
}

//nolint:revive // mirrors the WASM import name
func assert_fail(line uint32) {
	panic(fmt.Sprintf("assertion failed at line %d", line))
}

func exit(code uint32) {
	osExit(int(code))
}
