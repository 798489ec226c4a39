// Package guest gives programs compiled for GOOS=wasip1 access to the host's
// console and diagnostics calls imported from the "armsim" module.
//
// Built for any other target, the same API writes to standard output, panics
// on a failed assertion and exits the process, so a guest program also runs
// natively.
//
// Build a guest:
//
//	GOOS=wasip1 GOARCH=wasm go build -o demo.wasm ./examples/guest-demo
package guest
