// Package host runs guest WebAssembly programs whose only output channel is
// the host's character console.
//
// It wraps the wazero runtime, registers the console and diagnostics host
// calls, optionally exposes WASI for toolchain-built guests, and funnels
// every character a guest produces, from putc, puts, printf or a WASI
// stream, into one ordered console.
//
//	exec, err := host.NewExecutor(ctx, host.WithOutput(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	defer exec.Close(ctx)
//
//	result, err := exec.RunProgram(ctx, "hello", wasmBytes)
package host
