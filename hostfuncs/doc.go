// Package hostfuncs provides pure Go implementations of the host calls a
// sandboxed guest uses to produce output.
//
// These implementations have NO WASM runtime dependencies. They see guest
// memory through the small Memory interface, which wazero's api.Memory
// satisfies, so any host (or a test with a byte slice) can drive them.
//
// The console bundle is the guest's only output channel: putc emits one
// character, puts emits a NUL-terminated string, and printf runs the format
// engine on the host with its arguments read straight out of guest memory.
package hostfuncs
