package hostfuncs

import (
	"github.com/reglet-dev/swiprint/format"
)

// Bundle is a pre-configured set of related host calls.
// Bundles allow registering multiple calls at once for common use cases.
type Bundle interface {
	// Syscalls returns the calls in the bundle.
	Syscalls() []Syscall
}

// staticBundle implements Bundle with a fixed set of calls.
type staticBundle struct {
	syscalls []Syscall
}

func (b *staticBundle) Syscalls() []Syscall {
	return b.syscalls
}

// compositeBundle combines multiple bundles into one.
type compositeBundle struct {
	bundles []Bundle
}

func (b *compositeBundle) Syscalls() []Syscall {
	var result []Syscall
	for _, bundle := range b.bundles {
		result = append(result, bundle.Syscalls()...)
	}
	return result
}

// AllBundles returns a bundle containing all built-in host calls, with
// console output going to e.
// Includes: putc, puts, printf, assert_fail.
func AllBundles(e format.Emitter, opts ...ConsoleOption) Bundle {
	return &compositeBundle{
		bundles: []Bundle{
			ConsoleBundle(e, opts...),
			DiagBundle(),
		},
	}
}

// WithBundle registers all calls from a bundle.
func WithBundle(bundle Bundle) RegistryOption {
	return func(b *registryBuilder) {
		for _, sc := range bundle.Syscalls() {
			if err := b.addSyscall(sc); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
