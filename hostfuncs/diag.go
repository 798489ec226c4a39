package hostfuncs

import "context"

// DiagBundle returns the guest diagnostics calls:
//
//	assert_fail(line)   abort the guest with an ASSERTION_FAILED error
func DiagBundle() Bundle {
	return &staticBundle{
		syscalls: []Syscall{
			{Name: "assert_fail", Params: 1, Handler: assertFail},
		},
	}
}

func assertFail(_ context.Context, _ Memory, params []uint32) error {
	return NewAssertionError(params[0])
}
