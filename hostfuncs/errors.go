package hostfuncs

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Error codes carried by SyscallError.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeMemoryFault     = "MEMORY_FAULT"
	CodeAssertionFailed = "ASSERTION_FAILED"
	CodeInternal        = "INTERNAL_ERROR"
)

// Sentinels for errors.Is. A *SyscallError matches the sentinel of its code.
var (
	ErrNotFound        = errors.New("unknown host call")
	ErrValidation      = errors.New("invalid host call")
	ErrMemoryFault     = errors.New("guest memory fault")
	ErrAssertionFailed = errors.New("guest assertion failed")
	ErrInternal        = errors.New("internal host error")
)

var sentinels = map[string]error{
	CodeNotFound:        ErrNotFound,
	CodeValidation:      ErrValidation,
	CodeMemoryFault:     ErrMemoryFault,
	CodeAssertionFailed: ErrAssertionFailed,
	CodeInternal:        ErrInternal,
}

// SyscallError is the error a host call returns to abort the guest.
type SyscallError struct {
	Err     error
	Code    string
	Syscall string
	Message string
}

func (e *SyscallError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Syscall == "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Syscall, e.Code, msg)
}

func (e *SyscallError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's code.
func (e *SyscallError) Is(target error) bool {
	s, ok := sentinels[e.Code]
	return ok && s == target
}

// NewNotFoundError reports a call to an unregistered host function.
func NewNotFoundError(name string) *SyscallError {
	return &SyscallError{
		Code:    CodeNotFound,
		Syscall: name,
		Message: "unknown host call " + name,
	}
}

// NewValidationError reports a malformed host call.
func NewValidationError(name, message string) *SyscallError {
	return &SyscallError{
		Code:    CodeValidation,
		Syscall: name,
		Message: message,
	}
}

// NewMemoryFault reports a guest pointer outside linear memory.
func NewMemoryFault(name string, offset, size uint32) *SyscallError {
	return &SyscallError{
		Code:    CodeMemoryFault,
		Syscall: name,
		Message: fmt.Sprintf("access at 0x%x outside memory of %d bytes", offset, size),
	}
}

// NewAssertionError reports a failed guest assertion at the given line.
func NewAssertionError(line uint32) *SyscallError {
	return &SyscallError{
		Code:    CodeAssertionFailed,
		Syscall: "assert_fail",
		Message: fmt.Sprintf("assertion failed at line %d", line),
	}
}

// NewPanicError converts a recovered panic value to an error.
func NewPanicError(name string, panicValue any) *SyscallError {
	e := &SyscallError{
		Code:    CodeInternal,
		Syscall: name,
	}
	switch v := panicValue.(type) {
	case error:
		e.Message = "panic"
		e.Err = v
	case string:
		e.Message = "panic: " + v
	default:
		e.Message = "panic recovered"
	}
	return e
}

// ErrorResponse is the JSON form of a host call failure, used in run reports.
type ErrorResponse struct {
	// Error is a machine-readable error type identifier (e.g., "MEMORY_FAULT").
	Error string `json:"error"`

	// Message is a human-readable error description.
	Message string `json:"message"`

	// Syscall names the host call that failed, if known.
	Syscall string `json:"syscall,omitempty"`
}

// ToErrorResponse converts err to an ErrorResponse. Errors that are not
// SyscallErrors are reported as INTERNAL_ERROR. Returns nil for a nil error.
func ToErrorResponse(err error) *ErrorResponse {
	if err == nil {
		return nil
	}
	var se *SyscallError
	if errors.As(err, &se) {
		return &ErrorResponse{
			Error:   se.Code,
			Message: se.Error(),
			Syscall: se.Syscall,
		}
	}
	return &ErrorResponse{
		Error:   CodeInternal,
		Message: err.Error(),
	}
}

// ToJSON serializes the ErrorResponse to JSON bytes.
// Returns nil if serialization fails (which should never happen for this simple type).
func (e ErrorResponse) ToJSON() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return data
}
