package cliparse

import "fmt"

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	// ErrShowHelp reports that help was printed and exit was requested.
	ErrShowHelp ErrorCode = iota + 1
	// ErrShowVersion reports that the version was printed and exit was requested.
	ErrShowVersion
	// ErrInvalidSchema reports a programming error in the declared [Schema].
	ErrInvalidSchema
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrShowHelp:
		return "show help"
	case ErrShowVersion:
		return "show version"
	case ErrInvalidSchema:
		return "invalid schema"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
//
// [Parse] returns an *Error with [ErrShowHelp] or [ErrShowVersion] only when the exit function of
// its [Env] returns instead of terminating the process, which is what tests do.
type Error struct {
	code     ErrorCode
	exitCode int
	err      error
}

func newExitError(code ErrorCode, exitCode int) error {
	return &Error{
		code:     code,
		exitCode: exitCode,
		err:      fmt.Errorf("%s: exit code %d", convertErrorCode(code), exitCode),
	}
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// ExitCode returns the exit code that was requested.
func (e *Error) ExitCode() int {
	return e.exitCode
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}
