package output

import "errors"

// Exit codes:
// 0 = success
// 1 = user error (bad arguments, unknown template, invalid project name)
// 2 = system error (I/O failure, unwritable target)
// 3 = conflict (target directory not empty, file already exists)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
)

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is/errors.As.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an exit-code-1 error for user-caused problems:
// bad flags, unknown templates, invalid project names.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemError creates an exit-code-2 error for environment failures:
// unwritable directories, I/O errors.
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// NewSystemErrorWithCause wraps an underlying error as a system error.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewConflictError creates an exit-code-3 error for state conflicts:
// a non-empty target directory without --force.
func NewConflictError(message string) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message}
}

// GetExitCode maps an error to a process exit code. Nil is success;
// untyped errors default to user error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
