// Package output provides structured output and error handling for the journey2html CLI.
package output

import "errors"

// Exit codes for the converter:
// 0 = Success
// 1 = User error (bad args, unknown flag values)
// 10 = Malformed entry (entry JSON failed to parse or is missing required fields)
// 20 = Filesystem error (missing input, pre-existing destination, corrupt archive)
//
// The 10/20 split lets wrapping shell scripts tell bad entry data apart
// from filesystem problems without parsing stderr.
const (
	ExitSuccess    = 0
	ExitUserError  = 1
	ExitEntryError = 10
	ExitFilesystem = 20
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, unknown flag values.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewEntryError creates an error for malformed entry files (exit code 10).
// The message should name the offending file.
func NewEntryError(message string) *ExitError {
	return &ExitError{
		Code:    ExitEntryError,
		Message: message,
	}
}

// NewEntryErrorWithCause creates a malformed-entry error wrapping an underlying cause.
func NewEntryErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitEntryError,
		Message: message,
		Cause:   cause,
	}
}

// NewFilesystemError creates an error for filesystem failures (exit code 20).
// Use for: missing archives, destination collisions, extraction failures.
func NewFilesystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitFilesystem,
		Message: message,
	}
}

// NewFilesystemErrorWithCause creates a filesystem error wrapping an underlying cause.
func NewFilesystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFilesystem,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to user error for untyped errors
	return ExitUserError
}
