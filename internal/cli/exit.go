package cli

import (
	"errors"

	"github.com/oidtool/oids/pkg/lint"
)

// Exit statuses.
const (
	ExitOK         = 0
	ExitLintFailed = 1 // the definition was read but failed lint
	ExitFatal      = 2 // unreadable or malformed input, or bad usage
)

// ExitError carries the process exit status for a failed command.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to an exit status.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, lint.ErrLintFailed):
		return ExitLintFailed
	default:
		return ExitFatal
	}
}
