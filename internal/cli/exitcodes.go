package cli

import (
	"errors"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: file system errors or anything that doesn't fit below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: wrong argument count, a non-numeric index, an unknown list name.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	// Use for: an index past the end of a list.
	ExitNotFound = 3

	// ExitDataErr indicates the board file could not be understood.
	ExitDataErr = 4

	// ExitValidation indicates input that fails validation rules.
	// Use for: blank task text.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command.
// Reported is set once the error has been shown to the user.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

// Reported marks err as already printed, keeping its exit code
func Reported(err error) error {
	return &ExitError{Code: ExitCode(err), Err: err, Reported: true}
}

// IsReported reports whether err was already printed by a command
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, models.ErrUnknownCategory):
		return ExitUsage
	case errors.Is(err, models.ErrIndexOutOfRange):
		return ExitNotFound
	case errors.Is(err, models.ErrCorruptData):
		return ExitDataErr
	case errors.Is(err, models.ErrInvalidInput):
		return ExitValidation
	default:
		return ExitGeneral
	}
}
