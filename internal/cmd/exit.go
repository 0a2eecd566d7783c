// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	"github.com/mkwd/cli/internal/scaffold"
)

// Exit codes reported by the mkwd binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a rejected flavor or project name.
	ExitValidationError = 2

	// ExitTargetExists indicates the target directory is already in use.
	ExitTargetExists = 3

	// ExitPartialWrite indicates generation failed mid-write and was rolled back.
	ExitPartialWrite = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitTargetExists:
		return "Target Exists"
	case ExitPartialWrite:
		return "Partial Write"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, scaffold.ErrUnknownFlavor),
		errors.Is(err, scaffold.ErrInvalidProjectName):
		return ExitValidationError
	case errors.Is(err, scaffold.ErrTargetExists):
		return ExitTargetExists
	case errors.Is(err, scaffold.ErrPartialWrite):
		return ExitPartialWrite
	default:
		return ExitGeneralError
	}
}
