package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure taxonomy. Callers classify
// failures with errors.Is against these.
var (
	// ErrUnknownFlavor indicates a flavor name outside the registered set.
	ErrUnknownFlavor = errors.New("unknown flavor")

	// ErrInvalidProjectName indicates an empty, unsafe, or reserved name.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrTargetExists indicates the target directory is already populated.
	ErrTargetExists = errors.New("target directory not empty")

	// ErrPartialWrite indicates a commit-phase I/O failure. Files created
	// during the run have been removed on a best-effort basis.
	ErrPartialWrite = errors.New("partial write")

	// ErrVariableMissing indicates a catalog/resolver mismatch: a file spec
	// requires a variable the resolver did not produce. This is a defect in
	// the shipped catalog, not user error.
	ErrVariableMissing = errors.New("template variable missing")

	// ErrUnresolvedPlaceholder indicates a placeholder survived past resolver
	// validation. Like ErrVariableMissing this signals an internal defect.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
)

// DetailError carries structured context for an engine failure.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path or file, when relevant.
	Location string

	// Variable is the variable name for template errors.
	Variable string

	// Hint provides actionable guidance.
	Hint string

	// Cause is the underlying error, usually one of the sentinels.
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Variable != "" {
		b.WriteString(" [variable: ")
		b.WriteString(e.Variable)
		b.WriteString("]")
	}
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

func newUnknownFlavorError(name string) error {
	return &DetailError{
		Type:    "unknown flavor",
		Message: fmt.Sprintf("no flavor named %q", name),
		Hint:    "Valid flavors: portfolio, api, fullstack.",
		Cause:   ErrUnknownFlavor,
	}
}

func newInvalidNameError(name, reason string) error {
	return &DetailError{
		Type:    "invalid project name",
		Message: fmt.Sprintf("project name %q %s", name, reason),
		Hint:    "Use letters, digits, spaces, hyphens, or underscores.",
		Cause:   ErrInvalidProjectName,
	}
}

func newTargetExistsError(dir string) error {
	return &DetailError{
		Type:     "target exists",
		Message:  "target directory already contains files",
		Location: dir,
		Hint:     "Choose a different directory or remove the existing one.",
		Cause:    ErrTargetExists,
	}
}

func newPartialWriteError(path string, cause error) error {
	return &DetailError{
		Type:     "partial write",
		Message:  "generation aborted during commit; created files were removed",
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrPartialWrite, cause),
	}
}

func newVariableMissingError(file, variable string) error {
	return &DetailError{
		Type:     "template variable missing",
		Message:  "catalog requires a variable the resolver did not produce",
		Location: file,
		Variable: variable,
		Cause:    ErrVariableMissing,
	}
}

func newUnresolvedPlaceholderError(file, token string) error {
	return &DetailError{
		Type:     "unresolved placeholder",
		Message:  "template body references a variable absent from the bindings",
		Location: file,
		Variable: token,
		Cause:    ErrUnresolvedPlaceholder,
	}
}
