package output

import (
	"context"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RunWithSpinner executes action behind a spinner titled title. When stdout
// is not a terminal the action runs directly, so piped output stays clean.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)
	spinErr := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() { errCh <- action() }).
		Run()
	if spinErr != nil {
		return spinErr
	}
	return <-errCh
}
