package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // everything passed
	ExitFailure      = 1 // an assertion failed or a diff was found
	ExitCommandError = 2 // bad arguments, unreadable files, bad config
)

// ExitError is an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Errors that are not an ExitError are command errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

const (
	red   = "\x1b[31m"
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

// painter colours output when it goes to a terminal, or when forced.
type painter struct{ enabled bool }

func newPainter(mode string, w io.Writer) painter {
	switch mode {
	case "always":
		return painter{true}
	case "never":
		return painter{false}
	}
	f, ok := w.(*os.File)
	return painter{ok && term.IsTerminal(int(f.Fd()))}
}

func (p painter) paint(color, s string) string {
	if !p.enabled {
		return s
	}
	return color + s + reset
}

func (p painter) fail(s string) string { return p.paint(red, s) }
func (p painter) pass(s string) string { return p.paint(green, s) }
