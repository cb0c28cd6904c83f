package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	exitFailure    = 1
	exitValidation = 2
)

// CommandError provides structured error reporting for CLI commands.
type CommandError struct {
	Message    string
	Cause      error
	Suggestion string
	ExitCode   int
}

// Error implements the error interface.
func (e CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "command failed"
}

// Unwrap exposes the wrapped error.
func (e CommandError) Unwrap() error {
	return e.Cause
}

// ExitStatus returns the process exit code associated with the error.
func (e CommandError) ExitStatus() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	return exitFailure
}

// ValidationError reports a missing or malformed input. Nothing has been
// written when it is returned.
func ValidationError(message, suggestion string) error {
	return CommandError{Message: message, Suggestion: suggestion, ExitCode: exitValidation}
}

// storeFailure wraps a data-access error for display. The cause is always
// printed.
func storeFailure(command string, cause error) error {
	return CommandError{
		Message:    fmt.Sprintf("%s: store operation failed", command),
		Cause:      cause,
		Suggestion: "Check that --db points to a readable and writable petsctl database.",
		ExitCode:   exitFailure,
	}
}

// exportFailure wraps a file export error for display.
func exportFailure(command string, cause error) error {
	return CommandError{
		Message:    fmt.Sprintf("%s: export failed", command),
		Cause:      cause,
		Suggestion: "Check that --output points to a writable location.",
		ExitCode:   exitFailure,
	}
}

// formatSuggestion formats a hint for display when suggestions are provided.
func formatSuggestion(hint string) string {
	if hint == "" {
		return ""
	}
	return fmt.Sprintf("hint: %s", hint)
}

// reportError prints err to w and returns the exit code for it.
func reportError(w io.Writer, err error) int {
	var cerr CommandError
	if !errors.As(err, &cerr) {
		fmt.Fprintln(w, err)
		return exitFailure
	}

	msg := strings.TrimSpace(cerr.Message)
	if msg == "" && cerr.Cause != nil {
		msg = cerr.Cause.Error()
	}
	if msg != "" {
		fmt.Fprintln(w, msg)
	}
	if cerr.Cause != nil && msg != cerr.Cause.Error() {
		fmt.Fprintf(w, "details: %v\n", cerr.Cause)
	}
	if cerr.Suggestion != "" {
		fmt.Fprintln(w, formatSuggestion(cerr.Suggestion))
	}
	return cerr.ExitStatus()
}
