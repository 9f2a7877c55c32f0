package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit code constants for the CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitUsage indicates invalid flags or arguments
	ExitUsage = 2
	// ExitCancelled indicates the run was interrupted by a signal
	ExitCancelled = 4
)

// errDisagreement reports two exhaustive searches with different optima.
var errDisagreement = errors.New("strategies disagree on the optimum")

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError creates a new CLIError wrapping an existing error
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Cause: err}
}

// usageErrorf builds an ExitUsage error.
func usageErrorf(format string, args ...any) *CLIError {
	return &CLIError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// HandleError prints err to the command's error output and returns the
// matching exit code.
func HandleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		cmd.PrintErrln("Operation cancelled")
		return ExitCancelled
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		cmd.PrintErrln("Error:", cliErr.Error())
		return cliErr.Code
	}

	cmd.PrintErrln("Error:", err)
	return ExitError
}

// isVerbose checks os.Args for the verbose flag; used by panic recovery,
// before or without flag parsing.
func isVerbose() bool {
	if os.Getenv("KNAPSACK_VERBOSE") != "" {
		return true
	}
	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}

	return false
}
