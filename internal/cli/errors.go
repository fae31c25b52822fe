package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// ExitError is an error with the process exit code it should produce.
type ExitError struct {
	err  error
	code int
}

func (e *ExitError) Error() string {
	return e.err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.err
}

// Code returns the exit code.
func (e *ExitError) Code() int {
	return e.code
}

// ExitCode maps err to a process exit code: 0 for nil, the code of an
// ExitError, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitFailure
}

func usageError(format string, args ...any) error {
	return &ExitError{err: fmt.Errorf(format, args...), code: exitUsage}
}

// usageArgs marks positional argument and missing required flag errors as
// usage errors. Flags are already parsed when cobra validates arguments.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &ExitError{err: err, code: exitUsage}
		}
		if err := cmd.ValidateRequiredFlags(); err != nil {
			return &ExitError{err: err, code: exitUsage}
		}
		return nil
	}
}

// noSubcommandArgs rejects anything left over after subcommand lookup.
func noSubcommandArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}
