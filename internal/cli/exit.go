package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK = 0
	// ExitFindings means the check found problems, or an unexpected error occurred.
	ExitFindings = 1
	// ExitSchemaError means the schema exists but is malformed. Command line
	// usage errors share this code.
	ExitSchemaError = 2
)

// ExitError carries a specific exit code through cobra's error return.
// Err is nil when the findings were already reported on stdout.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// errFindings is returned when a check reported failing findings.
var errFindings = &ExitError{Code: ExitFindings}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFindings
}

// reportError prints err to stderr unless it only carries an exit code.
func reportError(cmd *cobra.Command, err error) {
	var ee *ExitError
	if errors.As(err, &ee) && ee.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// usageError turns flag parsing failures into usage exit codes.
func usageError(cmd *cobra.Command, err error) error {
	return &ExitError{Code: ExitSchemaError, Err: fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath())}
}
