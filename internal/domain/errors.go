package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrCommandFailed  = errors.New("command failed")
	ErrEmptyCommand   = errors.New("install command cannot be empty")
	ErrEmptyBaseDir   = errors.New("base directory cannot be empty")
)

// CommandError reports an install command that exited with a non-zero status.
// It is the only failure kind the installer distinguishes: a missing
// executable, a failed install and an unusable directory all end up here.
// Fields are ordered to minimize memory padding.
type CommandError struct {
	Err      error
	Command  string
	Dir      string
	ExitCode int
}

// NewCommandError creates a CommandError. Exit codes below 1 (a process
// killed by a signal reports -1) are coerced to 1 so that callers always
// terminate with a failure status.
func NewCommandError(command, dir string, exitCode int, err error) *CommandError {
	if exitCode < 1 {
		exitCode = 1
	}
	return &CommandError{
		Command:  command,
		Dir:      dir,
		ExitCode: exitCode,
		Err:      err,
	}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s (in %s) exited with status %d", e.Command, e.Dir, e.ExitCode)
}

// Unwrap exposes ErrCommandFailed and the underlying cause to errors.Is/As.
func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Err}
}

// ExitCodeOf returns the process exit status an error should produce.
// nil maps to 0, a CommandError to its exit code and anything else to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return 1
}
