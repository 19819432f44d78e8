// Package executor provides command execution functionality.
package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/runoshun/install-deps/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct {
	stdin io.Reader
}

// NewClient creates a new command executor client.
// Child processes inherit the caller's stdin.
func NewClient() *Client {
	return &Client{stdin: os.Stdin}
}

// NewClientWithStdin creates a client that feeds stdin to child processes.
func NewClientWithStdin(stdin io.Reader) *Client {
	return &Client{stdin: stdin}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
// Output is passed through untouched. Any failure, including a program that
// cannot be started or a missing working directory, is returned as
// *domain.CommandError carrying the exit status to propagate.
func (c *Client) ExecuteWithContext(ctx context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdin = c.stdin
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr

	if err := execCmd.Run(); err != nil {
		return domain.NewCommandError(cmd.String(), cmd.Dir, exitCode(err), err)
	}
	return nil
}

// exitCode extracts the child's exit status. Errors that never produced a
// status (start failures) map to 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
