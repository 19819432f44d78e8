package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Display string // Human-readable form used in console notices
	Args    []string
}

// NewCommand creates an ExecCommand for a program and its arguments.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	display := strings.TrimSpace(strings.Join(append([]string{program}, args...), " "))
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
		Display: display,
	}
}

// NewShellCommand creates an ExecCommand that runs script through `<shell> -c`.
// An empty shell falls back to DefaultShell.
func NewShellCommand(shell, script, dir string) *ExecCommand {
	if shell == "" {
		shell = DefaultShell
	}
	return &ExecCommand{
		Program: shell,
		Args:    []string{"-c", script},
		Dir:     dir,
		Display: script,
	}
}

// String returns the display form of the command.
func (c *ExecCommand) String() string {
	if c.Display != "" {
		return c.Display
	}
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}
