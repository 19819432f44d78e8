package domain

import (
	"context"
	"io"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// ExecuteWithContext runs cmd with the given output writers and blocks
	// until it exits. A non-zero exit status is reported as *CommandError.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// DirChecker answers filesystem existence questions.
type DirChecker interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over the defaults.
	Load() (*Config, error)
}

// Console prints user-facing notices.
type Console interface {
	Running(command, dir string)
	NotFound(name string)
	Failed(command string)
	Done()
}

// Logger records diagnostic entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all entries.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
