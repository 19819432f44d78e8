// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/install-deps/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	ExitCodes map[string]int // Exit status per working directory (default 0)
	Output    map[string]string
	Calls     []domain.ExecCommand
}

// NewMockCommandExecutor creates a new MockCommandExecutor with initialized maps.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		ExitCodes: make(map[string]int),
		Output:    make(map[string]string),
	}
}

// ExecuteWithContext records the call, writes the configured output and
// fails with the configured exit code.
func (m *MockCommandExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, _ io.Writer) error {
	m.Calls = append(m.Calls, *cmd)
	if out, ok := m.Output[cmd.Dir]; ok && stdout != nil {
		_, _ = io.WriteString(stdout, out)
	}
	if code := m.ExitCodes[cmd.Dir]; code != 0 {
		return domain.NewCommandError(cmd.String(), cmd.Dir, code, fmt.Errorf("exit status %d", code))
	}
	return nil
}

// Dirs returns the working directories of all recorded calls, in order.
func (m *MockCommandExecutor) Dirs() []string {
	dirs := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		dirs = append(dirs, c.Dir)
	}
	return dirs
}

// MockDirChecker is a test double for domain.DirChecker.
type MockDirChecker struct {
	Dirs map[string]bool
}

// NewMockDirChecker creates a MockDirChecker that knows the given directories.
func NewMockDirChecker(dirs ...string) *MockDirChecker {
	m := &MockDirChecker{Dirs: make(map[string]bool)}
	for _, d := range dirs {
		m.Dirs[d] = true
	}
	return m
}

// IsDir reports whether path was registered.
func (m *MockDirChecker) IsDir(path string) bool {
	return m.Dirs[path]
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConsole is a test double for domain.Console that records each notice.
type MockConsole struct {
	Lines []string
}

// Running records a running notice.
func (m *MockConsole) Running(command, dir string) {
	m.Lines = append(m.Lines, domain.RunningMessage(command, dir))
}

// NotFound records a missing-directory notice.
func (m *MockConsole) NotFound(name string) {
	m.Lines = append(m.Lines, domain.NotFoundMessage(name))
}

// Failed records a failure notice.
func (m *MockConsole) Failed(command string) {
	m.Lines = append(m.Lines, domain.FailedMessage(command))
}

// Done records the confirmation notice.
func (m *MockConsole) Done() {
	m.Lines = append(m.Lines, domain.DoneMessage)
}

// MockLogger is a test double for domain.Logger that records entries as
// "LEVEL category: msg".
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s %s: %s", level, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }
