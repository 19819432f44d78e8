package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/install-deps/internal/domain"
	"github.com/runoshun/install-deps/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	baseDir := t.TempDir()

	c, err := New(baseDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, baseDir, c.Config.BaseDir)
	assert.Empty(t, c.Config.LogFile)
	assert.Equal(t, domain.DefaultInstallCommand, c.AppConfig.Install.Command)
	assert.NotNil(t, c.Executor)
	assert.NotNil(t, c.Dirs)
	assert.NotNil(t, c.ConfigLoader)
	assert.NotNil(t, c.Console)
	assert.NotNil(t, c.Logger)
	assert.NotNil(t, c.InstallDepsUseCase())
}

func TestNew_LogFileFromConfig(t *testing.T) {
	baseDir := t.TempDir()
	content := "[log]\nlevel = \"debug\"\nfile = \"logs/install.log\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName), []byte(content), 0o644))

	c, err := New(baseDir)
	require.NoError(t, err)

	logPath := filepath.Join(baseDir, "logs", "install.log")
	assert.Equal(t, logPath, c.Config.LogFile)
	require.NoError(t, c.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [config] loaded "+domain.ConfigPath(baseDir))
}

func TestNew_InvalidConfig(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName), []byte("[install"), 0o644))

	_, err := New(baseDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestNewWithDeps(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	dirs := testutil.NewMockDirChecker()
	out := &testutil.MockConsole{}
	var stdout, stderr bytes.Buffer

	c := NewWithDeps(Config{BaseDir: "/app"}, domain.NewDefaultConfig(), exec, dirs, out, nil, &stdout, &stderr)

	assert.Equal(t, "/app", c.Config.BaseDir)
	assert.NoError(t, c.Close())
	assert.NotNil(t, c.InstallDepsUseCase())
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
