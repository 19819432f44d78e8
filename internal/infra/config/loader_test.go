package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/install-deps/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_NoConfigFile(t *testing.T) {
	baseDir := t.TempDir()

	loader := NewLoader(baseDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
	assert.Empty(t, loader.Source())
}

func TestLoader_Load_TOML(t *testing.T) {
	baseDir := t.TempDir()

	content := `
[install]
command = "pnpm install --frozen-lockfile"
shell = "bash"

[log]
level = "debug"
file = "logs/install.log"
`
	err := os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)

	loader := NewLoader(baseDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "pnpm install --frozen-lockfile", cfg.Install.Command)
	assert.Equal(t, "bash", cfg.Install.Shell)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs/install.log", cfg.Log.File)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.ConfigPath(baseDir), loader.Source())
}

func TestLoader_Load_PartialTOMLKeepsDefaults(t *testing.T) {
	baseDir := t.TempDir()

	content := `
[install]
command = "yarn install"
`
	err := os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)

	cfg, err := NewLoader(baseDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "yarn install", cfg.Install.Command)
	assert.Equal(t, domain.DefaultShell, cfg.Install.Shell)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestLoader_Load_YAML(t *testing.T) {
	baseDir := t.TempDir()

	content := `install:
  command: npm ci
log:
  level: info
`
	err := os.WriteFile(filepath.Join(baseDir, domain.YAMLConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)

	loader := NewLoader(baseDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "npm ci", cfg.Install.Command)
	assert.Equal(t, domain.DefaultShell, cfg.Install.Shell)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, domain.YAMLConfigPath(baseDir), loader.Source())
}

func TestLoader_Load_TOMLTakesPrecedenceOverYAML(t *testing.T) {
	baseDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName),
		[]byte("[install]\ncommand = \"from toml\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, domain.YAMLConfigFileName),
		[]byte("install:\n  command: from yaml\n"), 0o644))

	cfg, err := NewLoader(baseDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "from toml", cfg.Install.Command)
}

func TestLoader_Load_Warnings(t *testing.T) {
	baseDir := t.TempDir()

	content := `
[install]
command = "npm install"
retries = 3

[log]
level = "verbose"
file = 42

[extra]
key = "value"
`
	err := os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)

	cfg, err := NewLoader(baseDir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"unknown section: [extra]",
		"unknown key in [install]: retries",
		"log.file must be a string",
		`unknown log level "verbose" (using info)`,
	}, cfg.Warnings)
	assert.Equal(t, "npm install", cfg.Install.Command)
	assert.Empty(t, cfg.Log.File)
}

func TestLoader_Load_NonTableSection(t *testing.T) {
	baseDir := t.TempDir()

	err := os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName), []byte(`install = "npm install"`), 0o644)
	require.NoError(t, err)

	cfg, err := NewLoader(baseDir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"[install] must be a table"}, cfg.Warnings)
	assert.Equal(t, domain.DefaultInstallCommand, cfg.Install.Command)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	baseDir := t.TempDir()

	err := os.WriteFile(filepath.Join(baseDir, domain.ConfigFileName), []byte("[install\ncommand ="), 0o644)
	require.NoError(t, err)

	_, err = NewLoader(baseDir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ConfigFileName)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	baseDir := t.TempDir()

	err := os.WriteFile(filepath.Join(baseDir, domain.YAMLConfigFileName), []byte("install: [unclosed"), 0o644)
	require.NoError(t, err)

	_, err = NewLoader(baseDir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.YAMLConfigFileName)
}
