package domain

import "path/filepath"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Install  InstallConfig `toml:"install" yaml:"install"`
	Log      LogConfig     `toml:"log" yaml:"log"`
	Warnings []string      `toml:"-" yaml:"-"`
}

// InstallConfig holds settings from the [install] section.
type InstallConfig struct {
	Command string `toml:"command" yaml:"command"` // Install command run in each target
	Shell   string `toml:"shell" yaml:"shell"`     // Shell used to run the command
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // Log level: debug, info, warn, error
	File  string `toml:"file" yaml:"file"`   // Optional log file, relative to the base directory
}

// Defaults and file names.
const (
	DefaultInstallCommand = "npm install"
	DefaultShell          = "sh"
	DefaultLogLevel       = "warn"

	ConfigFileName     = "install-deps.toml"
	YAMLConfigFileName = "install-deps.yaml"
)

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Install: InstallConfig{
			Command: DefaultInstallCommand,
			Shell:   DefaultShell,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ConfigPath returns the TOML config path inside baseDir.
func ConfigPath(baseDir string) string {
	return filepath.Join(baseDir, ConfigFileName)
}

// YAMLConfigPath returns the YAML config path inside baseDir.
func YAMLConfigPath(baseDir string) string {
	return filepath.Join(baseDir, YAMLConfigFileName)
}

// LogFilePath resolves the configured log file against baseDir.
// Returns an empty string when file logging is disabled.
func (c *Config) LogFilePath(baseDir string) string {
	if c.Log.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Log.File) {
		return filepath.Clean(c.Log.File)
	}
	return filepath.Join(baseDir, c.Log.File)
}
