// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/install-deps/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from an optional TOML or YAML file
// next to the executable.
type Loader struct {
	baseDir string // Directory searched for the config file
	source  string // Path of the file used by the last Load, empty for defaults
}

// NewLoader creates a new Loader.
func NewLoader(baseDir string) *Loader {
	return &Loader{baseDir: baseDir}
}

// Source returns the path of the config file read by the last Load.
// It is empty when only defaults were used.
func (l *Loader) Source() string {
	return l.source
}

// Load returns the file configuration merged over the defaults.
// The TOML file wins over the YAML file; a missing file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	l.source = ""

	candidates := []struct {
		path   string
		decode func([]byte, any) error
	}{
		{domain.ConfigPath(l.baseDir), toml.Unmarshal},
		{domain.YAMLConfigPath(l.baseDir), yaml.Unmarshal},
	}

	for _, c := range candidates {
		file, err := loadFile(c.path, c.decode)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", c.path, err)
		}
		l.source = c.path
		return mergeConfigs(base, file), nil
	}

	return base, nil
}

// loadFile loads a configuration from a file.
func loadFile(path string, decode func([]byte, any) error) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := decode(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for _, section := range sortedKeys(raw) {
		value := raw[section]
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", section))
			continue
		}

		switch section {
		case "install":
			for _, key := range sortedKeys(m) {
				switch key {
				case "command":
					res.Install.Command, warnings = stringValue(m, section, key, warnings)
				case "shell":
					res.Install.Shell, warnings = stringValue(m, section, key, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, key))
				}
			}
		case "log":
			for _, key := range sortedKeys(m) {
				switch key {
				case "level":
					res.Log.Level, warnings = stringValue(m, section, key, warnings)
					if res.Log.Level != "" && !validLogLevels[res.Log.Level] {
						warnings = append(warnings, fmt.Sprintf("unknown log level %q (using info)", res.Log.Level))
					}
				case "file":
					res.Log.File, warnings = stringValue(m, section, key, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, key))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: [%s]", section))
		}
	}

	res.Warnings = warnings
	return res
}

// stringValue reads m[key] as a string, recording a warning on type mismatch.
func stringValue(m map[string]any, section, key string, warnings []string) (string, []string) {
	s, ok := m[key].(string)
	if !ok {
		return "", append(warnings, fmt.Sprintf("%s.%s must be a string", section, key))
	}
	return s, warnings
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mergeConfigs overlays non-empty values of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	res := *base
	if override.Install.Command != "" {
		res.Install.Command = override.Install.Command
	}
	if override.Install.Shell != "" {
		res.Install.Shell = override.Install.Shell
	}
	if override.Log.Level != "" {
		res.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		res.Log.File = override.Log.File
	}
	res.Warnings = append(append([]string(nil), base.Warnings...), override.Warnings...)
	return &res
}
