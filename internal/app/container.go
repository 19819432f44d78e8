// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/install-deps/internal/domain"
	"github.com/runoshun/install-deps/internal/infra/config"
	"github.com/runoshun/install-deps/internal/infra/console"
	"github.com/runoshun/install-deps/internal/infra/executor"
	"github.com/runoshun/install-deps/internal/infra/filesystem"
	"github.com/runoshun/install-deps/internal/infra/logging"
	"github.com/runoshun/install-deps/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	BaseDir string // Directory containing the executable; targets resolve against it
	LogFile string // Resolved log file path, empty when file logging is off
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor     domain.CommandExecutor
	Dirs         domain.DirChecker
	ConfigLoader domain.ConfigLoader
	Console      domain.Console
	Logger       domain.Logger

	// Streams child processes write to
	Stdout io.Writer
	Stderr io.Writer

	// Pointer fields
	AppConfig *domain.Config

	// Configuration
	Config Config

	closers []io.Closer
}

// New creates a new Container rooted at baseDir, wired to the process streams.
// The optional config file in baseDir is loaded here; a malformed file is an error.
func New(baseDir string) (*Container, error) {
	configLoader := config.NewLoader(baseDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Config{
		BaseDir: baseDir,
		LogFile: appConfig.LogFilePath(baseDir),
	}

	logger := logging.New(os.Stderr, cfg.LogFile, logging.ParseLevel(appConfig.Log.Level))
	if src := configLoader.Source(); src != "" {
		logger.Debug("config", "loaded "+src)
	} else {
		logger.Debug("config", "no config file, using defaults")
	}

	return &Container{
		Executor:     executor.NewClient(),
		Dirs:         filesystem.NewClient(),
		ConfigLoader: configLoader,
		Console:      console.New(os.Stdout),
		Logger:       logger,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		AppConfig:    appConfig,
		Config:       cfg,
		closers:      []io.Closer{logger},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	appConfig *domain.Config,
	exec domain.CommandExecutor,
	dirs domain.DirChecker,
	out domain.Console,
	logger domain.Logger,
	stdout, stderr io.Writer,
) *Container {
	return &Container{
		Executor:  exec,
		Dirs:      dirs,
		Console:   out,
		Logger:    logger,
		Stdout:    stdout,
		Stderr:    stderr,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Close releases resources held by the container (the log file).
func (c *Container) Close() error {
	var lastErr error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			lastErr = err
		}
	}
	c.closers = nil
	return lastErr
}

// ExecutableDir returns the directory holding the running executable with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}

// UseCase factory methods

// InstallDepsUseCase returns a new InstallDeps use case.
func (c *Container) InstallDepsUseCase() *usecase.InstallDeps {
	return usecase.NewInstallDeps(c.Executor, c.Dirs, c.Console, c.Logger, c.AppConfig, c.Stdout, c.Stderr)
}
