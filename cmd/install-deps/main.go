// Package main is the entry point for the install-deps CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/install-deps/internal/app"
	"github.com/runoshun/install-deps/internal/cli"
	"github.com/runoshun/install-deps/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(exitStatus(os.Stderr, run()))
}

func run() error {
	// Targets are resolved next to the executable, not the working directory
	baseDir, err := app.ExecutableDir()
	if err != nil {
		return err
	}

	container, err := app.New(baseDir)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// exitStatus maps the result of run to a process exit status.
// Install failures were already reported by the installer, so only other
// errors are printed.
func exitStatus(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, domain.ErrCommandFailed) {
		_, _ = fmt.Fprintln(w, err)
	}
	return domain.ExitCodeOf(err)
}
