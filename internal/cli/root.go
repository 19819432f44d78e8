// Package cli provides the command-line interface for install-deps.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/install-deps/internal/app"
	"github.com/runoshun/install-deps/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for install-deps.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "install-deps",
		Short: "Install backend and frontend dependencies",
		Long: `install-deps runs the package manager install command in the
backend and frontend directories next to this executable, in that order.

Missing directories are skipped. The first failing install stops the run
and its exit status becomes the exit status of install-deps.

An optional install-deps.toml (or install-deps.yaml) next to the
executable can change the install command, the shell used to run it
and diagnostic logging.`,
		Version: version,
		// Positional arguments are accepted and ignored
		Args: cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errors.New("install-deps is not initialized")
			}
			uc := c.InstallDepsUseCase()
			_, err := uc.Execute(cmd.Context(), usecase.InstallDepsInput{
				BaseDir: c.Config.BaseDir,
			})
			return err
		},
	}

	return root
}
