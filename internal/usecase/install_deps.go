package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/install-deps/internal/domain"
)

// InstallDepsInput contains the parameters for installing dependencies.
type InstallDepsInput struct {
	BaseDir string // Directory the targets are resolved against (required)
}

// InstallDepsOutput lists what happened to each target, in processing order.
type InstallDepsOutput struct {
	Installed []string // Targets whose install command succeeded
	Skipped   []string // Targets whose directory does not exist
}

// InstallDeps is the use case for running the install command in each
// project subdirectory. Targets run strictly in order and the first failure
// stops the run.
// Fields are ordered to minimize memory padding.
type InstallDeps struct {
	executor domain.CommandExecutor
	dirs     domain.DirChecker
	console  domain.Console
	logger   domain.Logger
	stdout   io.Writer
	stderr   io.Writer
	command  string
	shell    string
	targets  []domain.Target
}

// NewInstallDeps creates a new InstallDeps use case.
// stdout and stderr receive the child processes' output unchanged.
func NewInstallDeps(
	executor domain.CommandExecutor,
	dirs domain.DirChecker,
	console domain.Console,
	logger domain.Logger,
	cfg *domain.Config,
	stdout, stderr io.Writer,
) *InstallDeps {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &InstallDeps{
		executor: executor,
		dirs:     dirs,
		console:  console,
		logger:   logger,
		stdout:   stdout,
		stderr:   stderr,
		command:  cfg.Install.Command,
		shell:    cfg.Install.Shell,
		targets:  domain.DefaultTargets(),
	}
}

// Execute installs dependencies in every existing target directory.
// A failing command is returned as *domain.CommandError after the failure
// notice has been printed; remaining targets are not touched.
func (uc *InstallDeps) Execute(ctx context.Context, in InstallDepsInput) (*InstallDepsOutput, error) {
	if in.BaseDir == "" {
		return nil, domain.ErrEmptyBaseDir
	}
	if uc.command == "" {
		return nil, domain.ErrEmptyCommand
	}

	out := &InstallDepsOutput{}

	for _, target := range uc.targets {
		dir := target.Path(in.BaseDir)

		if !uc.dirs.IsDir(dir) {
			uc.logger.Debug("install", fmt.Sprintf("skip %s: %s is not a directory", target.Name, dir))
			uc.console.NotFound(target.Name)
			out.Skipped = append(out.Skipped, target.Name)
			continue
		}

		cmd := domain.NewShellCommand(uc.shell, uc.command, dir)
		uc.console.Running(cmd.String(), dir)
		uc.logger.Info("install", fmt.Sprintf("%s: %s -c %q", target.Name, cmd.Program, uc.command))

		if err := uc.executor.ExecuteWithContext(ctx, cmd, uc.stdout, uc.stderr); err != nil {
			uc.console.Failed(cmd.String())

			var cmdErr *domain.CommandError
			if !errors.As(err, &cmdErr) {
				cmdErr = domain.NewCommandError(cmd.String(), dir, 1, err)
			}
			uc.logger.Error("install", fmt.Sprintf("%s failed with status %d", target.Name, cmdErr.ExitCode))
			return out, cmdErr
		}

		out.Installed = append(out.Installed, target.Name)
	}

	uc.console.Done()
	return out, nil
}
