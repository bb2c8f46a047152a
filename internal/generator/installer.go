package generator

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
)

const installAttempts = 2

// CommandRunner runs name with args inside dir and returns combined output.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// LookPathFunc resolves a binary on PATH.
type LookPathFunc func(file string) (string, error)

var installCommands = map[string][]string{
	"javascript": {"npm", "install"},
	"typescript": {"npm", "install"},
	"go":         {"go", "mod", "tidy"},
}

// Installer fetches the dependencies of a freshly generated project.
type Installer struct {
	log      *zerolog.Logger
	run      CommandRunner
	lookPath LookPathFunc
}

func NewInstaller(log *zerolog.Logger) *Installer {
	return NewInstallerWithRunner(log, execCommand, exec.LookPath)
}

func NewInstallerWithRunner(log *zerolog.Logger, run CommandRunner, lookPath LookPathFunc) *Installer {
	return &Installer{
		log:      log,
		run:      run,
		lookPath: lookPath,
	}
}

// Install runs the language's dependency command in dir. Languages without an
// install step, and toolchains missing from PATH, are skipped with a warning.
func (i *Installer) Install(ctx context.Context, language, dir string) error {
	command, ok := installCommands[strings.ToLower(language)]
	if !ok {
		i.log.Debug().Msgf("No dependency installation step for %s", language)
		return nil
	}

	if _, err := i.lookPath(command[0]); err != nil {
		i.log.Warn().Msgf("%s not found on PATH, skipping dependency installation", command[0])
		return nil
	}

	i.log.Debug().Msgf("Installing dependencies: %s", strings.Join(command, " "))
	err := retry.Do(
		func() error {
			output, runErr := i.run(ctx, dir, command[0], command[1:]...)
			if runErr != nil {
				return fmt.Errorf("%s failed: %w: %s", strings.Join(command, " "), runErr, strings.TrimSpace(string(output)))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(installAttempts),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			i.log.Debug().Err(err).Msgf("Dependency installation attempt %d failed, retrying", n+1)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}
	return nil
}

func execCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
