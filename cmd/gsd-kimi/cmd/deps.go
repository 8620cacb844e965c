package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/optivent/gsd-kimi-cli/internal/core"
	"github.com/optivent/gsd-kimi-cli/internal/logging"
)

// bundleEnv names the environment variable that locates the bundle when
// --bundle is not given.
const bundleEnv = "GSD_KIMI_BUNDLE"

// deps holds shared dependencies for CLI commands.
type deps struct {
	fs           afero.Fs
	orchestrator *core.Orchestrator
	bundleDir    string
	log          zerolog.Logger
}

// newDeps creates shared dependencies from the environment and flags.
func newDeps(cmd *cobra.Command) (*deps, error) {
	fs := afero.NewOsFs()

	settings, err := core.NewConfigManager(fs).Load()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	shell := settings.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	paths, err := core.NewPaths(home, shell, settings.LauncherName)
	if err != nil {
		return nil, fmt.Errorf("resolving paths: %w", err)
	}
	if err := paths.UninstallCandidates(settings.ExtraUninstallLocations).Validate(); err != nil {
		return nil, fmt.Errorf("checking skills locations: %w", err)
	}

	bundleDir, err := resolveBundleDir(cmd)
	if err != nil {
		return nil, err
	}

	log := logging.Get("gsd-kimi")
	return &deps{
		fs:           fs,
		orchestrator: core.NewOrchestrator(fs, paths, settings, log),
		bundleDir:    bundleDir,
		log:          log,
	}, nil
}
