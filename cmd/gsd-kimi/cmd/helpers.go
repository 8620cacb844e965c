package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/optivent/gsd-kimi-cli/internal/core"
	"github.com/optivent/gsd-kimi-cli/internal/ui"
)

// resolveBundleDir resolves the --bundle flag, then $GSD_KIMI_BUNDLE, and
// falls back to cwd.
func resolveBundleDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("bundle")
	if dir == "" {
		dir = os.Getenv(bundleEnv)
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving bundle directory: %w", err)
	}
	return abs, nil
}

// loadBundle opens the bundle for installing.
func (d *deps) loadBundle() (*core.Bundle, error) {
	b, err := core.LoadBundle(d.fs, d.bundleDir)
	if err != nil {
		return nil, fmt.Errorf("loading bundle: %w", err)
	}
	return b, nil
}

// manifest returns the bundle manifest when a bundle is available and the
// defaults otherwise. Verify and uninstall work without a bundle.
func (d *deps) manifest() core.Manifest {
	b, err := core.LoadBundle(d.fs, d.bundleDir)
	if err != nil {
		d.log.Debug().Err(err).Str("bundle", d.bundleDir).Msg("using default manifest")
		return core.DefaultManifest()
	}
	return b.Manifest
}

// termWidth returns the width of stdout, or ui.DefaultWidth when it is not
// a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return ui.DefaultWidth
}
