package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/optivent/gsd-kimi-cli/internal/core"
	"github.com/optivent/gsd-kimi-cli/internal/logging"
	"github.com/optivent/gsd-kimi-cli/internal/ui"
)

var errVerificationFailed = errors.New("installation verification failed")

func runInstall(d *deps, skillsOnly bool) error {
	b, err := d.loadBundle()
	if err != nil {
		return err
	}
	width := termWidth()
	paths := d.orchestrator.Paths()

	fmt.Fprintln(os.Stdout, ui.Banner(b.Manifest.Version))

	done := logging.Operation(d.log, "install")
	report, err := d.orchestrator.Install(b, core.InstallOptions{SkillsOnly: skillsOnly})
	done()
	if err != nil {
		return fmt.Errorf("installation failed: %w", err)
	}

	fmt.Fprint(os.Stdout, ui.Location(report.Location, width))
	fmt.Fprintln(os.Stdout)
	fmt.Fprint(os.Stdout, ui.InstallSummary(report))
	fmt.Fprintln(os.Stdout)
	fmt.Fprint(os.Stdout, ui.VerifyReport(report.Verify))
	fmt.Fprintln(os.Stdout)

	quickStart, err := ui.RenderMarkdown(os.Stdout, ui.QuickStartMarkdown(filepath.Base(paths.LauncherPath)), width)
	if err != nil {
		d.log.Warn().Err(err).Msg("Failed to render quick start")
	} else {
		fmt.Fprint(os.Stdout, quickStart)
	}

	if report.Profile.Changed {
		fmt.Fprintf(os.Stdout, "\n📝 Run: source %s\n", report.Profile.Path)
	}

	if !report.Verify.OK {
		return errVerificationFailed
	}
	return nil
}
