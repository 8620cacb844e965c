package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/optivent/gsd-kimi-cli/internal/logging"
	"github.com/optivent/gsd-kimi-cli/internal/ui"
)

func runUninstall(d *deps, dryRun bool) error {
	m := d.manifest()

	fmt.Fprintln(os.Stdout, "🗑️  Uninstalling GSD...")
	fmt.Fprintln(os.Stdout)

	groups, files := d.orchestrator.Scan(m)
	fmt.Fprint(os.Stdout, ui.ScanPlan(groups, files, termWidth()))

	if dryRun {
		fmt.Fprintln(os.Stdout, "\nDry run: nothing was removed.")
		return nil
	}

	done := logging.Operation(d.log, "uninstall")
	report := d.orchestrator.Uninstall(m)
	done()

	fmt.Fprintln(os.Stdout)
	fmt.Fprint(os.Stdout, ui.UninstallSummary(report))

	if len(report.Result.Errors) > 0 {
		return fmt.Errorf("uninstall incomplete: %w", errors.Join(report.Result.Errors...))
	}
	return nil
}
