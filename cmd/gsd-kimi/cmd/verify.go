package cmd

import (
	"fmt"
	"os"

	"github.com/optivent/gsd-kimi-cli/internal/ui"
)

func runVerify(d *deps) error {
	loc, report := d.orchestrator.Verify(d.manifest())

	fmt.Fprint(os.Stdout, ui.Location(loc, termWidth()))
	fmt.Fprint(os.Stdout, ui.VerifyReport(report))

	if !report.OK {
		return errVerificationFailed
	}
	return nil
}
