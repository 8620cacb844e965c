package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/optivent/gsd-kimi-cli/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where GSD would install and what is currently installed",
	Long: `Show the skills location an install would use and list every GSD entry
an uninstall would remove, across all known locations. Nothing is modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd)
		if err != nil {
			return err
		}
		width := termWidth()

		fmt.Fprint(os.Stdout, ui.Location(d.orchestrator.InstallLocation(), width))
		fmt.Fprintln(os.Stdout)

		groups, files := d.orchestrator.Scan(d.manifest())
		fmt.Fprint(os.Stdout, ui.ScanPlan(groups, files, width))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
