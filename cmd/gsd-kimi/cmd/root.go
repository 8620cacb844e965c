package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/optivent/gsd-kimi-cli/internal/logging"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var logCloser io.Closer

// setupLogging is replaced in tests.
var setupLogging = func(console io.Writer, verbosity int) io.Closer {
	return logging.Setup(console, verbosity, logging.DefaultLogPath())
}

var rootCmd = &cobra.Command{
	Use:   "gsd-kimi",
	Short: "Install the GSD skills, agents and launcher for Kimi CLI",
	Long: `gsd-kimi installs the GSD bundle (skills, agents, references, workflow
templates, the master agent config, patch scripts and the jim launcher)
into the best available skills location, and removes it again from every
location it may have been installed to.

Running without flags installs. --verify and --uninstall check or remove
an existing installation instead; --skills-only is ignored with either.
--verify and --uninstall cannot be combined.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logCloser = setupLogging(cmd.ErrOrStderr(), verbosity)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		verify, _ := cmd.Flags().GetBool("verify")
		uninstall, _ := cmd.Flags().GetBool("uninstall")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if dryRun && !uninstall {
			return errors.New("--dry-run only applies to --uninstall")
		}

		d, err := newDeps(cmd)
		if err != nil {
			return err
		}

		switch {
		case verify:
			return runVerify(d)
		case uninstall:
			return runUninstall(d, dryRun)
		default:
			skillsOnly, _ := cmd.Flags().GetBool("skills-only")
			return runInstall(d, skillsOnly)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gsd-kimi %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().String("bundle", "", "Bundle directory (default $GSD_KIMI_BUNDLE, then the current directory)")

	rootCmd.Flags().Bool("skills-only", false, "Install skills, agents and config but skip patches and the launcher")
	rootCmd.Flags().Bool("verify", false, "Verify the current installation and exit")
	rootCmd.Flags().Bool("uninstall", false, "Remove GSD from every known skills location")
	rootCmd.Flags().Bool("dry-run", false, "With --uninstall, list what would be removed without removing it")
	rootCmd.MarkFlagsMutuallyExclusive("verify", "uninstall")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. The log file is closed whether or not the
// command fails.
func Execute() error {
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	}()
	return rootCmd.Execute()
}
