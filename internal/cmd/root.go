package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for csvcheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvcheck",
		Short: "Validate CSV exports before they reach downstream tools",
		Long: `csvcheck inspects directory trees of CSV files and reports structural
and semantic problems before the files are imported into scheduling tools.

It checks each row's item type against the accepted vocabulary
(task/milestone/release/meeting) and every recognized date column against
the accepted date formats, then prints a per-file and per-run report.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewConvertCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
