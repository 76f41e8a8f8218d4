package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meredith/csvcheck/internal/config"
	"github.com/meredith/csvcheck/internal/history"
)

// NewHistoryCommand creates and returns the history subcommand
func NewHistoryCommand() *cobra.Command {
	var configPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent validation runs",
		Long: `Show the most recent validation runs recorded in the history
database, newest first, with their file, row, and error totals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			store, err := history.NewStore(cfg.History.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			fmt.Fprintf(out, "%-20s %-30s %6s %6s %7s\n", "STARTED", "ROOT", "FILES", "ROWS", "ERRORS")
			for _, run := range runs {
				errText := fmt.Sprintf("%d", run.Errors)
				if run.Errors > 0 {
					errText = color.New(color.FgRed).Sprint(errText)
				}
				fmt.Fprintf(out, "%-20s %-30s %6d %6d %7s\n",
					run.StartedAt.Format("2006-01-02 15:04:05"),
					truncate(run.Root, 30),
					run.Files, run.Rows, errText)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultConfigFile, "path to the config file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show (0 = all)")

	return cmd
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
