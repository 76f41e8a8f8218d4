package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meredith/csvcheck/internal/convert"
)

// NewConvertCommand creates and returns the convert subcommand
func NewConvertCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "convert <csv-file>",
		Short: "Convert a CSV export to a styled XLSX workbook",
		Long: `Transcribe a CSV file into an XLSX workbook with a formatted header
row and auto-sized columns. The data is copied as-is; run 'csvcheck check'
first if it must also be valid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath := args[0]

			target := outputPath
			if target == "" {
				target = strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".xlsx"
			}

			if err := convert.ToXLSX(csvPath, target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path of the XLSX file to create (default: input with .xlsx extension)")

	return cmd
}
