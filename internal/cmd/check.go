package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/meredith/csvcheck/internal/config"
	"github.com/meredith/csvcheck/internal/display"
	"github.com/meredith/csvcheck/internal/filelock"
	"github.com/meredith/csvcheck/internal/fileutil"
	"github.com/meredith/csvcheck/internal/history"
	"github.com/meredith/csvcheck/internal/logger"
	"github.com/meredith/csvcheck/internal/report"
	"github.com/meredith/csvcheck/internal/validator"
)

// checkOptions holds the flag values of the check command.
type checkOptions struct {
	configPath   string
	recursive    bool
	recursiveSet bool
	noColor      bool
	logLevel     string
	noHistory    bool
	outputPath   string
	outputFormat string
}

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <file-or-directory>...",
		Short: "Validate one or more CSV files or directories",
		Long: `Discover CSV files and validate each one, checking for:
  - Item type values outside task/milestone/release/meeting
  - Date values matching none of the accepted formats
  - Missing header rows and malformed CSV

Files are processed sequentially; one bad file never aborts the batch.

Exit code: 0 if no errors were found, 1 otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.recursiveSet = cmd.Flags().Changed("recursive")
			return runCheck(args, opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultConfigFile, "path to the config file")
	cmd.Flags().BoolVar(&opts.recursive, "recursive", true, "descend into subdirectories")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "do not record this run in the history database")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "write the report to a file")
	cmd.Flags().StringVar(&opts.outputFormat, "format", "markdown", "report file format (markdown or html)")

	return cmd
}

// runCheck is the check command body, separated for testing with a custom
// output writer.
func runCheck(paths []string, opts *checkOptions, output io.Writer) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logLevel := cfg.LogLevel
	if opts.logLevel != "" {
		logLevel = opts.logLevel
	}
	log := logger.NewConsoleLogger(output, logLevel)

	recursive := cfg.Recursive
	if opts.recursiveSet {
		recursive = opts.recursive
	}

	scan, err := fileutil.DiscoverAll(paths, fileutil.ScanOptions{
		Recursive:   recursive,
		ExcludeDirs: cfg.ExcludeDirs,
	})
	if err != nil {
		return err
	}
	for _, scanErr := range scan.Errors {
		log.LogWarn(scanErr.Error())
	}

	if len(scan.Spreadsheets) > 0 {
		display.WarnSpreadsheets(displayPaths(scan.Spreadsheets)).Display(output)
	}

	if len(scan.Files) == 0 {
		return fmt.Errorf("no CSV files found under %v", paths)
	}

	progress := display.NewProgressIndicator(output, len(scan.Files))
	progress.Start()

	results := make([]report.FileResult, 0, len(scan.Files))
	for _, file := range scan.Files {
		progress.Step(file)
		log.LogDebug(fmt.Sprintf("validating %s", file))

		outcome := validator.ValidateFile(file, validator.Options{ExtraTypes: cfg.ExtraTypes})
		results = append(results, report.FileResult{
			Path:    displayPath(file),
			Outcome: outcome,
		})
	}
	progress.Complete()

	colored := report.ColorEnabled(output, opts.noColor)
	report.Render(output, results, colored)

	if opts.outputPath != "" {
		if err := writeReportFile(opts.outputPath, opts.outputFormat, results); err != nil {
			return err
		}
		fmt.Fprintf(output, "Report written to %s\n", opts.outputPath)
	}

	if cfg.History.Enabled && !opts.noHistory {
		if err := recordRun(cfg, paths, results); err != nil {
			// History is a convenience; a recording failure must not mask
			// the validation result.
			log.LogWarn(fmt.Sprintf("failed to record run history: %v", err))
		}
	}

	if summary := report.Summarize(results); summary.Errors > 0 {
		return fmt.Errorf("validation failed with %d error(s)", summary.Errors)
	}
	return nil
}

// writeReportFile renders the report in the requested format and writes it
// atomically.
func writeReportFile(path, format string, results []report.FileResult) error {
	var content string
	switch format {
	case "markdown", "md":
		content = report.Markdown(results, time.Now().UTC())
	case "html":
		var err error
		content, err = report.HTML(results, time.Now().UTC())
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown report format %q (must be markdown or html)", format)
	}

	return filelock.AtomicWrite(path, []byte(content))
}

// recordRun stores the run in the history database and prunes old runs.
func recordRun(cfg *config.Config, paths []string, results []report.FileResult) error {
	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	root := paths[0]
	if len(paths) > 1 {
		root = fmt.Sprintf("%s (+%d more)", paths[0], len(paths)-1)
	}

	if _, err := store.RecordRun(ctx, root, results); err != nil {
		return err
	}
	return store.Prune(ctx, cfg.History.KeepRuns)
}

// displayPath shortens an absolute path to be relative to the working
// directory when possible.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || rel == "" {
		return path
	}
	return rel
}

func displayPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = displayPath(p)
	}
	return out
}
