// Package report aggregates per-file validation outcomes and renders them
// for the terminal, as Markdown, or as HTML.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/meredith/csvcheck/internal/validator"
)

// FileResult pairs a validated file with its outcome. Path is the path as
// reported to the user (usually relative to the scanned root).
type FileResult struct {
	Path    string
	Outcome validator.Outcome
}

// Summary holds run-wide totals.
type Summary struct {
	Files    int
	Rows     int
	Errors   int
	Warnings int
}

// Summarize computes totals over a set of file results.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		s.Files++
		s.Rows += r.Outcome.RowCount
		s.Errors += len(r.Outcome.Errors)
		s.Warnings += len(r.Outcome.Warnings)
	}
	return s
}

// ColorEnabled reports whether colored output should be used for w,
// honoring an explicit disable flag and NO_COLOR.
func ColorEnabled(w io.Writer, noColorFlag bool) bool {
	if noColorFlag || color.NoColor {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Render writes the human-readable report: a one-line indicator per clean
// file, a block per problem file, and a final summary.
func Render(w io.Writer, results []FileResult, colored bool) {
	green := sprintFunc(color.FgGreen, colored)
	red := sprintFunc(color.FgRed, colored)
	yellow := sprintFunc(color.FgYellow, colored)

	for _, r := range results {
		if r.Outcome.OK() {
			fmt.Fprintf(w, "%s %-50s (%3d rows)\n", green("✓"), r.Path, r.Outcome.RowCount)
			continue
		}

		fmt.Fprintf(w, "\n%s %s\n", red("✗"), r.Path)
		fmt.Fprintf(w, "   Rows: %d\n", r.Outcome.RowCount)

		if len(r.Outcome.Errors) > 0 {
			fmt.Fprintf(w, "   %s\n", red(fmt.Sprintf("Errors (%d):", len(r.Outcome.Errors))))
			for _, e := range r.Outcome.Errors {
				fmt.Fprintf(w, "      - %s\n", e)
			}
		}

		if len(r.Outcome.Warnings) > 0 {
			fmt.Fprintf(w, "   %s\n", yellow(fmt.Sprintf("Warnings (%d):", len(r.Outcome.Warnings))))
			for _, warning := range r.Outcome.Warnings {
				fmt.Fprintf(w, "      - %s\n", warning)
			}
		}
	}

	s := Summarize(results)
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "   Files validated:  %d\n", s.Files)
	fmt.Fprintf(w, "   Total data rows:  %d\n", s.Rows)
	fmt.Fprintf(w, "   Total errors:     %d\n", s.Errors)
	fmt.Fprintf(w, "   Total warnings:   %d\n", s.Warnings)

	if s.Errors == 0 {
		fmt.Fprintf(w, "\n%s All CSV files are valid!\n", green("✓"))
	} else {
		fmt.Fprintf(w, "\n%s Validation failed with %d error(s)\n", red("✗"), s.Errors)
	}
}

// sprintFunc returns a coloring function, or identity when color is off.
func sprintFunc(attr color.Attribute, colored bool) func(a ...interface{}) string {
	if !colored {
		return fmt.Sprint
	}
	return color.New(attr).SprintFunc()
}
