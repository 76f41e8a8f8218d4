package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders the report as a Markdown document suitable for writing
// to a file with --output.
func Markdown(results []FileResult, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# CSV Validation Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(time.RFC3339))

	s := Summarize(results)
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "| Files | Rows | Errors | Warnings |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n\n", s.Files, s.Rows, s.Errors, s.Warnings)

	b.WriteString("## Files\n\n")
	for _, r := range results {
		if r.Outcome.OK() {
			fmt.Fprintf(&b, "- ✅ `%s` (%d rows)\n", r.Path, r.Outcome.RowCount)
			continue
		}
		fmt.Fprintf(&b, "- ❌ `%s` (%d rows)\n", r.Path, r.Outcome.RowCount)
		for _, e := range r.Outcome.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
		for _, warning := range r.Outcome.Warnings {
			fmt.Fprintf(&b, "  - (warning) %s\n", warning)
		}
	}

	if s.Errors == 0 {
		b.WriteString("\nAll CSV files are valid.\n")
	} else {
		fmt.Fprintf(&b, "\nValidation failed with %d error(s).\n", s.Errors)
	}

	return b.String()
}

// HTML renders the Markdown report to HTML.
func HTML(results []FileResult, generatedAt time.Time) (string, error) {
	md := Markdown(results, generatedAt)

	// The summary uses a GFM table, which base goldmark does not parse.
	engine := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := engine.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.String(), nil
}
