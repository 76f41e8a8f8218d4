// Package display provides terminal UI helpers for the check command:
// per-file progress lines and formatted warning blocks. All functions
// write to an io.Writer so output can be captured in tests.
package display

import (
	"fmt"
	"io"
	"path/filepath"
)

// ProgressIndicator manages multi-file progress display with ANSI colors.
type ProgressIndicator struct {
	writer     io.Writer
	totalFiles int
	current    int
}

// NewProgressIndicator creates a new progress indicator for total files.
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalFiles: total,
	}
}

// Start displays the header message.
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Validating CSV files:\n")
}

// Step displays progress for the current file: [N/Total] filename (cyan).
func (p *ProgressIndicator) Step(filename string) {
	p.current++
	basename := filepath.Base(filename)
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalFiles, basename)
}

// Complete displays the completion message with a green checkmark.
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Scanned %d CSV files\n", p.totalFiles)
}
