// Package validator checks a single CSV file against the item type
// vocabulary and the accepted date formats, producing row-scoped error
// messages and a row count. Validation never fails hard: every problem,
// including parser errors and unreadable files, degrades to a reported
// message so a batch driver can always continue to the next file.
package validator

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meredith/csvcheck/internal/rules"
)

// Outcome is the result of validating one file. Warnings is reserved for
// future use and currently always empty. RowCount reflects the data rows
// scanned before any abort; the header line is not counted.
type Outcome struct {
	Errors   []string
	Warnings []string
	RowCount int
}

// OK reports whether the file validated cleanly.
func (o Outcome) OK() bool {
	return len(o.Errors) == 0 && len(o.Warnings) == 0
}

// Options tunes validation for one file.
type Options struct {
	// ExtraTypes are additional accepted item type values from
	// configuration, on top of the built-in vocabulary.
	ExtraTypes []string
}

// ValidateFile validates the CSV file at path. It never returns an error:
// open failures, parser errors, and anything unexpected are rendered into
// the outcome's error list so the caller's file loop is never interrupted.
func ValidateFile(path string, opts Options) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("Unexpected error: %v", err))
		return outcome
	}
	defer f.Close()

	reader := csv.NewReader(f)

	headers, err := reader.Read()
	if err == io.EOF || (err == nil && len(headers) == 0) {
		outcome.Errors = append(outcome.Errors, "No headers found")
		return outcome
	}
	if err != nil {
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("CSV parsing error: %v", err))
		return outcome
	}

	// Data rows are 1-indexed starting at 2; the header occupies line 1.
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row aborts the remaining scan for this file.
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("CSV parsing error: %v", err))
			break
		}

		outcome.RowCount++
		row := newRow(headers, record)
		outcome.Errors = append(outcome.Errors, checkRow(row, line, opts)...)
	}

	return outcome
}

// checkRow runs the type check and the per-group date checks on one row.
// Checks are independent: a bad type does not suppress date errors and
// each date group is judged on its own.
func checkRow(row Row, line int, opts Options) []string {
	var errs []string

	if alias, ok := firstPresent(row, rules.TypeAliases); ok {
		value := strings.ToLower(strings.TrimSpace(row.Get(alias)))
		if value != "" && !rules.IsValidTypeWith(value, opts.ExtraTypes) {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid type '%s' (must be %s)", line, value, rules.TypeList()))
		}
	}

	for _, group := range rules.DateAliasGroups {
		alias, ok := firstPresent(row, group.Aliases)
		if !ok {
			continue
		}
		// First present alias wins for the whole group, even when its
		// value is empty; later aliases are never consulted.
		value := row.Get(alias)
		if strings.TrimSpace(value) == "" {
			continue
		}
		if valid, _ := rules.RecognizeDate(value); !valid {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid date format '%s' in column '%s'", line, value, alias))
		}
	}

	return errs
}

// firstPresent returns the first alias that exists as a header in the row.
func firstPresent(row Row, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if row.Has(alias) {
			return alias, true
		}
	}
	return "", false
}
