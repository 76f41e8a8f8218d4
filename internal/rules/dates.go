// Package rules holds the validation vocabulary: the accepted date formats,
// the accepted item types, and the header alias groups for logical date
// fields. Everything in this package is a process-wide constant; the
// functions are pure and safe to call from any number of validations.
package rules

import (
	"strings"
	"time"
)

// dateLayouts is the fixed, ordered list of accepted date formats.
// The first layout that fully parses the input wins. Real-world exports
// mix padded and unpadded month/day, so both slash variants are listed.
var dateLayouts = []string{
	"2006-01-02", // ISO: 2025-06-01
	"01/02/2006", // US slash, zero-padded: 06/01/2025
	"1-2-2006",   // US dash, padded or not: 6-1-2025, 12-31-2025
	"1/2/2006",   // US slash, no padding: 6/1/2025
}

// RecognizeDate reports whether raw denotes a valid calendar date under the
// accepted format list. A trimmed-empty input is valid with no parsed date:
// date columns are optional fields, and absence is not a format error.
// No time-of-day or timezone component is accepted.
func RecognizeDate(raw string) (bool, *time.Time) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true, nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return true, &parsed
		}
	}

	return false, nil
}
