package rules

import "strings"

// validTypes is the accepted item type vocabulary. Membership is
// case-insensitive; callers lowercase before lookup via IsValidType.
var validTypes = map[string]bool{
	"task":      true,
	"milestone": true,
	"release":   true,
	"meeting":   true,
}

// IsValidType reports whether value is in the accepted type vocabulary.
// Comparison is case-insensitive and ignores surrounding whitespace.
func IsValidType(value string) bool {
	return validTypes[strings.ToLower(strings.TrimSpace(value))]
}

// IsValidTypeWith is IsValidType extended with additional accepted values
// from configuration. The built-in vocabulary always applies; extra values
// are compared case-insensitively as well.
func IsValidTypeWith(value string, extra []string) bool {
	if IsValidType(value) {
		return true
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, e := range extra {
		if normalized == strings.ToLower(strings.TrimSpace(e)) {
			return true
		}
	}
	return false
}

// TypeList returns the built-in vocabulary in message order, for use in
// error text ("must be task/milestone/release/meeting").
func TypeList() string {
	return "task/milestone/release/meeting"
}
