package rules

import "testing"

// TestIsValidType verifies the accepted vocabulary and case-insensitivity
func TestIsValidType(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"task", true},
		{"milestone", true},
		{"release", true},
		{"meeting", true},
		{"Task", true},
		{"MILESTONE", true},
		{"  release  ", true},
		{"sprint", false},
		{"epic", false},
		{"", false},
		{"task ", true},
	}

	for _, tt := range tests {
		if got := IsValidType(tt.value); got != tt.want {
			t.Errorf("IsValidType(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

// TestIsValidTypeWith verifies configured extras extend but never replace
// the built-in vocabulary
func TestIsValidTypeWith(t *testing.T) {
	extra := []string{"Sprint", "epic"}

	if !IsValidTypeWith("task", extra) {
		t.Error("built-in type rejected when extras are configured")
	}
	if !IsValidTypeWith("sprint", extra) {
		t.Error("configured extra 'sprint' rejected")
	}
	if !IsValidTypeWith("EPIC", extra) {
		t.Error("extras should match case-insensitively")
	}
	if IsValidTypeWith("story", extra) {
		t.Error("unconfigured value accepted")
	}
	if IsValidTypeWith("sprint", nil) {
		t.Error("extra accepted with no extras configured")
	}
}

// TestAliasGroupOrder guards the priority order of alias spellings;
// validation depends on first-present-header-wins
func TestAliasGroupOrder(t *testing.T) {
	if TypeAliases[0] != "type" || TypeAliases[1] != "Type" {
		t.Errorf("TypeAliases order changed: %v", TypeAliases)
	}

	wantFirst := map[string]string{
		"start": "start_date",
		"end":   "end_date",
		"date":  "Date",
	}
	for _, group := range DateAliasGroups {
		if group.Aliases[0] != wantFirst[group.Field] {
			t.Errorf("group %q first alias = %q, want %q", group.Field, group.Aliases[0], wantFirst[group.Field])
		}
	}
}
