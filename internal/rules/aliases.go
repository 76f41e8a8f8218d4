package rules

// AliasGroup is the ordered list of accepted header spellings for one
// logical field. Only the first alias present in a row's header set is
// consulted; later aliases are never used as fallbacks, even when the
// first present one holds an empty value.
type AliasGroup struct {
	// Field is the logical field name, for log messages.
	Field string
	// Aliases are the accepted header spellings, in priority order.
	// Matching is case-sensitive: each accepted spelling is listed.
	Aliases []string
}

// TypeAliases are the accepted header spellings for the item type column.
var TypeAliases = []string{"type", "Type"}

// DateAliasGroups are the logical date fields and their accepted header
// spellings, covering the export styles of common scheduling tools.
var DateAliasGroups = []AliasGroup{
	{Field: "start", Aliases: []string{"start_date", "Start Date", "Start", "start"}},
	{Field: "end", Aliases: []string{"end_date", "End Date", "Finish", "end", "Due Date"}},
	{Field: "date", Aliases: []string{"Date", "date"}},
}
