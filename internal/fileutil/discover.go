// Package fileutil provides CSV discovery for the check command: walking a
// directory tree, collecting .csv files in deterministic order, and noting
// spreadsheet exports that cannot be validated directly.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures CSV discovery.
type ScanOptions struct {
	// Recursive enables descent into subdirectories.
	Recursive bool
	// ExcludeDirs lists directory names to skip (hidden directories are
	// always skipped).
	ExcludeDirs []string
}

// ScanResult holds the outcome of a discovery walk.
type ScanResult struct {
	// Files are the absolute paths of matched .csv files, sorted.
	Files []string
	// Spreadsheets are .xls/.xlsx files seen during the walk. They are
	// not validated; the caller may warn about them.
	Spreadsheets []string
	// Errors are non-fatal problems encountered while walking; discovery
	// continues past them.
	Errors []error
}

// DiscoverCSV walks root and collects CSV files per opts. A file root is
// accepted as-is regardless of extension, matching how users pass explicit
// paths on the command line.
func DiscoverCSV(root string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	result := &ScanResult{}

	if !info.IsDir() {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
		}
		result.Files = append(result.Files, abs)
		return result, nil
	}

	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		excludeMap[d] = true
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // keep walking
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			if excludeMap[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".csv":
			result.Files = append(result.Files, abs)
		case ".xls", ".xlsx":
			result.Spreadsheets = append(result.Spreadsheets, abs)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(result.Files)
	sort.Strings(result.Spreadsheets)

	return result, nil
}

// DiscoverAll runs DiscoverCSV over several roots and merges the results,
// deduplicating files that appear under more than one root.
func DiscoverAll(roots []string, opts ScanOptions) (*ScanResult, error) {
	merged := &ScanResult{}
	seen := make(map[string]bool)
	seenSheets := make(map[string]bool)

	for _, root := range roots {
		res, err := DiscoverCSV(root, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", root, err)
		}
		for _, f := range res.Files {
			if !seen[f] {
				merged.Files = append(merged.Files, f)
				seen[f] = true
			}
		}
		for _, s := range res.Spreadsheets {
			if !seenSheets[s] {
				merged.Spreadsheets = append(merged.Spreadsheets, s)
				seenSheets[s] = true
			}
		}
		merged.Errors = append(merged.Errors, res.Errors...)
	}

	sort.Strings(merged.Files)
	sort.Strings(merged.Spreadsheets)

	return merged, nil
}
