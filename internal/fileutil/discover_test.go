package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeTree(t *testing.T, files []string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
	return tmpDir
}

func names(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestDiscoverCSVRecursive(t *testing.T) {
	tmpDir := makeTree(t, []string{
		"tasks.csv",
		"Exports.CSV",
		"notes.txt",
		"legacy.xlsx",
		"sub/milestones.csv",
		"sub/deep/releases.csv",
		".hidden/secret.csv",
		"node_modules/pkg.csv",
	})

	result, err := DiscoverCSV(tmpDir, ScanOptions{
		Recursive:   true,
		ExcludeDirs: []string{"node_modules"},
	})
	if err != nil {
		t.Fatalf("DiscoverCSV() error = %v", err)
	}

	got := names(result.Files)
	want := map[string]bool{"tasks.csv": true, "Exports.CSV": true, "milestones.csv": true, "releases.csv": true}
	if len(got) != len(want) {
		t.Fatalf("Files = %v, want %d files", got, len(want))
	}
	for _, n := range got {
		if !want[n] {
			t.Errorf("unexpected file discovered: %s", n)
		}
	}

	if len(result.Spreadsheets) != 1 || filepath.Base(result.Spreadsheets[0]) != "legacy.xlsx" {
		t.Errorf("Spreadsheets = %v, want [legacy.xlsx]", names(result.Spreadsheets))
	}
}

func TestDiscoverCSVNonRecursive(t *testing.T) {
	tmpDir := makeTree(t, []string{
		"top.csv",
		"sub/nested.csv",
	})

	result, err := DiscoverCSV(tmpDir, ScanOptions{Recursive: false})
	if err != nil {
		t.Fatalf("DiscoverCSV() error = %v", err)
	}

	if len(result.Files) != 1 || filepath.Base(result.Files[0]) != "top.csv" {
		t.Errorf("Files = %v, want only top.csv", names(result.Files))
	}
}

func TestDiscoverCSVSingleFile(t *testing.T) {
	tmpDir := makeTree(t, []string{"report.csv"})
	path := filepath.Join(tmpDir, "report.csv")

	result, err := DiscoverCSV(path, ScanOptions{})
	if err != nil {
		t.Fatalf("DiscoverCSV() error = %v", err)
	}
	if len(result.Files) != 1 || result.Files[0] != path {
		// DiscoverCSV returns absolute paths; path from TempDir is absolute
		t.Errorf("Files = %v, want [%s]", result.Files, path)
	}
}

func TestDiscoverCSVMissingPath(t *testing.T) {
	_, err := DiscoverCSV(filepath.Join(t.TempDir(), "absent"), ScanOptions{})
	if err == nil {
		t.Fatal("DiscoverCSV() error = nil, want access error")
	}
	if !strings.Contains(err.Error(), "failed to access path") {
		t.Errorf("error = %v, want access failure", err)
	}
}

func TestDiscoverCSVSortedOutput(t *testing.T) {
	tmpDir := makeTree(t, []string{"zeta.csv", "alpha.csv", "mid.csv"})

	result, err := DiscoverCSV(tmpDir, ScanOptions{})
	if err != nil {
		t.Fatalf("DiscoverCSV() error = %v", err)
	}

	got := names(result.Files)
	want := []string{"alpha.csv", "mid.csv", "zeta.csv"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Files = %v, want sorted %v", got, want)
		}
	}
}

func TestDiscoverAllDeduplicates(t *testing.T) {
	tmpDir := makeTree(t, []string{"one.csv"})
	path := filepath.Join(tmpDir, "one.csv")

	result, err := DiscoverAll([]string{tmpDir, path}, ScanOptions{})
	if err != nil {
		t.Fatalf("DiscoverAll() error = %v", err)
	}
	if len(result.Files) != 1 {
		t.Errorf("Files = %v, want one deduplicated entry", result.Files)
	}
}
