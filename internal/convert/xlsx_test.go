package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestToXLSX(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "export.csv")
	xlsxPath := filepath.Join(tmpDir, "export.xlsx")

	content := "type,name,start_date\ntask,Build backend,2025-06-01\nmilestone,Beta,2025-07-15\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := ToXLSX(csvPath, xlsxPath); err != nil {
		t.Fatalf("ToXLSX() error = %v", err)
	}

	wb, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer wb.Close()

	if wb.GetSheetName(0) != "Tasks" {
		t.Errorf("sheet name = %q, want %q", wb.GetSheetName(0), "Tasks")
	}

	rows, err := wb.GetRows("Tasks")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "type" || rows[0][2] != "start_date" {
		t.Errorf("header row = %v, want CSV header", rows[0])
	}
	if rows[1][1] != "Build backend" {
		t.Errorf("cell B2 = %q, want %q", rows[1][1], "Build backend")
	}
	if rows[2][0] != "milestone" {
		t.Errorf("cell A3 = %q, want %q", rows[2][0], "milestone")
	}
}

func TestToXLSXMissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	err := ToXLSX(filepath.Join(tmpDir, "absent.csv"), filepath.Join(tmpDir, "out.xlsx"))
	if err == nil {
		t.Fatal("ToXLSX() error = nil, want open failure")
	}
}

func TestToXLSXRaggedRows(t *testing.T) {
	tmpDir := t.TempDir()
	csvPath := filepath.Join(tmpDir, "ragged.csv")
	xlsxPath := filepath.Join(tmpDir, "ragged.xlsx")

	// Conversion transcribes as-is; ragged rows are not an error here.
	content := "a,b,c\n1,2\n1,2,3,4\n"
	if err := os.WriteFile(csvPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := ToXLSX(csvPath, xlsxPath); err != nil {
		t.Fatalf("ToXLSX() error = %v", err)
	}

	wb, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Tasks")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("rows = %d, want 3", len(rows))
	}
}
