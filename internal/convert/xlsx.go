// Package convert transcribes a CSV file into an XLSX workbook with
// cosmetic header formatting. It performs no validation; pair it with the
// check command when the data must also be clean.
package convert

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Tasks"

// maxColumnWidth caps auto-sized column widths so one long cell does not
// stretch the sheet.
const maxColumnWidth = 50

// ToXLSX reads the CSV at csvPath and writes a styled workbook to xlsxPath.
func ToXLSX(csvPath, xlsxPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Conversion is a straight transcription; ragged rows are copied as-is.
	reader.FieldsPerRecord = -1

	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// Track the longest cell per column for width sizing.
	colWidths := make(map[int]int)

	for rowIdx := 1; ; rowIdx++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV row %d: %w", rowIdx, err)
		}

		for colIdx, value := range record {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := wb.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
			if rowIdx == 1 {
				if err := wb.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
					return fmt.Errorf("failed to style header cell %s: %w", cell, err)
				}
			}
			if len(value) > colWidths[colIdx] {
				colWidths[colIdx] = len(value)
			}
		}
	}

	for colIdx, width := range colWidths {
		colName, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return fmt.Errorf("failed to compute column name: %w", err)
		}
		adjusted := width + 2
		if adjusted > maxColumnWidth {
			adjusted = maxColumnWidth
		}
		if err := wb.SetColWidth(sheetName, colName, colName, float64(adjusted)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := wb.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
