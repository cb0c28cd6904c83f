package exporters

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetExporter writes one sheet per table into an .xlsx workbook.
type SpreadsheetExporter struct {
	Path string
}

func NewSpreadsheetExporter(path string) *SpreadsheetExporter {
	return &SpreadsheetExporter{Path: path}
}

func (exporter *SpreadsheetExporter) Export(tables []Table) (ExportResult, error) {
	result := ExportResult{Path: exporter.Path}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close workbook %s: %v", exporter.Path, err)
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9D9D9"}},
	})
	if err != nil {
		return result, fmt.Errorf("failed to create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, table.Name); err != nil {
				return result, fmt.Errorf("failed to rename sheet to %s: %w", table.Name, err)
			}
		} else if _, err := f.NewSheet(table.Name); err != nil {
			return result, fmt.Errorf("failed to create sheet %s: %w", table.Name, err)
		}

		if err := writeSheet(f, table, headerStyle); err != nil {
			return result, err
		}
		result.TablesProcessed++
		result.RowsProcessed += len(table.Rows)
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(exporter.Path); err != nil {
		return result, fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return result, nil
}

func writeSheet(f *excelize.File, table Table, headerStyle int) error {
	if len(table.Columns) == 0 {
		return nil
	}

	header := make([]any, len(table.Columns))
	for i, column := range table.Columns {
		header[i] = column
	}
	if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", table.Name, err)
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(table.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(table.Name, "A1", lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", table.Name, err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(table.Name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, table.Name, err)
		}
	}
	return nil
}
