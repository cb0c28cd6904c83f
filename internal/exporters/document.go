package exporters

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	documentMargin = 15.0
	titleHeight    = 10.0
	headerHeight   = 9.0
	rowHeight      = 7.0
)

// RGB is a fill or text color.
type RGB struct {
	R, G, B int
}

// DocumentStyle holds the table colors of a document export.
type DocumentStyle struct {
	HeaderFill RGB
	HeaderText RGB
	BodyFill   RGB
}

// DefaultDocumentStyle is a grey header with whitesmoke text over a
// whitesmoke body.
var DefaultDocumentStyle = DocumentStyle{
	HeaderFill: RGB{128, 128, 128},
	HeaderText: RGB{245, 245, 245},
	BodyFill:   RGB{245, 245, 245},
}

// DocumentExporter writes every table into a paginated Letter-sized PDF. The
// header row is repeated on each page a table spans.
type DocumentExporter struct {
	Path  string
	Style DocumentStyle
}

func NewDocumentExporter(path string, style DocumentStyle) *DocumentExporter {
	return &DocumentExporter{Path: path, Style: style}
}

func (exporter *DocumentExporter) Export(tables []Table) (ExportResult, error) {
	result := ExportResult{Path: exporter.Path}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(documentMargin, documentMargin, documentMargin)
	pdf.SetAutoPageBreak(true, documentMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, table := range tables {
		exporter.writeTable(pdf, tr, table)
		result.TablesProcessed++
		result.RowsProcessed += len(table.Rows)
	}

	result.Pages = pdf.PageCount()

	if err := pdf.OutputFileAndClose(exporter.Path); err != nil {
		return result, fmt.Errorf("failed to write document: %w", err)
	}
	return result, nil
}

func (exporter *DocumentExporter) writeTable(pdf *fpdf.Fpdf, tr func(string) string, table Table) {
	pageWidth, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - documentMargin

	if pdf.GetY()+titleHeight+headerHeight+rowHeight > bottom {
		pdf.AddPage()
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, titleHeight, tr(table.Name), "", 1, "L", false, 0, "")

	if len(table.Columns) == 0 {
		return
	}
	cellWidth := (pageWidth - 2*documentMargin) / float64(len(table.Columns))

	writeHeader := func() {
		style := exporter.Style
		pdf.SetFillColor(style.HeaderFill.R, style.HeaderFill.G, style.HeaderFill.B)
		pdf.SetTextColor(style.HeaderText.R, style.HeaderText.G, style.HeaderText.B)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 12)
		for _, column := range table.Columns {
			pdf.CellFormat(cellWidth, headerHeight, tr(column), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFillColor(style.BodyFill.R, style.BodyFill.G, style.BodyFill.B)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
	}
	writeHeader()

	for _, row := range table.Rows {
		if pdf.GetY()+rowHeight > bottom {
			pdf.AddPage()
			writeHeader()
		}
		for i := range table.Columns {
			var value any
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(cellWidth, rowHeight, tr(FormatCell(value)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
