package exporters

import "fmt"

// Table is a full-table snapshot: a name, its column headers and the rows in
// column order.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

type TableExporter interface {
	Export(tables []Table) (ExportResult, error)
}

type ExportResult struct {
	Path            string `json:"path"`
	TablesProcessed int    `json:"tables_processed"`
	RowsProcessed   int    `json:"rows_processed"`
	Pages           int    `json:"pages,omitempty"`
}

// FormatCell renders a cell value as text.
func FormatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	default:
		return fmt.Sprint(value)
	}
}

var (
	_ TableExporter = (*SpreadsheetExporter)(nil)
	_ TableExporter = (*DocumentExporter)(nil)
	_ TableExporter = (*MarkdownExporter)(nil)
)
