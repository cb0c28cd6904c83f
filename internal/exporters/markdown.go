package exporters

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// MarkdownExporter writes every table as a markdown table into one file.
type MarkdownExporter struct {
	Path   string
	Result ExportResult
}

func NewMarkdownExporter(path string) *MarkdownExporter {
	return &MarkdownExporter{
		Path:   path,
		Result: ExportResult{},
	}
}

func escapeMarkdownCell(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	return strings.ReplaceAll(value, "\n", " ")
}

// GenerateMarkdown renders tables with a frontmatter header.
func GenerateMarkdown(tables []Table) string {
	var builder strings.Builder

	currentDateTime := time.Now().Format("2006-01-02")
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: pets_export\n")
	fmt.Fprintf(&builder, "created_at: %s\n", currentDateTime)
	fmt.Fprintf(&builder, "---\n")

	for _, table := range tables {
		fmt.Fprintf(&builder, "\n## %s\n\n", table.Name)
		if len(table.Columns) == 0 {
			continue
		}
		if len(table.Rows) == 0 {
			fmt.Fprintf(&builder, "_No rows._\n")
			continue
		}

		header := make([]string, len(table.Columns))
		separator := make([]string, len(table.Columns))
		for i, column := range table.Columns {
			header[i] = escapeMarkdownCell(column)
			separator[i] = "---"
		}
		fmt.Fprintf(&builder, "| %s |\n", strings.Join(header, " | "))
		fmt.Fprintf(&builder, "| %s |\n", strings.Join(separator, " | "))

		for _, row := range table.Rows {
			cells := make([]string, len(table.Columns))
			for i := range table.Columns {
				if i < len(row) {
					cells[i] = escapeMarkdownCell(FormatCell(row[i]))
				}
			}
			fmt.Fprintf(&builder, "| %s |\n", strings.Join(cells, " | "))
		}
	}

	return builder.String()
}

func (exporter *MarkdownExporter) Export(tables []Table) (ExportResult, error) {
	// Reset result state for each export
	exporter.Result = ExportResult{Path: exporter.Path}

	if err := os.WriteFile(exporter.Path, []byte(GenerateMarkdown(tables)), 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write markdown: %w", err)
	}

	for _, table := range tables {
		exporter.Result.TablesProcessed++
		exporter.Result.RowsProcessed += len(table.Rows)
	}
	return exporter.Result, nil
}
