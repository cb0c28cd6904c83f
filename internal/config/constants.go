package config

const (
	// DefaultDatabasePath is the default path for the store file
	DefaultDatabasePath = "data.db"

	// DefaultSpreadsheetPath is where export-spreadsheet writes by default
	DefaultSpreadsheetPath = "data.xlsx"

	// DefaultDocumentPath is where export-document writes by default
	DefaultDocumentPath = "tables.pdf"

	// DefaultMarkdownPath is where export-markdown writes by default
	DefaultMarkdownPath = "tables.md"
)
