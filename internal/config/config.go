package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Export
		Log
	}

	Database struct {
		Path string
	}
	Export struct {
		SpreadsheetPath string
		DocumentPath    string
		MarkdownPath    string

		// Document table colors, "#RRGGBB"
		HeaderColor     string
		HeaderTextColor string
		BodyColor       string
	}
	Log struct {
		SQL bool // Log every statement sent to the store
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("spreadsheet_path", DefaultSpreadsheetPath)
	v.SetDefault("document_path", DefaultDocumentPath)
	v.SetDefault("markdown_path", DefaultMarkdownPath)
	v.SetDefault("document_header_color", "#808080")      // grey
	v.SetDefault("document_header_text_color", "#F5F5F5") // whitesmoke
	v.SetDefault("document_body_color", "#F5F5F5")        // whitesmoke
	v.SetDefault("log_sql", false)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Export: Export{
			SpreadsheetPath: v.GetString("SPREADSHEET_PATH"),
			DocumentPath:    v.GetString("DOCUMENT_PATH"),
			MarkdownPath:    v.GetString("MARKDOWN_PATH"),
			HeaderColor:     v.GetString("DOCUMENT_HEADER_COLOR"),
			HeaderTextColor: v.GetString("DOCUMENT_HEADER_TEXT_COLOR"),
			BodyColor:       v.GetString("DOCUMENT_BODY_COLOR"),
		},
		Log: Log{
			SQL: v.GetBool("LOG_SQL"),
		},
	}
}
