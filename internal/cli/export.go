package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/petsctl/internal/config"
	"github.com/mrlokans/petsctl/internal/exporters"
	"github.com/mrlokans/petsctl/internal/utils"
)

// documentStyle converts the configured hex colors. Invalid values are a
// validation error.
func documentStyle(cfg config.Export) (exporters.DocumentStyle, error) {
	style := exporters.DefaultDocumentStyle
	colors := []struct {
		key   string
		value string
		dst   *exporters.RGB
	}{
		{"DOCUMENT_HEADER_COLOR", cfg.HeaderColor, &style.HeaderFill},
		{"DOCUMENT_HEADER_TEXT_COLOR", cfg.HeaderTextColor, &style.HeaderText},
		{"DOCUMENT_BODY_COLOR", cfg.BodyColor, &style.BodyFill},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		r, g, b, err := utils.HexToRGB(c.value)
		if err != nil {
			return style, ValidationError(fmt.Sprintf("invalid %s: %v", c.key, err), "Use the #RRGGBB format.")
		}
		*c.dst = exporters.RGB{R: r, G: g, B: b}
	}
	return style, nil
}

type exportSpec struct {
	use         string
	alias       string
	short       string
	label       string
	defaultPath func(cfg *config.Config) string
	tables      func(a *app) ([]exporters.Table, error)
	exporter    func(a *app, path string) (exporters.TableExporter, error)
}

func newExportCmd(a *app, def exportSpec) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     def.use,
		Aliases: []string{def.alias},
		Short:   def.short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := utils.ResolveOutputPath(output, def.defaultPath(a.cfg))
			if err != nil {
				return exportFailure(def.use, err)
			}
			exporter, err := def.exporter(a, path)
			if err != nil {
				return err
			}

			tables, err := def.tables(a)
			if err != nil {
				return storeFailure(def.use, err)
			}
			result, err := exporter.Export(tables)
			if err != nil {
				return exportFailure(def.use, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s exported to %s (%d tables, %d rows)\n",
				def.label, result.Path, result.TablesProcessed, result.RowsProcessed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or existing directory")
	return cmd
}

func newExportSpreadsheetCmd(a *app) *cobra.Command {
	return newExportCmd(a, exportSpec{
		use:         "export-spreadsheet",
		alias:       "exportExcel",
		short:       "Export users, pets and categories to an .xlsx workbook, one sheet each",
		label:       "Spreadsheet",
		defaultPath: func(cfg *config.Config) string { return cfg.Export.SpreadsheetPath },
		tables:      func(a *app) ([]exporters.Table, error) { return a.snapshots.RawTables() },
		exporter: func(a *app, path string) (exporters.TableExporter, error) {
			return exporters.NewSpreadsheetExporter(path), nil
		},
	})
}

func newExportDocumentCmd(a *app) *cobra.Command {
	return newExportCmd(a, exportSpec{
		use:         "export-document",
		alias:       "exportPDF",
		short:       "Export users, pets and categories to a PDF with one table each",
		label:       "Document",
		defaultPath: func(cfg *config.Config) string { return cfg.Export.DocumentPath },
		tables:      func(a *app) ([]exporters.Table, error) { return a.snapshots.ReportTables() },
		exporter: func(a *app, path string) (exporters.TableExporter, error) {
			style, err := documentStyle(a.cfg.Export)
			if err != nil {
				return nil, err
			}
			return exporters.NewDocumentExporter(path, style), nil
		},
	})
}

func newExportMarkdownCmd(a *app) *cobra.Command {
	return newExportCmd(a, exportSpec{
		use:         "export-markdown",
		alias:       "exportMarkdown",
		short:       "Export users, pets and categories to a markdown file",
		label:       "Markdown",
		defaultPath: func(cfg *config.Config) string { return cfg.Export.MarkdownPath },
		tables:      func(a *app) ([]exporters.Table, error) { return a.snapshots.ReportTables() },
		exporter: func(a *app, path string) (exporters.TableExporter, error) {
			return exporters.NewMarkdownExporter(path), nil
		},
	})
}
