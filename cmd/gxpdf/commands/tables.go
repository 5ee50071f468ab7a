package commands

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coregx/gxpdf"
	"github.com/coregx/gxpdf/export"
	"github.com/coregx/gxpdf/internal/cli"
	"github.com/coregx/gxpdf/internal/mldetect"
)

var (
	tablesPage   int
	tablesOutput string
	tablesAll    bool

	tablesDetectionMethod string
	tablesLayoutMethod    string
	tablesMaxLineSpace    float64
	tablesMaxCharSpace    float64
	tablesImgPath         string
	tablesOverwrite       bool
	tablesExportDir       string
	tablesExportFormat    string
	tablesWorkers         int
)

var tablesCmd = &cobra.Command{
	Use:   "tables FILE...",
	Short: "Extract tables from PDF",
	Long: `Extract tables from born-digital PDF files using a pure geometric
pipeline: table region detection, column/row layout extraction, then cell
resolution over the glyph stream. No rasterization or OCR is involved.

Output formats:
  - text: Human-readable table format (default, single file only)
  - csv:  Comma-separated values
  - json: JSON array of tables with rows and cells

Given --export, each table is instead written as its own file (csv, json,
or excel) under the export directory, one file per table. Passing multiple
FILE arguments with --workers > 1 processes files concurrently; --export is
required for --workers > 1 since only one file can stream to stdout.

Examples:
  gxpdf tables invoice.pdf
  gxpdf tables bank_statement.pdf --format csv > transactions.csv
  gxpdf tables report.pdf --page 2 --format json
  gxpdf tables *.pdf --export tables/ --export_format excel --workers 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().IntVarP(&tablesPage, "page", "p", 0, "Extract from specific page (0 = all pages)")
	tablesCmd.Flags().StringVarP(&tablesOutput, "output", "o", "", "Output file (default: stdout, single-file mode only)")
	tablesCmd.Flags().BoolVarP(&tablesAll, "all", "a", false, "Has no effect: every detected table is always extracted")

	tablesCmd.Flags().StringVar(&tablesDetectionMethod, "detection_method", "rule-based", "Table region detection: rule-based or model-based")
	tablesCmd.Flags().StringVar(&tablesLayoutMethod, "layout_method", "rule-based", "Column/row layout extraction: rule-based or model-based")
	tablesCmd.Flags().Float64Var(&tablesMaxLineSpace, "max_linespace", -0.3, "Row-gap threshold for header/footer detection")
	tablesCmd.Flags().Float64Var(&tablesMaxCharSpace, "max_charspace", 5, "Column-gap threshold for word grouping")
	tablesCmd.Flags().StringVar(&tablesImgPath, "img_path", "", "Directory to write debug region overlays to")
	tablesCmd.Flags().BoolVar(&tablesOverwrite, "overwrite", false, "Overwrite existing files in --export")
	tablesCmd.Flags().StringVar(&tablesExportDir, "export", "", "Directory to write one file per table to, instead of stdout")
	tablesCmd.Flags().StringVar(&tablesExportFormat, "export_format", "csv", "Export file format: csv, json, or excel")
	tablesCmd.Flags().IntVar(&tablesWorkers, "workers", 1, "Number of files to process concurrently")
}

func runTables(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cli.NewLogger(verbose)

	if cfg.DetectionMethod == "model-based" || cfg.LayoutMethod == "model-based" {
		return fmt.Errorf("model-based detection/layout is not available in this build; use --detection_method rule-based --layout_method rule-based")
	}

	if cfg.Workers > 1 && cfg.ExportDir == "" {
		return fmt.Errorf("--workers > 1 requires --export, since only one file can stream to stdout")
	}
	if len(args) > 1 && cfg.ExportDir == "" {
		return fmt.Errorf("processing multiple files requires --export")
	}

	if cfg.ImgPath != "" {
		if err := os.MkdirAll(cfg.ImgPath, 0o755); err != nil {
			return fmt.Errorf("failed to create img_path dir %s: %w", cfg.ImgPath, err)
		}
		logger.Warn().Msg("--img_path set but no concrete overlay renderer is wired in this build; no overlay files will be produced")
	}

	return cli.DispatchFiles(cmd.Context(), args, cfg.Workers, func(ctx context.Context, file string) error {
		return processTablesFile(ctx, file, cfg, logger)
	})
}

func processTablesFile(_ context.Context, filePath string, cfg cli.Config, logger zerolog.Logger) error {
	logger.Debug().Str("file", filePath).Msg("opening PDF")

	doc, err := gxpdf.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer func() { _ = doc.Close() }()

	logger.Debug().Str("file", filePath).Int("pages", doc.PageCount()).Msg("PDF opened")

	opts := gxpdf.DefaultExtractionOptions()
	opts.MaxLineSpace = &cfg.Params.MaxLineSpace
	opts.MaxCharSpace = &cfg.Params.MaxCharSpace
	if cfg.ImgPath != "" {
		opts.Overlay = mldetect.NopOverlayRenderer{}
		opts.OverlayDir = cfg.ImgPath
	}

	startPage, endPage, err := getPageRange(doc.PageCount())
	if err != nil {
		return err
	}
	opts.Pages = pageRangeIndices(startPage, endPage)

	tables, err := doc.ExtractTablesWithOptions(opts)
	if err != nil {
		return fmt.Errorf("failed to extract tables from %s: %w", filePath, err)
	}

	if len(tables) == 0 {
		logger.Info().Str("file", filePath).Msg("no tables found")
		return nil
	}

	logger.Info().Str("file", filePath).Int("count", len(tables)).Msg("tables extracted")
	for _, t := range tables {
		logger.Debug().Str("file", filePath).Str("region", t.RegionID()).
			Int("page", t.PageNumber()+1).Int("rows", t.RowCount()).Int("cols", t.ColumnCount()).
			Msg("table region resolved")
	}

	if cfg.ExportDir != "" {
		return exportTablesToDir(tables, filePath, cfg)
	}

	return outputTables(toExtractedTables(tables))
}

func getPageRange(pageCount int) (start, end int, err error) {
	if tablesPage > 0 {
		if tablesPage > pageCount {
			return 0, 0, fmt.Errorf("page %d does not exist (document has %d pages)", tablesPage, pageCount)
		}
		return tablesPage - 1, tablesPage - 1, nil
	}
	return 0, pageCount - 1, nil
}

func pageRangeIndices(start, end int) []int {
	if end < start {
		return nil
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

func toExtractedTables(tables []*gxpdf.Table) []extractedTable {
	allTables := make([]extractedTable, 0, len(tables))
	for i, t := range tables {
		allTables = append(allTables, extractedTable{
			Page:    t.PageNumber() + 1,
			Index:   i + 1,
			Rows:    t.RowCount(),
			Columns: t.ColumnCount(),
			Data:    t.Rows(),
		})
	}
	return allTables
}

// exportTablesToDir writes each extracted table as its own file under
// cfg.ExportDir, named after the source file, page, and table index.
func exportTablesToDir(tables []*gxpdf.Table, sourcePath string, cfg cli.Config) error {
	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir %s: %w", cfg.ExportDir, err)
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	opts := export.DefaultExportOptions()
	opts.IncludeMetadata = true
	opts.PreserveSpans = true

	var exporter export.TableExporter
	switch cfg.ExportFormat {
	case "json":
		exporter = export.NewJSONExporterWithOptions(opts)
	case "excel":
		exporter = export.NewExcelExporterWithOptions(opts)
	default:
		exporter = export.NewCSVExporterWithOptions(opts)
	}

	for i, t := range tables {
		name := fmt.Sprintf("%s_p%d_t%d_%s%s", base, t.PageNumber()+1, i+1, t.RegionID(), exporter.FileExtension())
		outPath := filepath.Join(cfg.ExportDir, name)

		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if !cfg.Overwrite {
			flags |= os.O_EXCL
		}
		f, err := os.OpenFile(outPath, flags, 0o644) //nolint:gosec // G304: export dir is user-specified by design
		if err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("export file %s already exists; pass --overwrite to replace it", outPath)
			}
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}

		exportErr := exporter.Export(t.Internal(), f)
		closeErr := f.Close()
		if exportErr != nil {
			return fmt.Errorf("failed to export %s: %w", outPath, exportErr)
		}
		if closeErr != nil {
			return fmt.Errorf("failed to close %s: %w", outPath, closeErr)
		}
	}
	return nil
}

func outputTables(allTables []extractedTable) error {
	out, cleanup, err := getOutput()
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	switch outputFormat {
	case "json":
		return outputTablesJSON(out, allTables)
	case "csv":
		return outputTablesCSV(out, allTables)
	default:
		return outputTablesText(out, allTables)
	}
}

func getOutput() (*os.File, func(), error) {
	if tablesOutput != "" {
		f, err := os.Create(tablesOutput) //nolint:gosec // G304: User-specified output file
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	return os.Stdout, nil, nil
}

type extractedTable struct {
	Page    int        `json:"page"`
	Index   int        `json:"index"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Data    [][]string `json:"data"`
}

func outputTablesJSON(out *os.File, tables []extractedTable) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tables)
}

func outputTablesCSV(out *os.File, tables []extractedTable) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	for _, t := range tables {
		// Write table header comment.
		if len(tables) > 1 {
			if err := writer.Write([]string{fmt.Sprintf("# Table %d (Page %d)", t.Index, t.Page)}); err != nil {
				return err
			}
		}
		// Write data rows.
		for _, row := range t.Data {
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

//nolint:unparam // Returns nil for consistency with other output functions.
func outputTablesText(out *os.File, tables []extractedTable) error {
	for i, t := range tables {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprintf(out, "=== Table %d (Page %d, %d rows x %d columns) ===\n",
			t.Index, t.Page, t.Rows, t.Columns)

		colWidths := calculateColumnWidths(t)
		printTableRows(out, t.Data, colWidths)
	}
	return nil
}

func calculateColumnWidths(t extractedTable) []int {
	colWidths := make([]int, t.Columns)
	for _, row := range t.Data {
		for j, cell := range row {
			if j < len(colWidths) && len(cell) > colWidths[j] {
				colWidths[j] = len(cell)
			}
		}
	}
	return colWidths
}

func printTableRows(out *os.File, data [][]string, colWidths []int) {
	for _, row := range data {
		cells := make([]string, 0, len(row))
		for j, cell := range row {
			width := 10
			if j < len(colWidths) {
				width = colWidths[j]
			}
			cells = append(cells, fmt.Sprintf("%-*s", width, cell))
		}
		_, _ = fmt.Fprintln(out, strings.Join(cells, " | "))
	}
}
