package runs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"surf-atlas/core/table"
	"surf-atlas/feature/runs/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Format is an export output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format flag value.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want xlsx, csv or json)", raw)
	}
}

// Exporter renders a run report and its merged table to a file.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new exporter.
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Export writes the merged table, and the report where the format carries
// one, to filename. The report may be nil when no run is recorded.
func (e *Exporter) Export(format Format, filename string, report *models.RunReport, merged *table.Table) error {
	if merged == nil {
		return fmt.Errorf("nothing to export: merged table is nil")
	}

	var err error
	switch format {
	case FormatJSON:
		err = e.exportJSON(filename, report, merged)
	case FormatCSV:
		err = merged.WriteFile(filename)
	case FormatXLSX:
		err = e.exportXLSX(filename, report, merged)
	default:
		err = fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return err
	}

	e.logger.Info("Export written",
		zap.String("file", filename),
		zap.String("format", string(format)),
		zap.Int("rows", merged.Len()))
	return nil
}

func (e *Exporter) exportJSON(filename string, report *models.RunReport, merged *table.Table) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	payload := map[string]any{
		"exported_at": time.Now().Format(time.RFC3339),
		"total":       merged.Len(),
		"breaks":      merged.Rows,
	}
	if report != nil {
		payload["run"] = report
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (e *Exporter) exportXLSX(filename string, report *models.RunReport, merged *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	const dataSheet = "Merged Breaks"
	index, err := f.NewSheet(dataSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E74B5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, column := range merged.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(dataSheet, cell, column)
		f.SetCellStyle(dataSheet, cell, cell, headerStyle)
	}

	for rowIdx, row := range merged.Rows {
		for colIdx, column := range merged.Columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(dataSheet, cell, row.String(column))
		}
	}

	for i := range merged.Columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(dataSheet, col, col, 18)
	}

	if report != nil {
		if err := writeReportSheet(f, headerStyle, report); err != nil {
			return err
		}
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeReportSheet(f *excelize.File, headerStyle int, report *models.RunReport) error {
	const sheet = "Run Report"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create report sheet: %w", err)
	}

	rows := [][2]any{
		{"Run ID", report.ID},
		{"Started At", report.StartedAt.Format(time.RFC3339)},
		{"Finished At", report.FinishedAt.Format(time.RFC3339)},
		{"Duration", report.Duration().String()},
		{"Source 1 Rows", report.Source1Rows},
		{"Source 2 Rows", report.Source2Rows},
		{"Direct Matches", report.DirectMatches},
		{"Name/Alt Matches", report.NameAltMatches},
		{"Alt/Name Matches", report.AltNameMatches},
		{"Total Merged", report.TotalMerged},
		{"Source 1 Unmatched", report.Source1Unmatched},
		{"Source 2 Unmatched", report.Source2Unmatched},
	}
	for i, pair := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		f.SetCellValue(sheet, keyCell, pair[0])
		f.SetCellValue(sheet, valCell, pair[1])
		f.SetCellStyle(sheet, keyCell, keyCell, headerStyle)
	}

	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "B", 40)
	return nil
}
