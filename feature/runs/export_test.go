package runs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"surf-atlas/core/table"
	"surf-atlas/feature/runs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func sampleReport() *models.RunReport {
	return &models.RunReport{
		ID:               "run-1",
		StartedAt:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt:       time.Date(2025, 6, 1, 10, 0, 42, 0, time.UTC),
		Source1Rows:      12,
		Source2Rows:      8,
		DirectMatches:    5,
		NameAltMatches:   1,
		AltNameMatches:   1,
		TotalMerged:      7,
		Source1Unmatched: 5,
		Source2Unmatched: 1,
	}
}

func sampleMerged() *table.Table {
	tbl := table.New("name_source1", "country_source1", "name_source2", "country_source2")
	tbl.Append(table.Row{
		"name_source1":    "Uluwatu",
		"country_source1": "Indonesia",
		"name_source2":    "Uluwatu Beach",
		"country_source2": "Indonesia",
	})
	return tbl
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{" xlsx ", FormatXLSX, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.raw)
		if tc.wantErr {
			assert.Error(t, err, tc.raw)
			continue
		}
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got)
	}
}

func TestExportJSON(t *testing.T) {
	exporter := NewExporter(zap.NewNop())
	out := filepath.Join(t.TempDir(), "export.json")

	require.NoError(t, exporter.Export(FormatJSON, out, sampleReport(), sampleMerged()))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, float64(1), payload["total"])
	assert.NotEmpty(t, payload["exported_at"])

	run, ok := payload["run"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "run-1", run["id"])
	assert.Equal(t, float64(5), run["direct_matches"])

	breaks, ok := payload["breaks"].([]any)
	require.True(t, ok)
	require.Len(t, breaks, 1)
	first := breaks[0].(map[string]any)
	assert.Equal(t, "Uluwatu", first["name_source1"])
}

func TestExportCSV(t *testing.T) {
	exporter := NewExporter(zap.NewNop())
	out := filepath.Join(t.TempDir(), "export.csv")

	require.NoError(t, exporter.Export(FormatCSV, out, nil, sampleMerged()))

	tbl, err := table.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"name_source1", "country_source1", "name_source2", "country_source2"}, tbl.Columns)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Uluwatu", tbl.Rows[0].String("name_source1"))
}

func TestExportXLSX(t *testing.T) {
	exporter := NewExporter(zap.NewNop())
	out := filepath.Join(t.TempDir(), "export.xlsx")

	require.NoError(t, exporter.Export(FormatXLSX, out, sampleReport(), sampleMerged()))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Merged Breaks", "A1")
	require.NoError(t, err)
	assert.Equal(t, "name_source1", header)

	name, err := f.GetCellValue("Merged Breaks", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Uluwatu", name)

	label, err := f.GetCellValue("Run Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Run ID", label)

	runID, err := f.GetCellValue("Run Report", "B1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", runID)
}

func TestExportRejectsNilTable(t *testing.T) {
	exporter := NewExporter(zap.NewNop())
	err := exporter.Export(FormatCSV, filepath.Join(t.TempDir(), "never.csv"), nil, nil)
	assert.ErrorContains(t, err, "nothing to export")
}
