package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrom(t *testing.T) {
	input := "name,country\nPipeline,USA\nTeahupoo,French Polynesia\n"

	tbl, err := ReadFrom(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"name", "country"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Pipeline", tbl.Rows[0].String("name"))
	assert.Equal(t, "French Polynesia", tbl.Rows[1].String("country"))
}

func TestReadFromStripsByteOrderMark(t *testing.T) {
	input := "\uFEFFname,country\nPipeline,USA\n"

	tbl, err := ReadFrom(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"name", "country"}, tbl.Columns)
}

func TestReadFromQuotedFields(t *testing.T) {
	input := "name,summary\n\"St. Clair's Bay\",\"Long, peeling lefts\"\n"

	tbl, err := ReadFrom(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "St. Clair's Bay", tbl.Rows[0].String("name"))
	assert.Equal(t, "Long, peeling lefts", tbl.Rows[0].String("summary"))
}

func TestReadFromEmptyInput(t *testing.T) {
	_, err := ReadFrom(strings.NewReader(""))

	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))

	assert.Error(t, err)
}

func TestWriteTo(t *testing.T) {
	tbl := New("name", "rating")
	tbl.Append(Row{"name": "Uluwatu", "rating": 4.5})
	tbl.Append(Row{"name": "Mavericks"})

	var buf bytes.Buffer
	err := tbl.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, "name,rating\nUluwatu,4.5\nMavericks,\n", buf.String())
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "breaks.csv")

	tbl := New("name", "country")
	tbl.Append(Row{"name": "Pipeline", "country": "USA"})

	require.NoError(t, tbl.WriteFile(path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, got.Columns)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "Pipeline", got.Rows[0].String("name"))
}
