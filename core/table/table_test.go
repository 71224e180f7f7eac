package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tbl := New("name", "country")

	assert.Equal(t, []string{"name", "country"}, tbl.Columns)
	assert.Equal(t, 0, tbl.Len())
}

func TestHasColumn(t *testing.T) {
	tbl := New("name", "country")

	assert.True(t, tbl.HasColumn("name"))
	assert.True(t, tbl.HasColumn("country"))
	assert.False(t, tbl.HasColumn("region"))
}

func TestAddColumn(t *testing.T) {
	tbl := New("name")

	tbl.AddColumn("region")
	tbl.AddColumn("region")

	assert.Equal(t, []string{"name", "region"}, tbl.Columns)
}

func TestAppend(t *testing.T) {
	tbl := New("name")

	tbl.Append(Row{"name": "Pipeline"})
	tbl.Append(Row{"name": "Teahupoo"}, Row{"name": "Mavericks"})

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, "Pipeline", tbl.Rows[0].String("name"))
	assert.Equal(t, "Mavericks", tbl.Rows[2].String("name"))
}

func TestRowString(t *testing.T) {
	row := Row{"name": "Uluwatu", "rating": 4.5, "summary": nil}

	assert.Equal(t, "Uluwatu", row.String("name"))
	assert.Equal(t, "4.5", row.String("rating"))
	assert.Equal(t, "", row.String("summary"))
	assert.Equal(t, "", row.String("missing"))
}
