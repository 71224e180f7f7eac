package reconcile

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surf-atlas/core/countries"
	"surf-atlas/core/table"
)

var testStandardizer = countries.NewStandardizer(countries.DefaultOverrides(), countries.NewWorldReference())

func newTestEngine() *Engine {
	return NewEngine(testStandardizer, DefaultOptions())
}

func TestMergeDirectMatch(t *testing.T) {
	source1 := table.New("name", "country", "rating")
	source1.Append(table.Row{"name": "Pipeline", "country": "USA", "rating": "4.8"})

	source2 := table.New("name", "country", "swell_direction")
	source2.Append(table.Row{"name": "Pipeline", "country": "United States", "swell_direction": "NW"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	require.Equal(t, 1, res.Merged.Len())
	assert.Equal(t, []string{
		"name_source1", "country_source1", "rating",
		"name_source2", "country_source2", "swell_direction",
	}, res.Merged.Columns)

	row := res.Merged.Rows[0]
	assert.Equal(t, "Pipeline", row.String("name_source1"))
	assert.Equal(t, "USA", row.String("country_source1"))
	assert.Equal(t, "United States", row.String("country_source2"))
	assert.Equal(t, "NW", row.String("swell_direction"))

	assert.Equal(t, Stats{DirectMatches: 1, TotalMerged: 1}, res.Stats)
}

func TestMergeNormalizesNames(t *testing.T) {
	source1 := table.New("name", "country")
	source1.Append(table.Row{"name": "St. Clair's Bay", "country": "New Zealand"})

	source2 := table.New("name", "country")
	source2.Append(table.Row{"name": "ST CLAIRS BAY", "country": "New Zealand"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.DirectMatches)
}

func TestMergeNameToAltMatch(t *testing.T) {
	source1 := table.New("name", "country")
	source1.Append(table.Row{"name": "J Bay", "country": "South Africa"})

	source2 := table.New("name", "Alternative name", "country")
	source2.Append(table.Row{"name": "Jeffreys Bay", "Alternative name": "J-Bay", "country": "South Africa"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	require.Equal(t, 1, res.Merged.Len())
	assert.Equal(t, Stats{NameAltMatches: 1, TotalMerged: 1}, res.Stats)

	// Only source2 carries the alternative name, so it passes through
	// unsuffixed.
	assert.Equal(t, "J-Bay", res.Merged.Rows[0].String("Alternative name"))
}

func TestMergeAltToNameMatch(t *testing.T) {
	source1 := table.New("name", "Alternative name", "country")
	source1.Append(table.Row{"name": "Jeffreys Bay", "Alternative name": "J-Bay", "country": "South Africa"})

	source2 := table.New("name", "country")
	source2.Append(table.Row{"name": "J Bay", "country": "South Africa"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	require.Equal(t, 1, res.Merged.Len())
	assert.Equal(t, Stats{AltNameMatches: 1, TotalMerged: 1}, res.Stats)
}

func TestMergePassOrdering(t *testing.T) {
	source1 := table.New("name", "Alternative name", "country")
	source1.Append(table.Row{"name": "Uluwatu Alt", "Alternative name": "Padang", "country": "Indonesia"})
	source1.Append(table.Row{"name": "Uluwatu", "country": "Indonesia"})
	source1.Append(table.Row{"name": "Bingin", "country": "Indonesia"})

	source2 := table.New("name", "Alternative name", "country")
	source2.Append(table.Row{"name": "Padang", "country": "Indonesia"})
	source2.Append(table.Row{"name": "Uluwatu", "country": "Indonesia"})
	source2.Append(table.Row{"name": "Bingin Beach", "Alternative name": "Bingin", "country": "Indonesia"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	require.Equal(t, 3, res.Merged.Len())
	assert.Equal(t, Stats{DirectMatches: 1, NameAltMatches: 1, AltNameMatches: 1, TotalMerged: 3}, res.Stats)

	// Pass 1 output first, then pass 2, then pass 3.
	assert.Equal(t, "Uluwatu", res.Merged.Rows[0].String("name_source1"))
	assert.Equal(t, "Bingin", res.Merged.Rows[1].String("name_source1"))
	assert.Equal(t, "Uluwatu Alt", res.Merged.Rows[2].String("name_source1"))
}

func TestMergeSinglePairingPerRow(t *testing.T) {
	source1 := table.New("name", "country")
	source1.Append(table.Row{"name": "The Wedge", "country": "USA"})
	source1.Append(table.Row{"name": "The Wedge!", "country": "USA"})

	source2 := table.New("name", "country")
	source2.Append(table.Row{"name": "The Wedge", "country": "United States"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	require.Equal(t, 1, res.Merged.Len())
	assert.Equal(t, "The Wedge", res.Merged.Rows[0].String("name_source1"))
	assert.Equal(t, Stats{DirectMatches: 1, TotalMerged: 1, Source1Unmatched: 1}, res.Stats)
}

func TestMergePairsKeyGroupsInSourceOrder(t *testing.T) {
	source1 := table.New("id", "name", "country")
	source1.Append(table.Row{"id": "a1", "name": "Lefts", "country": "Peru"})
	source1.Append(table.Row{"id": "a2", "name": "Lefts", "country": "Peru"})

	source2 := table.New("id", "name", "country")
	source2.Append(table.Row{"id": "b1", "name": "Lefts", "country": "Peru"})
	source2.Append(table.Row{"id": "b2", "name": "Lefts", "country": "Peru"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	require.Equal(t, 2, res.Merged.Len())
	assert.Equal(t, "b1", res.Merged.Rows[0].String("id_source2"))
	assert.Equal(t, "a1", res.Merged.Rows[0].String("id_source1"))
	assert.Equal(t, "b2", res.Merged.Rows[1].String("id_source2"))
	assert.Equal(t, "a2", res.Merged.Rows[1].String("id_source1"))
}

func TestMergeRowsWithMissingValuesNeverMatch(t *testing.T) {
	source1 := table.New("name", "country")
	source1.Append(table.Row{"name": "Pipeline", "country": nil})
	source1.Append(table.Row{"name": nil, "country": "United States"})
	source1.Append(table.Row{"name": "Backdoor", "country": "United States"})

	source2 := table.New("name", "country")
	source2.Append(table.Row{"name": "Pipeline", "country": "United States"})
	source2.Append(table.Row{"name": "", "country": "United States"})
	source2.Append(table.Row{"name": "Backdoor", "country": "United States"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	assert.Equal(t, Stats{
		DirectMatches:    1,
		TotalMerged:      1,
		Source1Unmatched: 2,
		Source2Unmatched: 2,
	}, res.Stats)
	assert.Equal(t, "Backdoor", res.Merged.Rows[0].String("name_source1"))
}

func TestMergeEmptyAltValueNeverMatches(t *testing.T) {
	source1 := table.New("name", "country")
	source1.Append(table.Row{"name": "Left Point", "country": "Portugal"})

	source2 := table.New("name", "Alternative name", "country")
	source2.Append(table.Row{"name": "Lefty", "Alternative name": "", "country": "Portugal"})
	source2.Append(table.Row{"name": "Other", "Alternative name": "", "country": "Portugal"})

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Merged.Len())
}

func TestMergeMissingMandatoryColumn(t *testing.T) {
	valid := table.New("name", "country")

	_, err := newTestEngine().Merge(table.New("country"), valid)
	assert.ErrorContains(t, err, "source1")

	_, err = newTestEngine().Merge(valid, table.New("name"))
	assert.ErrorContains(t, err, "source2")
}

func TestMergeEmptyTables(t *testing.T) {
	res, err := newTestEngine().Merge(table.New("name", "country"), table.New("name", "country"))

	require.NoError(t, err)
	assert.Equal(t, 0, res.Merged.Len())
	assert.Equal(t, Stats{}, res.Stats)
	assert.Equal(t, []string{"name_source1", "country_source1", "name_source2", "country_source2"}, res.Merged.Columns)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	source1 := table.New("name", "country")
	source1.Append(table.Row{"name": "Pipeline", "country": "USA"})

	source2 := table.New("name", "country")
	source2.Append(table.Row{"name": "Pipeline", "country": "United States"})

	_, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	assert.Equal(t, "USA", source1.Rows[0].String("country"))
	assert.Len(t, source1.Rows[0], 2)
	assert.Equal(t, []string{"name", "country"}, source1.Columns)
}

func TestMergeConsumesEachRowAtMostOnce(t *testing.T) {
	faker := gofakeit.New(7)

	namePool := []string{"Pipeline", "Backdoor", "Off The Wall", "Rockpile", "Log Cabins", "Ehukai"}
	countryPool := []string{"USA", "United States", "Indonesia", "Portugal"}

	source1 := table.New("id", "name", "country")
	source2 := table.New("id", "name", "Alternative name", "country")
	for i := 0; i < 40; i++ {
		source1.Append(table.Row{
			"id":      fmt.Sprintf("a%d", i),
			"name":    faker.RandomString(namePool),
			"country": faker.RandomString(countryPool),
		})
		source2.Append(table.Row{
			"id":               fmt.Sprintf("b%d", i),
			"name":             faker.RandomString(namePool),
			"Alternative name": faker.RandomString(namePool),
			"country":          faker.RandomString(countryPool),
		})
	}

	res, err := newTestEngine().Merge(source1, source2)

	require.NoError(t, err)
	assert.Equal(t, res.Stats.TotalMerged, res.Stats.DirectMatches+res.Stats.NameAltMatches+res.Stats.AltNameMatches)
	assert.Equal(t, res.Stats.TotalMerged, res.Merged.Len())

	seen1 := map[string]bool{}
	seen2 := map[string]bool{}
	for _, row := range res.Merged.Rows {
		id1 := row.String("id_source1")
		id2 := row.String("id_source2")
		assert.False(t, seen1[id1], "source1 row %s consumed twice", id1)
		assert.False(t, seen2[id2], "source2 row %s consumed twice", id2)
		seen1[id1] = true
		seen2[id2] = true
	}
}
