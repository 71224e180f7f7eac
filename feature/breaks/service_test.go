package breaks

import (
	"context"
	"testing"

	"surf-atlas/core/database"
	"surf-atlas/core/table"
	"surf-atlas/feature/breaks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)

	svc := NewService(db, zap.NewNop())
	require.NoError(t, svc.store.Migrate())
	return svc
}

func TestServiceCountriesCaches(t *testing.T) {
	svc := setupService(t)

	require.NoError(t, svc.store.Upsert(context.Background(), []models.SurfBreak{
		{Name: "Uluwatu", Country: "Indonesia"},
	}))

	counts, err := svc.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 1)

	// Writes behind the cache stay invisible until invalidation.
	require.NoError(t, svc.store.Upsert(context.Background(), []models.SurfBreak{
		{Name: "Mundaka", Country: "Spain"},
	}))

	cached, err := svc.Countries(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	svc.InvalidateCountries()

	fresh, err := svc.Countries(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestServiceImportInvalidatesCountries(t *testing.T) {
	svc := setupService(t)

	empty, err := svc.Countries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)

	tbl := table.New("name", "country")
	tbl.Append(table.Row{"name": "Raglan", "country": "New Zealand"})

	n, err := svc.Import(context.Background(), tbl, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	counts, err := svc.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "New Zealand", counts[0].Country)
	assert.Equal(t, int64(1), counts[0].Breaks)
}
