package breaks

import (
	"context"
	"fmt"
	"testing"

	"surf-atlas/feature/breaks/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestListPropagatesQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `surf_breaks`").WillReturnError(fmt.Errorf("connection reset"))

	_, err := store.List(context.Background(), models.ListFilter{})
	assert.Error(t, err)
}

func TestGetPropagatesQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	// Only ErrRecordNotFound maps to a nil result; everything else surfaces.
	mock.ExpectQuery("SELECT \\* FROM `surf_breaks`").WillReturnError(fmt.Errorf("connection reset"))

	_, err := store.Get(context.Background(), 1)
	assert.Error(t, err)
}

func TestCountByCountryScansAggregates(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"country", "breaks"}).
		AddRow("Portugal", 12).
		AddRow("Australia", 9)

	mock.ExpectQuery("SELECT country, count\\(\\*\\) as breaks FROM `surf_breaks`").WillReturnRows(rows)

	counts, err := store.CountByCountry(context.Background())
	assert.NoError(t, err)
	assert.Len(t, counts, 2)
	assert.Equal(t, "Portugal", counts[0].Country)
	assert.Equal(t, int64(12), counts[0].Breaks)
	assert.NoError(t, mock.ExpectationsWereMet())
}
