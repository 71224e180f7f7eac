package breaks

import (
	"context"
	"errors"
	"strings"

	"surf-atlas/core/table"
	"surf-atlas/core/utils"
	"surf-atlas/feature/breaks/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// updatableColumns are the columns refreshed when an import hits an
// existing (name, country) pair.
var updatableColumns = []string{
	"alt_name", "link", "region", "type", "rating", "reliability",
	"swell_direction", "wind_direction", "best_month", "best_season",
	"summary", "time_of_year", "updated_at",
}

// Store persists surf breaks.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new break store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the surf_breaks table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.SurfBreak{})
}

// Upsert writes breaks, updating rows that already exist for the same
// (name, country) pair.
func (s *Store) Upsert(ctx context.Context, items []models.SurfBreak) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "country"}},
			DoUpdates: clause.AssignmentColumns(updatableColumns),
		}).
		CreateInBatches(items, 200).Error
}

// ImportTable upserts every row of a pipeline table into the catalogue.
// It understands both plain standardized tables and merged tables, where
// shared columns carry the configured source suffixes (blank suffixes mean
// the merge defaults). Rows without a name are skipped, and later
// duplicates of a (name, country) pair win over earlier ones. It returns
// the number of breaks written.
func (s *Store) ImportTable(ctx context.Context, t *table.Table, leftSuffix, rightSuffix string) (int, error) {
	if leftSuffix == "" {
		leftSuffix = "_source1"
	}
	if rightSuffix == "" {
		rightSuffix = "_source2"
	}

	byKey := make(map[string]int)
	items := make([]models.SurfBreak, 0, t.Len())

	for _, row := range t.Rows {
		item := rowToBreak(t, row, leftSuffix, rightSuffix)
		if item.Name == "" {
			continue
		}
		key := item.Name + "\x00" + item.Country
		if i, ok := byKey[key]; ok {
			items[i] = item
			continue
		}
		byKey[key] = len(items)
		items = append(items, item)
	}

	if err := s.Upsert(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// List returns breaks matching the filter, ordered by country then name.
func (s *Store) List(ctx context.Context, filter models.ListFilter) ([]models.SurfBreak, error) {
	q := s.db.WithContext(ctx).Model(&models.SurfBreak{})
	if filter.Country != "" {
		q = q.Where("country = ?", filter.Country)
	}
	if filter.Query != "" {
		q = q.Where("name LIKE ?", "%"+filter.Query+"%")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	q = q.Limit(limit)
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var items []models.SurfBreak
	if err := q.Order("country, name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single break by ID. It returns nil without an error when
// the break does not exist.
func (s *Store) Get(ctx context.Context, id int) (*models.SurfBreak, error) {
	var item models.SurfBreak
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CountByCountry aggregates the catalogue per country, busiest first.
func (s *Store) CountByCountry(ctx context.Context) ([]models.CountryCount, error) {
	var counts []models.CountryCount
	err := s.db.WithContext(ctx).
		Model(&models.SurfBreak{}).
		Select("country, count(*) as breaks").
		Group("country").
		Order("breaks desc, country").
		Find(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// rowToBreak maps one table row onto the break model, resolving the
// suffixed column layout merged tables use.
func rowToBreak(t *table.Table, row table.Row, left, right string) models.SurfBreak {
	pick := func(column string) string {
		return pickValue(t, row, column, left, right)
	}
	return models.SurfBreak{
		Name:           pick("name"),
		Country:        pick("country"),
		AltName:        pick("Alternative name"),
		Link:           pick("link"),
		Region:         pick("region"),
		Type:           pick("type"),
		Rating:         utils.ToFloat(pick("rating")),
		Reliability:    pick("reliability"),
		SwellDirection: pick("swell_direction"),
		WindDirection:  pick("wind_direction"),
		BestMonth:      pick("best_month"),
		BestSeason:     pick("best_season"),
		Summary:        pick("summary"),
		TimeOfYear:     pick("time_of_year"),
	}
}

// pickValue returns the first non-empty cell among the suffixed variants
// of a column, preferring the scraped source.
func pickValue(t *table.Table, row table.Row, column, left, right string) string {
	for _, candidate := range []string{column + left, column, column + right} {
		if !t.HasColumn(candidate) {
			continue
		}
		if v := strings.TrimSpace(row.String(candidate)); v != "" {
			return v
		}
	}
	return ""
}
