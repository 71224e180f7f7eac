package breaks

import (
	"context"
	"sync"
	"time"

	"surf-atlas/core/table"
	"surf-atlas/feature/breaks/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// countriesCacheTTL bounds how stale the per-country aggregation may get
// between imports.
const countriesCacheTTL = time.Minute

// Service handles catalogue operations.
type Service struct {
	store  *Store
	logger *zap.Logger

	mu        sync.RWMutex
	countries []models.CountryCount
	built     time.Time
	sf        singleflight.Group
}

// NewService creates a new breaks service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{store: NewStore(db), logger: logger}
}

// List returns catalogued breaks matching the filter.
func (s *Service) List(ctx context.Context, filter models.ListFilter) ([]models.SurfBreak, error) {
	return s.store.List(ctx, filter)
}

// Get returns a single break, or nil when it is not catalogued.
func (s *Service) Get(ctx context.Context, id int) (*models.SurfBreak, error) {
	return s.store.Get(ctx, id)
}

// Import migrates the schema, upserts the table into the catalogue and
// drops the cached aggregation. The suffixes describe the merged table's
// shared-column layout; blank values mean the merge defaults. It returns
// the number of breaks written.
func (s *Service) Import(ctx context.Context, t *table.Table, leftSuffix, rightSuffix string) (int, error) {
	if err := s.store.Migrate(); err != nil {
		return 0, err
	}
	n, err := s.store.ImportTable(ctx, t, leftSuffix, rightSuffix)
	if err != nil {
		return 0, err
	}
	s.InvalidateCountries()
	return n, nil
}

// Countries aggregates the catalogue per country. Results are cached and
// concurrent rebuilds collapse into a single query.
func (s *Service) Countries(ctx context.Context) ([]models.CountryCount, error) {
	// Fast path: cache exists and is fresh.
	s.mu.RLock()
	counts, built := s.countries, s.built
	s.mu.RUnlock()
	if !built.IsZero() && time.Since(built) < countriesCacheTTL {
		return counts, nil
	}

	v, err, _ := s.sf.Do("countries", func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		s.mu.RLock()
		counts, built := s.countries, s.built
		s.mu.RUnlock()
		if !built.IsZero() && time.Since(built) < countriesCacheTTL {
			return counts, nil
		}

		fresh, err := s.store.CountByCountry(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.countries = fresh
		s.built = time.Now()
		s.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.CountryCount), nil
}

// InvalidateCountries drops the cached aggregation, forcing the next call
// to hit the database.
func (s *Service) InvalidateCountries() {
	s.mu.Lock()
	s.countries = nil
	s.built = time.Time{}
	s.mu.Unlock()
}
