package runs

import (
	"context"
	"errors"

	"surf-atlas/core/reconcile"
	"surf-atlas/feature/runs/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store persists run reports.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new run report store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the run_reports table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.RunReport{})
}

// Create persists a report, assigning a fresh ID when none is set.
func (s *Store) Create(ctx context.Context, report *models.RunReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(report).Error
}

// List returns reports, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]models.RunReport, error) {
	if limit <= 0 {
		limit = 50
	}

	var reports []models.RunReport
	err := s.db.WithContext(ctx).
		Order("started_at desc, id").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Get fetches a single report by ID. It returns nil without an error when
// the report does not exist.
func (s *Store) Get(ctx context.Context, id string) (*models.RunReport, error) {
	var report models.RunReport
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// Latest returns the most recent report, or nil when no run is recorded.
func (s *Store) Latest(ctx context.Context) (*models.RunReport, error) {
	var report models.RunReport
	err := s.db.WithContext(ctx).
		Order("started_at desc, id").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// ReportFromStats seeds a report with the counters of one merge. The caller
// fills in the ID, timestamps and artifact path.
func ReportFromStats(stats reconcile.Stats, source1Rows, source2Rows int) models.RunReport {
	return models.RunReport{
		Source1Rows:      source1Rows,
		Source2Rows:      source2Rows,
		DirectMatches:    stats.DirectMatches,
		NameAltMatches:   stats.NameAltMatches,
		AltNameMatches:   stats.AltNameMatches,
		TotalMerged:      stats.TotalMerged,
		Source1Unmatched: stats.Source1Unmatched,
		Source2Unmatched: stats.Source2Unmatched,
	}
}
