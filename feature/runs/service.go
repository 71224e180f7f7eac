package runs

import (
	"context"

	"surf-atlas/core/reconcile"
	"surf-atlas/feature/runs/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles run report operations.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new runs service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{store: NewStore(db), logger: logger}
}

// List returns recorded runs, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]models.RunReport, error) {
	return s.store.List(ctx, limit)
}

// Get returns a single run report, or nil when it is not recorded.
func (s *Service) Get(ctx context.Context, id string) (*models.RunReport, error) {
	return s.store.Get(ctx, id)
}

// StatsFor extracts a report's merge counters in the engine's shape.
func StatsFor(report *models.RunReport) reconcile.Stats {
	return reconcile.Stats{
		DirectMatches:    report.DirectMatches,
		NameAltMatches:   report.NameAltMatches,
		AltNameMatches:   report.AltNameMatches,
		TotalMerged:      report.TotalMerged,
		Source1Unmatched: report.Source1Unmatched,
		Source2Unmatched: report.Source2Unmatched,
	}
}
