package pipeline

import (
	"fmt"
	"time"

	"surf-atlas/core/countries"
	"surf-atlas/core/reconcile"
	"surf-atlas/core/table"

	"go.uber.org/zap"
)

// Runner executes the file-level pipeline stages. The scraping stages live
// in core/scrape; the runner covers everything downstream of them.
type Runner struct {
	cfg    Config
	std    *countries.Standardizer
	engine *reconcile.Engine
	logger *zap.Logger
}

// NewRunner creates a pipeline runner with the world country reference.
func NewRunner(cfg Config, logger *zap.Logger) *Runner {
	std := countries.NewStandardizer(countries.DefaultOverrides(), countries.NewWorldReference())
	return &Runner{
		cfg:    cfg,
		std:    std,
		engine: reconcile.NewEngine(std, cfg.Options()),
		logger: logger,
	}
}

// MergeOutcome carries everything one merge stage produced.
type MergeOutcome struct {
	Result      *reconcile.Result
	MergedPath  string
	Source1Rows int
	Source2Rows int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// StandardizeFile reads a CSV, rewrites the country column to standardized
// names, and writes the result.
func (r *Runner) StandardizeFile(in, out, column string) error {
	t, err := table.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	if err := r.std.StandardizeColumn(t, column); err != nil {
		return fmt.Errorf("failed to standardize %s: %w", in, err)
	}
	if err := t.WriteFile(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	r.logger.Info("Standardized countries",
		zap.String("in", in),
		zap.String("out", out),
		zap.Int("rows", t.Len()))
	return nil
}

// MergeFiles merges two standardized CSVs and writes the merged table plus
// both leftover tables under the data directory.
func (r *Runner) MergeFiles(source1Path, source2Path string) (*MergeOutcome, error) {
	started := time.Now()

	source1, err := table.ReadFile(source1Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source1Path, err)
	}
	source2, err := table.ReadFile(source2Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source2Path, err)
	}

	result, err := r.engine.Merge(source1, source2)
	if err != nil {
		return nil, err
	}

	left, right := reconcile.Unmatched(source1, source2, result.Merged, r.cfg.Options())

	mergedPath := r.cfg.Path(MergedFile)
	if err := result.Merged.WriteFile(mergedPath); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", mergedPath, err)
	}
	if err := left.WriteFile(r.cfg.Path(Source1UnmatchedFile)); err != nil {
		return nil, fmt.Errorf("failed to write leftovers: %w", err)
	}
	if err := right.WriteFile(r.cfg.Path(Source2UnmatchedFile)); err != nil {
		return nil, fmt.Errorf("failed to write leftovers: %w", err)
	}

	r.logger.Info("Merge complete",
		zap.Int("direct_matches", result.Stats.DirectMatches),
		zap.Int("name_alt_matches", result.Stats.NameAltMatches),
		zap.Int("alt_name_matches", result.Stats.AltNameMatches),
		zap.Int("total_merged", result.Stats.TotalMerged),
		zap.Int("source1_unmatched", result.Stats.Source1Unmatched),
		zap.Int("source2_unmatched", result.Stats.Source2Unmatched))

	return &MergeOutcome{
		Result:      result,
		MergedPath:  mergedPath,
		Source1Rows: source1.Len(),
		Source2Rows: source2.Len(),
		StartedAt:   started,
		FinishedAt:  time.Now(),
	}, nil
}

// PromoteSingleSource copies the standardized primary source to the merged
// artifact. Used when no second source is available at merge time.
func (r *Runner) PromoteSingleSource(source1Path string) (string, error) {
	t, err := table.ReadFile(source1Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source1Path, err)
	}

	mergedPath := r.cfg.Path(MergedFile)
	if err := t.WriteFile(mergedPath); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", mergedPath, err)
	}

	r.logger.Info("No second source; using the primary source as merged output",
		zap.String("out", mergedPath),
		zap.Int("rows", t.Len()))
	return mergedPath, nil
}
