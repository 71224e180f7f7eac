package models

import (
	"time"
)

// RunReport records one reconciliation run: how many rows each source
// carried, how the three merge passes split the matches, and where the
// merged artifact was written.
type RunReport struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	StartedAt  time.Time `gorm:"column:started_at" json:"started_at"`
	FinishedAt time.Time `gorm:"column:finished_at" json:"finished_at"`

	Source1Rows int `gorm:"column:source1_rows" json:"source1_rows"`
	Source2Rows int `gorm:"column:source2_rows" json:"source2_rows"`

	DirectMatches    int `gorm:"column:direct_matches" json:"direct_matches"`
	NameAltMatches   int `gorm:"column:name_alt_matches" json:"name_alt_matches"`
	AltNameMatches   int `gorm:"column:alt_name_matches" json:"alt_name_matches"`
	TotalMerged      int `gorm:"column:total_merged" json:"total_merged"`
	Source1Unmatched int `gorm:"column:source1_unmatched" json:"source1_unmatched"`
	Source2Unmatched int `gorm:"column:source2_unmatched" json:"source2_unmatched"`

	MergedPath string `gorm:"column:merged_path;size:512" json:"merged_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (RunReport) TableName() string {
	return "run_reports"
}

// Duration is the wall-clock time the run took.
func (r RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
