package models

import (
	"time"
)

// SurfBreak is a catalogued surf break. Rows are keyed by the (name, country)
// pair so re-imports update existing breaks instead of duplicating them.
type SurfBreak struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	Name           string    `gorm:"column:name;size:255;uniqueIndex:idx_breaks_name_country" json:"name"`
	Country        string    `gorm:"column:country;size:255;uniqueIndex:idx_breaks_name_country" json:"country"`
	AltName        string    `gorm:"column:alt_name;size:255" json:"alt_name,omitempty"`
	Link           string    `gorm:"column:link;size:512" json:"link,omitempty"`
	Region         string    `gorm:"column:region;size:255" json:"region,omitempty"`
	Type           string    `gorm:"column:type;size:64" json:"type,omitempty"`
	Rating         float64   `gorm:"column:rating" json:"rating"`
	Reliability    string    `gorm:"column:reliability;size:64" json:"reliability,omitempty"`
	SwellDirection string    `gorm:"column:swell_direction;size:16" json:"swell_direction,omitempty"`
	WindDirection  string    `gorm:"column:wind_direction;size:16" json:"wind_direction,omitempty"`
	BestMonth      string    `gorm:"column:best_month;size:64" json:"best_month,omitempty"`
	BestSeason     string    `gorm:"column:best_season;size:64" json:"best_season,omitempty"`
	Summary        string    `gorm:"column:summary;type:text" json:"summary,omitempty"`
	TimeOfYear     string    `gorm:"column:time_of_year;type:text" json:"time_of_year,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (SurfBreak) TableName() string {
	return "surf_breaks"
}

// CountryCount is the number of catalogued breaks in one country.
type CountryCount struct {
	Country string `gorm:"column:country" json:"country"`
	Breaks  int64  `gorm:"column:breaks" json:"breaks"`
}

// ListFilter narrows a catalogue listing.
type ListFilter struct {
	Country string
	Query   string
	Limit   int
	Offset  int
}
