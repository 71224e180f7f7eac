package scrape

// Config holds configuration for the surf break scraper.
type Config struct {
	// BaseURL is the root of the surf forecast site (scheme and host, no
	// trailing slash). The scraper refuses to run without it.
	BaseURL string `mapstructure:"base_url" default:""`
	// Pages is the number of listing pages to walk.
	Pages int `mapstructure:"pages" default:"27"`
	// RequestsPerSecond caps the request rate against the source site.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"2"`
	// Concurrency is the number of detail pages fetched in parallel.
	Concurrency int `mapstructure:"concurrency" default:"4"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"surf-atlas/1.0"`
}
