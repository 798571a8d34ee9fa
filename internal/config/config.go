// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors are wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the sqlite database location.
	DBPath string `koanf:"db_path"`

	// Scoring factor weights; expected to sum to 1.0.
	SportWeight     float64 `koanf:"sport_weight"`
	GeoWeight       float64 `koanf:"geo_weight"`
	ObjectiveWeight float64 `koanf:"objective_weight"`
	FeaturedWeight  float64 `koanf:"featured_weight"`

	// Penalties subtracted per active relaxation dimension.
	CityRelaxPenalty      float64 `koanf:"city_relax_penalty"`
	StateRelaxPenalty     float64 `koanf:"state_relax_penalty"`
	SportClusterPenalty   float64 `koanf:"sport_cluster_penalty"`
	ObjectiveRelaxPenalty float64 `koanf:"objective_relax_penalty"`

	// Teaser result limits per category, and the hard cap callers cannot
	// exceed with per-request overrides.
	TeaserMaxAthletes int `koanf:"teaser_max_athletes"`
	TeaserMaxLeagues  int `koanf:"teaser_max_leagues"`
	TeaserMaxVenues   int `koanf:"teaser_max_venues"`
	TeaserHardCap     int `koanf:"teaser_hard_cap"`

	// MinResultsPerCategory is the survivor threshold that stops relaxation.
	MinResultsPerCategory int `koanf:"min_results_per_category"`
}

// Default teaser limits.
const (
	defaultTeaserMax     = 3
	defaultTeaserHardCap = 100
)

// New creates a Config with production defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":9080",
		DBPath:                "matchdesk.db",
		SportWeight:           0.40,
		GeoWeight:             0.30,
		ObjectiveWeight:       0.20,
		FeaturedWeight:        0.10,
		CityRelaxPenalty:      0.05,
		StateRelaxPenalty:     0.10,
		SportClusterPenalty:   0.08,
		ObjectiveRelaxPenalty: 0.05,
		TeaserMaxAthletes:     defaultTeaserMax,
		TeaserMaxLeagues:      defaultTeaserMax,
		TeaserMaxVenues:       defaultTeaserMax,
		TeaserHardCap:         defaultTeaserHardCap,
		MinResultsPerCategory: 1,
	}
}
