package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MATCHDESK_CONFIG is set
//  3. env (prefix MATCHDESK_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MATCHDESK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MATCHDESK_ADDR, MATCHDESK_SPORT_WEIGHT, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("MATCHDESK_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "matchdesk_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DBPath == "":
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	case c.SportWeight < 0 || c.GeoWeight < 0 || c.ObjectiveWeight < 0 || c.FeaturedWeight < 0:
		return fmt.Errorf("%w: weights must not be negative", ErrInvalidConfig)
	case c.SportWeight+c.GeoWeight+c.ObjectiveWeight+c.FeaturedWeight == 0:
		return fmt.Errorf("%w: at least one weight must be positive", ErrInvalidConfig)
	case c.TeaserMaxAthletes < 1 || c.TeaserMaxLeagues < 1 || c.TeaserMaxVenues < 1:
		return fmt.Errorf("%w: teaser limits must be positive", ErrInvalidConfig)
	case c.TeaserHardCap < 1:
		return fmt.Errorf("%w: teaser_hard_cap must be positive", ErrInvalidConfig)
	case c.MinResultsPerCategory < 1:
		return fmt.Errorf("%w: min_results_per_category must be positive", ErrInvalidConfig)
	}
	return nil
}
