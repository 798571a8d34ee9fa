package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given a fresh config", t, func() {
		cfg := New()

		Convey("Then scoring weights sum to 1.0", func() {
			So(cfg.SportWeight+cfg.GeoWeight+cfg.ObjectiveWeight+cfg.FeaturedWeight, ShouldAlmostEqual, 1.0)
			So(cfg.SportWeight, ShouldEqual, 0.40)
			So(cfg.GeoWeight, ShouldEqual, 0.30)
			So(cfg.ObjectiveWeight, ShouldEqual, 0.20)
			So(cfg.FeaturedWeight, ShouldEqual, 0.10)
		})

		Convey("And serving and storage defaults are set", func() {
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.DBPath, ShouldEqual, "matchdesk.db")
			So(cfg.LogLevel, ShouldEqual, "info")
		})

		Convey("And teaser sizing defaults are sane", func() {
			So(cfg.TeaserMaxAthletes, ShouldEqual, 3)
			So(cfg.TeaserMaxLeagues, ShouldEqual, 3)
			So(cfg.TeaserMaxVenues, ShouldEqual, 3)
			So(cfg.TeaserHardCap, ShouldEqual, 100)
			So(cfg.MinResultsPerCategory, ShouldEqual, 1)
		})

		Convey("And the defaults validate", func() {
			So(cfg.validate(), ShouldBeNil)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		ctx := context.Background()
		os.Unsetenv("MATCHDESK_CONFIG")

		Convey("When nothing overrides the defaults", func() {
			cfg, err := Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
		})

		Convey("When environment variables override defaults", func() {
			t.Setenv("MATCHDESK_ADDR", ":7070")
			t.Setenv("MATCHDESK_LOG_LEVEL", "debug")
			t.Setenv("MATCHDESK_TEASER_MAX_ATHLETES", "5")

			cfg, err := Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.TeaserMaxAthletes, ShouldEqual, 5)

			Convey("And untouched fields keep their defaults", func() {
				So(cfg.SportWeight, ShouldEqual, 0.40)
				So(cfg.DBPath, ShouldEqual, "matchdesk.db")
			})
		})

		Convey("When a YAML file is layered under the environment", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			yaml := "addr: \":6060\"\nsport_weight: 0.5\ngeo_weight: 0.5\nobjective_weight: 0\nfeatured_weight: 0\n"
			So(os.WriteFile(path, []byte(yaml), 0o644), ShouldBeNil)
			t.Setenv("MATCHDESK_CONFIG", path)
			t.Setenv("MATCHDESK_ADDR", ":7070")

			cfg, err := Load(ctx)
			So(err, ShouldBeNil)

			Convey("Then env wins over file, file wins over defaults", func() {
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.SportWeight, ShouldEqual, 0.5)
				So(cfg.ObjectiveWeight, ShouldEqual, 0)
			})
		})

		Convey("When the config file does not exist", func() {
			t.Setenv("MATCHDESK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			_, err := Load(ctx)
			So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given configs with single invalid fields", t, func() {
		cases := []struct {
			name   string
			mutate func(*Config)
		}{
			{"empty addr", func(c *Config) { c.Addr = "" }},
			{"empty db path", func(c *Config) { c.DBPath = "" }},
			{"negative weight", func(c *Config) { c.GeoWeight = -0.1 }},
			{"all-zero weights", func(c *Config) {
				c.SportWeight, c.GeoWeight, c.ObjectiveWeight, c.FeaturedWeight = 0, 0, 0, 0
			}},
			{"zero teaser limit", func(c *Config) { c.TeaserMaxVenues = 0 }},
			{"zero hard cap", func(c *Config) { c.TeaserHardCap = 0 }},
			{"zero min results", func(c *Config) { c.MinResultsPerCategory = 0 }},
		}

		for _, tc := range cases {
			Convey("Then "+tc.name+" is rejected", func() {
				cfg := New()
				tc.mutate(cfg)
				So(errors.Is(cfg.validate(), ErrInvalidConfig), ShouldBeTrue)
			})
		}
	})
}
