// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - Provide New(ctx) to build a Config with defaults.
//   - Loading layers defaults, an optional YAML file, an optional .env file and
//     SCOUT_* environment variables, in that order.
//   - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address for `scout serve`, e.g. ":8080".
	Addr string `koanf:"addr"`

	// BatterFiles, PitcherFiles and PlayerFiles are doublestar globs for the
	// input datasets. PlayerFiles may match nothing.
	BatterFiles  string `koanf:"batter_files"`
	PitcherFiles string `koanf:"pitcher_files"`
	PlayerFiles  string `koanf:"player_files"`

	// Workers bounds the goroutines used to grade players within a season.
	Workers int `koanf:"workers"`

	// QualifyingPA and QualifyingInnings are the opportunity thresholds below
	// which category scores are pulled toward 50.
	QualifyingPA      float64 `koanf:"qualifying_pa"`
	QualifyingInnings float64 `koanf:"qualifying_innings"`

	// TeamMinPA and TeamMinInnings gate which players count toward team averages.
	TeamMinPA      float64 `koanf:"team_min_pa"`
	TeamMinInnings float64 `koanf:"team_min_innings"`

	// LeaderboardSize is n for the exported leaderboards.
	LeaderboardSize int `koanf:"leaderboard_size"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// RenormalizeMissing divides category scores by the weight of the metrics
	// actually present instead of using the category weights as-is.
	RenormalizeMissing bool `koanf:"renormalize_missing"`

	// OutputDir and Compress control `scout export`.
	OutputDir string `koanf:"output_dir"`
	Compress  bool   `koanf:"compress"`

	// Watch reloads the datasets when their files change while serving.
	Watch bool `koanf:"watch"`
}

// New creates a Config populated with defaults. Context is accepted first to
// satisfy the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		BatterFiles:         "data/batter_kpi*.csv",
		PitcherFiles:        "data/pitcher_kpi*.csv",
		PlayerFiles:         "data/players*.csv",
		Workers:             runtime.NumCPU() * 2,
		QualifyingPA:        300,
		QualifyingInnings:   60,
		TeamMinPA:           0,
		TeamMinInnings:      0,
		LeaderboardSize:     100,
		MaxLeaderboardLimit: 500,
		RenormalizeMissing:  false,
		OutputDir:           "export",
		Compress:            false,
		Watch:               false,
	}
}
