package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/okian/scout/internal/adapters/datasource"
	app "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/config"
	"github.com/okian/scout/internal/domain/engine"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/internal/output"
	"github.com/okian/scout/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	format   string
	noColor  bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Baseball scouting grade engine",
	Long: `Scout grades every player-season on the 20-80 scouting scale against the
season's population, rolls metric grades into category and overall ratings,
and tags each player with an archetype.

Inputs are CSV datasets matched by glob patterns (batter_files, pitcher_files,
player_files). Configuration layers defaults, an optional YAML file, .env and
SCOUT_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.LoadFile(cmd.Context(), cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		// stdout is reserved for command output
		if err := logger.InitWithOptions(logger.WithWriter(os.Stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		if err := logger.SetLevelString(level); err != nil {
			logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
				logger.String("log_level", level), logger.Error(err))
			_ = logger.SetLevelString("info")
		}
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to YAML config file (default $SCOUT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// newService wires the data source, engine and store from cfg.
func newService(c *config.Config, watch bool) *app.Service {
	log := logger.Get()

	policy := scoring.PolicyAsIs
	if c.RenormalizeMissing {
		policy = scoring.PolicyRenormalize
	}
	src := datasource.NewFileSource(
		datasource.WithBatterFiles(c.BatterFiles),
		datasource.WithPitcherFiles(c.PitcherFiles),
		datasource.WithPlayerFiles(c.PlayerFiles),
		datasource.WithLogger(log),
	)
	eng := engine.New(
		engine.WithScorer(scoring.New(
			scoring.WithPolicy(policy),
			scoring.WithQualifying(c.QualifyingPA, c.QualifyingInnings),
		)),
		engine.WithWorkers(c.Workers),
		engine.WithSummaryOptions(population.SummaryOptions{
			TeamMinPA:       c.TeamMinPA,
			TeamMinInnings:  c.TeamMinInnings,
			LeaderboardSize: c.LeaderboardSize,
		}),
		engine.WithLogger(log),
	)
	return app.New(
		app.WithLogger(log.Named("service")),
		app.WithSource(src),
		app.WithEngine(eng),
		app.WithWatch(watch),
	)
}

// startService loads and grades the datasets for a one-shot command.
func startService(ctx context.Context) (*app.Service, error) {
	svc := newService(cfg, false)
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func newFormatter(cmd *cobra.Command) *output.Formatter {
	return output.NewFormatter(output.ParseFormat(format), cmd.OutOrStdout(), !color.NoColor)
}

// scopeFlags reads --role and --season; season 0 means the latest graded season.
func scopeFlags(cmd *cobra.Command, svc *app.Service) (model.Role, int, error) {
	roleName, _ := cmd.Flags().GetString("role")
	role, err := model.ParseRole(roleName)
	if err != nil {
		return "", 0, err
	}
	season, _ := cmd.Flags().GetInt("season")
	if season != 0 {
		return role, season, nil
	}
	seasons := svc.Seasons(cmd.Context())
	if len(seasons) == 0 {
		return role, 0, nil
	}
	return role, seasons[len(seasons)-1], nil
}

func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("role", "r", "batter", "Player role: batter or pitcher")
	cmd.Flags().IntP("season", "s", 0, "Season (default latest graded)")
}
