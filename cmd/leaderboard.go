package main

import (
	"errors"

	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/output"
	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank players by overall, a category, a metric or a traditional stat",
	Example: `  scout leaderboard --field contact --limit 20
  scout leaderboard --role pitcher --season 2023 --field whiff_rate`,
	RunE: runLeaderboard,
}

func init() {
	addScopeFlags(leaderboardCmd)
	leaderboardCmd.Flags().String("field", population.FieldOverall, "Ranking field")
	leaderboardCmd.Flags().IntP("limit", "l", 10, "Number of entries")

	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, err := startService(ctx)
	if err != nil {
		return err
	}
	defer svc.Stop()

	role, season, err := scopeFlags(cmd, svc)
	if err != nil {
		return err
	}
	field, _ := cmd.Flags().GetString("field")
	limit, _ := cmd.Flags().GetInt("limit")

	formatter := newFormatter(cmd)
	entries, err := svc.Leaderboard(ctx, role, season, field, limit)
	if errors.Is(err, repository.ErrNotFound) {
		formatter.Info("no data")
		return nil
	}
	if err != nil {
		return err
	}
	return formatter.Output(output.NewLeaderboardTable(role, season, field, entries, !noColor))
}
