package main

import (
	"errors"

	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/output"
	"github.com/spf13/cobra"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Compare team averages of effective grades",
	RunE:  runTeams,
}

func init() {
	addScopeFlags(teamsCmd)

	rootCmd.AddCommand(teamsCmd)
}

func runTeams(cmd *cobra.Command, _ []string) error {
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
	formatter := newFormatter(cmd)
	teams, err := svc.TeamAverages(ctx, role, season)
	if errors.Is(err, repository.ErrNotFound) {
		formatter.Info("no data")
		return nil
	}
	if err != nil {
		return err
	}
	return formatter.Output(output.NewTeamsTable(role, season, teams))
}
