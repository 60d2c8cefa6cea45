package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/output"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Show one player's graded profile",
	Example: `  scout grade --player 76232
  scout grade --role pitcher --season 2024 --name "won tae"`,
	RunE: runGrade,
}

func init() {
	addScopeFlags(gradeCmd)
	gradeCmd.Flags().StringP("player", "p", "", "Player code")
	gradeCmd.Flags().StringP("name", "n", "", "Player name (fuzzy; best match wins)")

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, _ []string) error {
	code, _ := cmd.Flags().GetString("player")
	name, _ := cmd.Flags().GetString("name")
	code, name = strings.TrimSpace(code), strings.TrimSpace(name)
	if (code == "") == (name == "") {
		return errors.New("exactly one of --player or --name is required")
	}

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

	if code == "" {
		hits, err := svc.Search(ctx, role, season, name, 1)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if len(hits) == 0 {
			formatter.Info("no data")
			return nil
		}
		code = hits[0].PlayerCode
	}

	profile, err := svc.Profile(ctx, role, season, code)
	if errors.Is(err, repository.ErrNotFound) {
		formatter.Info("no data")
		return nil
	}
	if err != nil {
		return fmt.Errorf("grade %s: %w", code, err)
	}
	return formatter.Output(&output.ProfileView{Profile: profile})
}
