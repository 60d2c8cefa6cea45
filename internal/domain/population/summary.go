package population

import (
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/types"
)

// DefaultLeaderboardSize is n for summary leaderboards.
const DefaultLeaderboardSize = 100

// SummaryOptions tunes Summarize.
type SummaryOptions struct {
	TeamMinPA       float64
	TeamMinInnings  float64
	LeaderboardSize int
}

// SummaryBoards lists the leaderboards published per role. They rank on base
// grades so opportunity weighting does not reorder the published boards.
var SummaryBoards = map[model.Role]map[string]string{
	model.RoleBatter: {
		"by_overall":    FieldOverallGrade,
		"by_contact":    BaseField("contact"),
		"by_discipline": BaseField("discipline"),
	},
	model.RolePitcher: {
		"by_overall": FieldOverallGrade,
		"by_control": BaseField("control"),
		"by_stuff":   BaseField("stuff"),
	},
}

// RoleSummary is the aggregate view of one role in a season.
type RoleSummary struct {
	TeamAverages map[string]TeamSummary   `json:"team_averages"`
	Leaderboards map[string][]types.Entry `json:"leaderboards"`
}

// Summary is the aggregate view of a season.
type Summary struct {
	Season   int         `json:"season"`
	Batters  RoleSummary `json:"batters"`
	Pitchers RoleSummary `json:"pitchers"`
}

// Role returns the summary of role.
func (s *Summary) Role(role model.Role) RoleSummary {
	if role == model.RolePitcher {
		return s.Pitchers
	}
	return s.Batters
}

// Summarize computes team averages and summary leaderboards for a season.
func Summarize(pop *model.SeasonPopulation, opts SummaryOptions) Summary {
	n := opts.LeaderboardSize
	if n <= 0 {
		n = DefaultLeaderboardSize
	}
	build := func(role model.Role, minOpp float64) RoleSummary {
		profiles := pop.Profiles(role)
		boards := make(map[string][]types.Entry, len(SummaryBoards[role]))
		for name, field := range SummaryBoards[role] {
			boards[name] = Leaderboard(profiles, field, n)
		}
		return RoleSummary{
			TeamAverages: TeamAverages(pop, role, minOpp),
			Leaderboards: boards,
		}
	}
	return Summary{
		Season:   pop.Season,
		Batters:  build(model.RoleBatter, opts.TeamMinPA),
		Pitchers: build(model.RolePitcher, opts.TeamMinInnings),
	}
}
