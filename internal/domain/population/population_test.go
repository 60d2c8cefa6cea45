package population_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func profile(code, team string, overall int, contact int, pa float64) model.PlayerGradeProfile {
	avg := 0.250 + float64(contact-50)/1000
	k := float64(100 - contact)
	return model.PlayerGradeProfile{
		PlayerCode: code,
		Name:       "Player " + code,
		Team:       team,
		Season:     2024,
		Role:       model.RoleBatter,
		Overall:    model.GradeValue{Base: overall},
		Categories: map[string]model.GradeValue{
			"contact": {Base: contact}, "game_power": {Base: 50}, "gap_power": {Base: 50},
			"discipline": {Base: 50}, "consistency": {Base: 50}, "clutch": {Base: 50},
		},
		Metrics: map[string][]model.MetricGrade{
			"contact": {
				{Key: "batting_average", Value: avg, Normalized: avg, Grade: contact, Weight: 0.45},
				{Key: "strikeout_rate", Value: k, Normalized: k, Grade: contact, Weight: 0.25},
			},
		},
		TraditionalStats: map[string]float64{"home_runs": float64(overall / 2)},
		Opportunity:      floatPtr(pa),
	}
}

func TestPercentile(t *testing.T) {
	Convey("Given a population of values", t, func() {
		all := []float64{10, 20, 20, 30, 40}

		Convey("Then the rank is inclusive", func() {
			So(population.Percentile(20, all, false), ShouldAlmostEqual, 60.0)
			So(population.Percentile(40, all, false), ShouldAlmostEqual, 100.0)
			So(population.Percentile(5, all, false), ShouldAlmostEqual, 0.0)
			So(population.Percentile(10, all, false), ShouldAlmostEqual, 20.0)
		})

		Convey("Then inverse metrics flip the rank", func() {
			So(population.Percentile(20, all, true), ShouldAlmostEqual, 40.0)
			So(population.Percentile(40, all, true), ShouldAlmostEqual, 0.0)
		})

		Convey("Then the input is not reordered", func() {
			unsorted := []float64{3, 1, 2}
			So(population.Percentile(2, unsorted, false), ShouldAlmostEqual, 200.0/3, 1e-9)
			So(unsorted, ShouldResemble, []float64{3, 1, 2})
		})

		Convey("Then an empty population yields zero", func() {
			So(population.Percentile(1, nil, false), ShouldAlmostEqual, 0.0)
		})
	})
}

func TestPercentiles(t *testing.T) {
	Convey("Given graded batters", t, func() {
		profiles := []model.PlayerGradeProfile{
			profile("a", "LG", 55, 60, 500),
			profile("b", "LG", 45, 40, 500),
			profile("c", "KT", 70, 70, 500),
			profile("d", "KT", 50, 50, 500),
		}
		// d is missing strikeout rate
		profiles[3].Metrics["contact"] = profiles[3].Metrics["contact"][:1]

		Convey("When attaching percentiles", func() {
			out := population.Percentiles(profiles, model.RoleBatter)

			Convey("Then every value lies in [0, 100] and the best player reaches 100", func() {
				for _, p := range out {
					for _, v := range p.Percentiles {
						So(v, ShouldBeBetweenOrEqual, 0.0, 100.0)
					}
				}
				So(out[2].Percentiles["overall"], ShouldEqual, 100.0)
				So(out[2].Percentiles["contact"], ShouldEqual, 100.0)
				So(out[2].Percentiles["batting_average"], ShouldEqual, 100.0)
			})

			Convey("Then inverse metrics favour low values", func() {
				// c has the lowest strikeout rate of the three reporting it
				So(out[2].Percentiles["strikeout_rate"], ShouldAlmostEqual, 66.7, 1e-9)
				So(out[1].Percentiles["strikeout_rate"], ShouldEqual, 0.0)
			})

			Convey("Then missing metrics have no percentile", func() {
				So(out[3].Percentiles, ShouldNotContainKey, "strikeout_rate")
				So(out[3].Percentiles, ShouldContainKey, "batting_average")
				So(out[3].Percentiles, ShouldNotContainKey, "walk_rate")
			})

			Convey("Then the inputs are not mutated", func() {
				for _, p := range profiles {
					So(p.Percentiles, ShouldBeNil)
				}
			})
		})
	})
}

func TestTeamAverages(t *testing.T) {
	Convey("Given batters on three teams", t, func() {
		profiles := []model.PlayerGradeProfile{
			profile("a", "LG", 60, 60, 400),
			profile("b", "LG", 50, 40, 350),
			profile("c", "KT", 70, 70, 100),
			profile("d", "SSG", 40, 40, 500),
		}
		profiles[1].Overall.Weighted = intPtr(47)
		pop := &model.SeasonPopulation{Season: 2024, Batters: profiles}

		Convey("When every player qualifies", func() {
			avg := population.TeamAverages(pop, model.RoleBatter, 0)

			Convey("Then effective grades are averaged per team", func() {
				So(avg, ShouldHaveLength, 3)
				So(avg["LG"].PlayerCount, ShouldEqual, 2)
				So(avg["LG"].Averages["overall"], ShouldEqual, 53.5)
				So(avg["LG"].Averages["contact"], ShouldEqual, 50.0)
				So(avg["LG"].Averages, ShouldContainKey, "clutch")
			})
		})

		Convey("When a minimum opportunity excludes a whole team", func() {
			avg := population.TeamAverages(pop, model.RoleBatter, 300)

			Convey("Then that team is absent rather than zero", func() {
				So(avg, ShouldNotContainKey, "KT")
				So(avg, ShouldContainKey, "SSG")
				So(avg["LG"].PlayerCount, ShouldEqual, 2)
			})
		})

		Convey("When a player has no opportunity stat", func() {
			profiles[3].Opportunity = nil
			avg := population.TeamAverages(pop, model.RoleBatter, 1)

			Convey("Then the player does not qualify", func() {
				So(avg, ShouldNotContainKey, "SSG")
			})
		})

		Convey("When the pitcher side of the population is empty", func() {
			Convey("Then no pitcher team is reported", func() {
				So(population.TeamAverages(pop, model.RolePitcher, 0), ShouldBeEmpty)
			})
		})

		Convey("When marshalling a team summary", func() {
			raw, err := json.Marshal(population.TeamSummary{PlayerCount: 2, Averages: map[string]float64{"overall": 53.5}})

			Convey("Then keys are flattened", func() {
				So(err, ShouldBeNil)
				So(string(raw), ShouldEqual, `{"avg_overall":53.5,"player_count":2}`)
			})
		})
	})
}

func TestLeaderboard(t *testing.T) {
	Convey("Given graded batters with ties", t, func() {
		profiles := []model.PlayerGradeProfile{
			profile("m", "LG", 60, 60, 500),
			profile("b", "LG", 70, 40, 500),
			profile("z", "KT", 60, 70, 500),
			profile("a", "KT", 60, 50, 500),
		}

		Convey("When ranking by overall", func() {
			board := population.Leaderboard(profiles, population.FieldOverall, 100)

			Convey("Then values descend and ties go to the lower player code", func() {
				So(types.PlayerCodes(board), ShouldResemble, []string{"b", "a", "m", "z"})
				So(board[0].Rank, ShouldEqual, 1)
				So(board[0].Value, ShouldEqual, 70.0)
				for i := 1; i < len(board); i++ {
					So(board[i].Value, ShouldBeLessThanOrEqualTo, board[i-1].Value)
				}
			})
		})

		Convey("When n is smaller than the population", func() {
			board := population.Leaderboard(profiles, "contact", 2)

			Convey("Then only the top n are returned", func() {
				So(types.PlayerCodes(board), ShouldResemble, []string{"z", "m"})
			})
		})

		Convey("When n is not positive", func() {
			So(population.Leaderboard(profiles, population.FieldOverall, 0), ShouldBeEmpty)
			So(population.Leaderboard(profiles, population.FieldOverall, -3), ShouldBeEmpty)
		})

		Convey("When some players lack the field", func() {
			profiles[0].Metrics = nil
			board := population.Leaderboard(profiles, "strikeout_rate", 10)

			Convey("Then they are excluded", func() {
				So(board, ShouldHaveLength, 3)
				So(types.PlayerCodes(board), ShouldNotContain, "m")
			})
		})

		Convey("When ranking by weighted and base overall", func() {
			profiles[1].Overall.Weighted = intPtr(52)
			eff := population.Leaderboard(profiles, population.FieldOverall, 1)
			base := population.Leaderboard(profiles, population.FieldOverallBase, 1)

			Convey("Then the effective and base grades differ", func() {
				So(eff[0].PlayerCode, ShouldEqual, "a")
				So(base[0].PlayerCode, ShouldEqual, "b")
			})
		})

		Convey("When ranking by a traditional stat", func() {
			board := population.Leaderboard(profiles, "home_runs", 1)
			So(board[0].PlayerCode, ShouldEqual, "b")
		})
	})
}

func TestValidateField(t *testing.T) {
	Convey("Given leaderboard field names", t, func() {
		So(population.ValidateField(model.RoleBatter, "overall"), ShouldBeNil)
		So(population.ValidateField(model.RoleBatter, "discipline"), ShouldBeNil)
		So(population.ValidateField(model.RoleBatter, "walk_rate"), ShouldBeNil)
		So(population.ValidateField(model.RoleBatter, "ops"), ShouldBeNil)
		So(population.ValidateField(model.RolePitcher, "stuff"), ShouldBeNil)
		So(population.ValidateField(model.RoleBatter, "contact_base"), ShouldBeNil)
		So(population.ValidateField(model.RolePitcher, "stuff_base"), ShouldBeNil)
		So(errors.Is(population.ValidateField(model.RolePitcher, "contact_base"), population.ErrUnknownField), ShouldBeTrue)
		So(errors.Is(population.ValidateField(model.RolePitcher, "ops"), population.ErrUnknownField), ShouldBeTrue)
		So(errors.Is(population.ValidateField(model.RoleBatter, "stuff"), population.ErrUnknownField), ShouldBeTrue)
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a season population", t, func() {
		pop := &model.SeasonPopulation{
			Season: 2024,
			Batters: []model.PlayerGradeProfile{
				profile("a", "LG", 60, 60, 500),
				profile("b", "KT", 70, 40, 50),
			},
		}

		Convey("When summarizing", func() {
			s := population.Summarize(pop, population.SummaryOptions{TeamMinPA: 100, LeaderboardSize: 1})

			Convey("Then every published board exists with at most n entries", func() {
				So(s.Season, ShouldEqual, 2024)
				So(s.Batters.Leaderboards, ShouldContainKey, "by_overall")
				So(s.Batters.Leaderboards, ShouldContainKey, "by_contact")
				So(s.Batters.Leaderboards, ShouldContainKey, "by_discipline")
				So(s.Batters.Leaderboards["by_overall"], ShouldHaveLength, 1)
				So(s.Batters.Leaderboards["by_overall"][0].PlayerCode, ShouldEqual, "b")
				So(s.Pitchers.Leaderboards["by_stuff"], ShouldBeEmpty)
			})

			Convey("Then team averages honour the qualifying minimum", func() {
				So(s.Role(model.RoleBatter).TeamAverages, ShouldContainKey, "LG")
				So(s.Role(model.RoleBatter).TeamAverages, ShouldNotContainKey, "KT")
				So(s.Role(model.RolePitcher).TeamAverages, ShouldBeEmpty)
			})
		})

		Convey("When opportunity weighting reorders the effective grades", func() {
			pop.Batters[1].Overall.Weighted = intPtr(52)
			pop.Batters[0].Categories["contact"] = model.GradeValue{Base: 60, Weighted: intPtr(30)}
			s := population.Summarize(pop, population.SummaryOptions{LeaderboardSize: 2})

			Convey("Then the published boards still rank on base grades", func() {
				So(types.PlayerCodes(population.Leaderboard(pop.Batters, population.FieldOverall, 2)), ShouldResemble, []string{"a", "b"})
				So(types.PlayerCodes(s.Batters.Leaderboards["by_overall"]), ShouldResemble, []string{"b", "a"})

				So(types.PlayerCodes(population.Leaderboard(pop.Batters, "contact", 2)), ShouldResemble, []string{"b", "a"})
				So(types.PlayerCodes(s.Batters.Leaderboards["by_contact"]), ShouldResemble, []string{"a", "b"})
				So(s.Batters.Leaderboards["by_contact"][0].Value, ShouldEqual, 60.0)
			})
		})
	})
}
