package model_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	model "github.com/okian/scout/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func TestRoles(t *testing.T) {
	convey.Convey("Given role strings", t, func() {
		convey.Convey("When parsing known roles", func() {
			b, errB := model.ParseRole("Batters")
			p, errP := model.ParseRole(" pitcher ")

			convey.Convey("Then they map case-insensitively", func() {
				convey.So(errB, convey.ShouldBeNil)
				convey.So(errP, convey.ShouldBeNil)
				convey.So(b, convey.ShouldEqual, model.RoleBatter)
				convey.So(p, convey.ShouldEqual, model.RolePitcher)
			})
		})

		convey.Convey("When parsing an unknown role", func() {
			_, err := model.ParseRole("catcher")

			convey.Convey("Then ErrUnknownRole is returned", func() {
				convey.So(errors.Is(err, model.ErrUnknownRole), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When parsing bullpen roles", func() {
			convey.So(model.ParseBullpenRole("STARTER"), convey.ShouldEqual, model.BullpenStarter)
			convey.So(model.ParseBullpenRole("closer"), convey.ShouldEqual, model.BullpenCloser)
			convey.So(model.ParseBullpenRole("Setup"), convey.ShouldEqual, model.BullpenSetup)
			convey.So(model.ParseBullpenRole("middle"), convey.ShouldEqual, model.BullpenMiddle)
			convey.So(model.ParseBullpenRole("Long"), convey.ShouldEqual, model.BullpenLong)
			convey.So(model.ParseBullpenRole("opener"), convey.ShouldEqual, model.BullpenUnknown)
			convey.So(model.ParseBullpenRole(""), convey.ShouldEqual, model.BullpenUnknown)
		})

		convey.Convey("Then only bullpen arms are relievers", func() {
			convey.So(model.BullpenStarter.IsReliever(), convey.ShouldBeFalse)
			convey.So(model.BullpenUnknown.IsReliever(), convey.ShouldBeFalse)
			convey.So(model.BullpenLong.IsReliever(), convey.ShouldBeTrue)
			convey.So(model.BullpenCloser.IsReliever(), convey.ShouldBeTrue)
		})
	})
}

func TestRawStatRecord(t *testing.T) {
	convey.Convey("Given a raw stat record", t, func() {
		rec := model.RawStatRecord{
			PlayerCode: "b1",
			Role:       model.RoleBatter,
			Values: map[string]float64{
				"batting_average":         0.300,
				model.KeyPlateAppearances: 450,
				"walk_rate":               math.NaN(),
			},
		}

		convey.Convey("When reading values", func() {
			avg, okAvg := rec.Value("batting_average")
			_, okMissing := rec.Value("home_run_rate")
			_, okNaN := rec.Value("walk_rate")

			convey.Convey("Then absent and NaN values are missing", func() {
				convey.So(okAvg, convey.ShouldBeTrue)
				convey.So(avg, convey.ShouldEqual, 0.300)
				convey.So(okMissing, convey.ShouldBeFalse)
				convey.So(okNaN, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When reading batter opportunity", func() {
			opp, ok := rec.Opportunity()

			convey.Convey("Then plate appearances are used", func() {
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(opp, convey.ShouldEqual, 450.0)
			})
		})

		convey.Convey("When reading pitcher opportunity", func() {
			p := model.RawStatRecord{Role: model.RolePitcher, Values: map[string]float64{model.KeyInningsPitched: 45.2}}
			opp, ok := p.Opportunity()

			convey.Convey("Then innings notation is converted to thirds", func() {
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(opp, convey.ShouldAlmostEqual, 45+2.0/3, 1e-9)
			})
		})

		convey.Convey("When the opportunity stat is absent", func() {
			p := model.RawStatRecord{Role: model.RolePitcher, Values: map[string]float64{}}
			_, ok := p.Opportunity()

			convey.Convey("Then it is reported missing", func() {
				convey.So(ok, convey.ShouldBeFalse)
			})
		})
	})
}

func TestInnings(t *testing.T) {
	convey.Convey("Given innings in baseball notation", t, func() {
		convey.So(model.Innings(100), convey.ShouldEqual, 100.0)
		convey.So(model.Innings(12.1), convey.ShouldAlmostEqual, 12+1.0/3, 1e-9)
		convey.So(model.Innings(0.2), convey.ShouldAlmostEqual, 2.0/3, 1e-9)
		convey.So(model.Innings(7.5), convey.ShouldEqual, 7.5)
	})
}

func TestGradeValue(t *testing.T) {
	convey.Convey("Given two-tier grade values", t, func() {
		convey.Convey("When no weighted grade exists", func() {
			gv := model.NewGradeValue(62, nil)

			convey.Convey("Then the base grade is used", func() {
				convey.So(gv.Value(), convey.ShouldEqual, 62)
				convey.So(gv.Weighted, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a weighted grade exists", func() {
			w := 55
			gv := model.NewGradeValue(62, &w)
			w = 20

			convey.Convey("Then the weighted grade wins and is copied", func() {
				convey.So(gv.Value(), convey.ShouldEqual, 55)
			})
		})
	})
}

func TestProfileJSON(t *testing.T) {
	convey.Convey("Given a graded profile", t, func() {
		p := model.PlayerGradeProfile{
			PlayerCode:  "p1",
			Name:        "Kim",
			Team:        "LG",
			Season:      2024,
			Role:        model.RolePitcher,
			BullpenRole: model.BullpenCloser,
			Overall:     model.GradeValue{Base: 61, Weighted: intPtr(57)},
			Categories: map[string]model.GradeValue{
				"control": {Base: 60, Weighted: intPtr(56)},
				"stuff":   {Base: 70},
			},
			Archetype:        "LOCKDOWN_CLOSER",
			TraditionalStats: map[string]float64{"total_games": 60},
			Metrics: map[string][]model.MetricGrade{
				"stuff": {{Key: "whiff_rate", Name: "Whiff Rate", Value: 31.5, Grade: 68, Weight: 0.3}},
			},
		}

		convey.Convey("When marshalling", func() {
			raw, err := json.Marshal(p)
			convey.So(err, convey.ShouldBeNil)
			var out map[string]any
			convey.So(json.Unmarshal(raw, &out), convey.ShouldBeNil)

			convey.Convey("Then the boundary shape is produced", func() {
				convey.So(out["overall_grade"], convey.ShouldEqual, 61.0)
				convey.So(out["overall_grade_weighted"], convey.ShouldEqual, 57.0)
				convey.So(out["pitcher_role"], convey.ShouldEqual, "Closer")
				scores := out["category_scores"].(map[string]any)
				convey.So(scores["control"], convey.ShouldEqual, 56.0)
				convey.So(scores["stuff"], convey.ShouldEqual, 70.0)
				convey.So(out, convey.ShouldNotContainKey, "percentiles")
			})
		})

		convey.Convey("When attaching percentiles", func() {
			q := p.WithPercentiles(map[string]float64{"overall": 90})

			convey.Convey("Then the original is untouched", func() {
				convey.So(p.Percentiles, convey.ShouldBeNil)
				convey.So(q.Percentiles["overall"], convey.ShouldEqual, 90.0)
			})
		})

		convey.Convey("When looking up a metric", func() {
			m, ok := p.Metric("whiff_rate")
			_, missing := p.Metric("avg_fastball_velocity")

			convey.So(ok, convey.ShouldBeTrue)
			convey.So(m.Grade, convey.ShouldEqual, 68)
			convey.So(missing, convey.ShouldBeFalse)
		})
	})
}

func TestSeasonPopulation(t *testing.T) {
	convey.Convey("Given a season population", t, func() {
		pop := model.SeasonPopulation{
			Season: 2024,
			Batters: []model.PlayerGradeProfile{
				{PlayerCode: "a", Team: "LG"},
				{PlayerCode: "b", Team: "KT"},
				{PlayerCode: "c", Team: "LG"},
				{PlayerCode: "d"},
			},
		}

		convey.Convey("When grouping by team", func() {
			byTeam := pop.ByTeam(model.RoleBatter)

			convey.Convey("Then players are partitioned in order without the blank team", func() {
				convey.So(byTeam, convey.ShouldHaveLength, 2)
				convey.So(byTeam["LG"][0].PlayerCode, convey.ShouldEqual, "a")
				convey.So(byTeam["LG"][1].PlayerCode, convey.ShouldEqual, "c")
				convey.So(pop.ByTeam(model.RolePitcher), convey.ShouldBeEmpty)
			})
		})
	})
}

func TestPlayerInfoHand(t *testing.T) {
	convey.Convey("Given player handedness", t, func() {
		convey.So(model.PlayerInfo{Throws: "r", Bats: "L"}.Hand(), convey.ShouldEqual, "R/L")
		convey.So(model.PlayerInfo{Throws: "R"}.Hand(), convey.ShouldEqual, "")
	})
}
