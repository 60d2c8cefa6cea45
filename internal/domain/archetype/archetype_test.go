package archetype_test

import (
	"testing"

	"github.com/okian/scout/internal/domain/archetype"
	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func batter(contact, gamePower, gapPower, discipline, consistency, clutch int) archetype.Input {
	scores := map[string]int{
		"contact": contact, "game_power": gamePower, "gap_power": gapPower,
		"discipline": discipline, "consistency": consistency, "clutch": clutch,
	}
	return archetype.Input{
		Role:    model.RoleBatter,
		Scores:  scores,
		Overall: scoring.Overall(scores, scoring.BatterOverallWeights),
	}
}

func pitcher(role model.BullpenRole, control, aggression, efficiency, stuff, clutch int) archetype.Input {
	scores := map[string]int{
		"control": control, "aggression": aggression, "efficiency": efficiency,
		"stuff": stuff, "clutch": clutch,
	}
	return archetype.Input{
		Role:        model.RolePitcher,
		BullpenRole: role,
		Scores:      scores,
		Overall:     scoring.Overall(scores, scoring.PitcherOverallWeights),
	}
}

func TestBatterArchetypes(t *testing.T) {
	Convey("Given batter category scores", t, func() {
		Convey("When every skill is plus or near it", func() {
			in := batter(65, 72, 68, 61, 55, 58)

			Convey("Then the five-tool rule wins over complete slugger", func() {
				So(archetype.Classify(in), ShouldEqual, archetype.FiveToolPlayer)
			})
		})

		Convey("When each rule is the first match", func() {
			cases := []struct {
				in   archetype.Input
				want archetype.Tag
			}{
				{batter(62, 72, 50, 50, 50, 50), archetype.CompleteSlugger},
				{batter(40, 76, 50, 50, 50, 50), archetype.HomeRunKing},
				{batter(52, 66, 50, 50, 50, 50), archetype.Slugger},
				{batter(72, 50, 50, 62, 50, 50), archetype.ContactMaster},
				{batter(62, 45, 50, 72, 50, 50), archetype.TableSetter},
				{batter(45, 62, 62, 50, 50, 50), archetype.BalancedPower},
				{batter(45, 62, 50, 62, 50, 50), archetype.PowerDiscipline},
				{batter(50, 57, 50, 40, 50, 50), archetype.FreeSwinger},
				{batter(45, 62, 50, 50, 50, 50), archetype.PowerHitter},
				{batter(62, 50, 62, 50, 50, 50), archetype.LineDriveMachine},
				{batter(66, 40, 50, 50, 50, 50), archetype.ContactSpecialist},
				{batter(50, 50, 50, 66, 50, 50), archetype.PatientHitter},
				{batter(50, 50, 50, 50, 50, 66), archetype.ClutchPerformer},
				{batter(50, 50, 50, 50, 66, 50), archetype.ConsistentProducer},
				{batter(55, 55, 55, 55, 55, 55), archetype.BalancedHitter},
				{batter(55, 48, 55, 55, 55, 55), archetype.AverageHitter},
				{batter(40, 40, 40, 40, 40, 40), archetype.BelowAverage},
			}
			for _, c := range cases {
				So(archetype.Classify(c.in), ShouldEqual, c.want)
			}
		})

		Convey("When batting average is high but the contact grade lags", func() {
			in := batter(55, 40, 50, 50, 50, 50)
			in.Raw = map[string]float64{"batting_average": 0.325}

			Convey("Then the raw average marks a contact specialist", func() {
				So(archetype.Classify(in), ShouldEqual, archetype.ContactSpecialist)
			})

			Convey("Then without the raw stat it falls through to the catch-all", func() {
				in.Raw = nil
				So(in.Overall, ShouldBeLessThan, 50)
				So(archetype.Classify(in), ShouldEqual, archetype.BelowAverage)
			})
		})

		Convey("When consistency is high but the overall is low", func() {
			in := batter(40, 40, 40, 40, 70, 40)

			Convey("Then the producer rule does not apply", func() {
				So(in.Overall, ShouldBeLessThan, 50)
				So(archetype.Classify(in), ShouldEqual, archetype.BelowAverage)
			})
		})
	})
}

func TestPitcherArchetypes(t *testing.T) {
	Convey("Given pitcher category scores", t, func() {
		cases := []struct {
			in   archetype.Input
			want archetype.Tag
		}{
			{pitcher(model.BullpenStarter, 70, 65, 65, 70, 65), archetype.Ace},
			{pitcher(model.BullpenCloser, 50, 50, 50, 62, 62), archetype.LockdownCloser},
			{pitcher(model.BullpenMiddle, 50, 62, 50, 66, 50), archetype.PowerPitcher},
			{pitcher(model.BullpenSetup, 50, 50, 50, 56, 56), archetype.SetupSpecialist},
			{pitcher(model.BullpenMiddle, 50, 50, 50, 50, 66), archetype.Fireman},
			{pitcher(model.BullpenLong, 50, 50, 50, 66, 50), archetype.StrikeoutReliever},
			{pitcher(model.BullpenStarter, 66, 50, 50, 50, 50), archetype.ControlArtist},
			{pitcher(model.BullpenStarter, 35, 50, 50, 62, 50), archetype.WildThrower},
			{pitcher(model.BullpenStarter, 62, 50, 50, 45, 50), archetype.FinessePitcher},
			{pitcher(model.BullpenStarter, 50, 50, 66, 50, 50), archetype.EfficiencyExpert},
			{pitcher(model.BullpenLong, 50, 50, 56, 50, 50), archetype.LongReliever},
			{pitcher(model.BullpenUnknown, 52, 52, 52, 52, 52), archetype.BalancedPitcher},
			{pitcher(model.BullpenUnknown, 55, 45, 55, 52, 52), archetype.AveragePitcher},
			{pitcher(model.BullpenUnknown, 40, 40, 40, 40, 40), archetype.BelowAveragePitcher},
		}

		Convey("When each rule is the first match", func() {
			for _, c := range cases {
				So(archetype.Classify(c.in), ShouldEqual, c.want)
			}
		})

		Convey("When a starter is efficient", func() {
			in := pitcher(model.BullpenStarter, 50, 50, 62, 50, 50)

			Convey("Then the workhorse tag needs 100 innings", func() {
				in.Raw = map[string]float64{model.KeyInningsPitched: 99.2}
				So(archetype.Classify(in), ShouldEqual, archetype.BalancedPitcher)
				in.Raw = map[string]float64{model.KeyInningsPitched: 150.1}
				So(archetype.Classify(in), ShouldEqual, archetype.Workhorse)
			})
		})

		Convey("When a starter has closer-like scores", func() {
			in := pitcher(model.BullpenStarter, 50, 50, 50, 62, 62)

			Convey("Then reliever-only rules are skipped", func() {
				So(archetype.Classify(in), ShouldEqual, archetype.BalancedPitcher)
			})
		})
	})
}

func TestClassifyIsTotal(t *testing.T) {
	Convey("Given every score vector on a ten-point grid", t, func() {
		grid := []int{20, 30, 40, 50, 60, 70, 80}
		batterTags := map[archetype.Tag]bool{}
		for _, r := range archetype.Rules(model.RoleBatter) {
			batterTags[r.Tag] = true
		}
		pitcherTags := map[archetype.Tag]bool{}
		for _, r := range archetype.Rules(model.RolePitcher) {
			pitcherTags[r.Tag] = true
		}

		Convey("Then each batter vector gets exactly one batter tag", func() {
			bad := 0
			for _, a := range grid {
				for _, b := range grid {
					for _, c := range grid {
						for _, d := range grid {
							for _, e := range grid {
								for _, f := range grid {
									tag := archetype.Classify(batter(a, b, c, d, e, f))
									if !batterTags[tag] {
										bad++
									}
								}
							}
						}
					}
				}
			}
			So(bad, ShouldEqual, 0)
		})

		Convey("Then each pitcher vector gets a pitcher tag for every bullpen role", func() {
			bad := 0
			roles := []model.BullpenRole{model.BullpenStarter, model.BullpenCloser, model.BullpenSetup,
				model.BullpenMiddle, model.BullpenLong, model.BullpenUnknown}
			for _, role := range roles {
				for _, a := range grid {
					for _, b := range grid {
						for _, c := range grid {
							for _, d := range grid {
								for _, e := range grid {
									tag := archetype.Classify(pitcher(role, a, b, c, d, e))
									if !pitcherTags[tag] {
										bad++
									}
								}
							}
						}
					}
				}
			}
			So(bad, ShouldEqual, 0)
		})
	})
}

func TestRuleLists(t *testing.T) {
	Convey("Given the rule lists", t, func() {
		Convey("Then the sizes and catch-alls are fixed", func() {
			b := archetype.Rules(model.RoleBatter)
			p := archetype.Rules(model.RolePitcher)
			So(b, ShouldHaveLength, 18)
			So(p, ShouldHaveLength, 15)
			So(b[0].Tag, ShouldEqual, archetype.FiveToolPlayer)
			So(b[len(b)-1].Tag, ShouldEqual, archetype.BelowAverage)
			So(p[len(p)-1].Tag, ShouldEqual, archetype.BelowAveragePitcher)
			So(b[len(b)-1].Match(archetype.Input{}), ShouldBeTrue)
			So(p[len(p)-1].Match(archetype.Input{}), ShouldBeTrue)
		})

		Convey("Then every tag has a display name", func() {
			for _, role := range model.Roles {
				for _, r := range archetype.Rules(role) {
					info := archetype.Describe(r.Tag)
					So(info.Name, ShouldNotEqual, string(r.Tag))
					So(info.Description, ShouldNotBeEmpty)
				}
			}
			So(archetype.Describe("MYSTERY").Name, ShouldEqual, "MYSTERY")
		})

		Convey("Then classifier inputs cover the category keys", func() {
			in := batter(50, 50, 50, 50, 50, 50)
			for _, k := range metric.CategoryKeys(model.RoleBatter) {
				So(in.Scores, ShouldContainKey, k)
			}
			So(in.Score("unknown"), ShouldEqual, 50)
		})
	})
}
