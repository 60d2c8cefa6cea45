// Package scoring combines metric grades into category scores and an overall grade.
package scoring

import (
	"math"
	"sort"

	"github.com/okian/scout/internal/domain/grading"
	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
)

// Default scoring configuration constants.
const (
	DefaultQualifyingPA      = 300
	DefaultQualifyingInnings = 60
)

// Policy selects how a category handles missing metrics.
type Policy int

const (
	// PolicyAsIs sums weight*grade over present metrics with the table weights unchanged.
	PolicyAsIs Policy = iota
	// PolicyRenormalize divides by the sum of present weights.
	PolicyRenormalize
)

func (p Policy) String() string {
	if p == PolicyRenormalize {
		return "renormalize"
	}
	return "as_is"
}

// Overall category weights per role.
var (
	BatterOverallWeights = map[string]float64{
		"contact":     0.25,
		"game_power":  0.20,
		"gap_power":   0.15,
		"discipline":  0.20,
		"consistency": 0.10,
		"clutch":      0.10,
	}
	PitcherOverallWeights = map[string]float64{
		"control":    0.25,
		"aggression": 0.15,
		"efficiency": 0.15,
		"stuff":      0.30,
		"clutch":     0.15,
	}
)

// WeightedGrade is one present metric grade and its table weight.
type WeightedGrade struct {
	Grade  int
	Weight float64
}

// CategoryScore combines present metric grades. An empty category scores 50.
func CategoryScore(grades []WeightedGrade, policy Policy) int {
	if len(grades) == 0 {
		return grading.NeutralGrade
	}
	var sum, weights float64
	for _, g := range grades {
		sum += g.Weight * float64(g.Grade)
		weights += g.Weight
	}
	if policy == PolicyRenormalize {
		if weights <= 0 {
			return grading.NeutralGrade
		}
		sum /= weights
	}
	return grading.Clamp(sum)
}

// OpportunityFactor is min(1, opp/threshold); 1 when threshold is not positive.
func OpportunityFactor(opp, threshold float64) float64 {
	if threshold <= 0 {
		return 1
	}
	if opp <= 0 {
		return 0
	}
	return math.Min(1, opp/threshold)
}

// Weighted pulls raw toward 50 in proportion to the opportunity shortfall.
func Weighted(raw int, factor float64) int {
	return grading.Clamp(grading.NeutralGrade + float64(raw-grading.NeutralGrade)*factor)
}

// Overall is the weighted mean of scores over the categories in weights.
// Categories absent from scores are skipped. Terms are summed in key order so
// the result does not depend on map iteration.
func Overall(scores map[string]int, weights map[string]float64) int {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sum, total float64
	for _, k := range keys {
		s, ok := scores[k]
		if !ok {
			continue
		}
		w := weights[k]
		sum += w * float64(s)
		total += w
	}
	if total <= 0 {
		return grading.NeutralGrade
	}
	return grading.Clamp(sum / total)
}

// Result is the scored output for one record.
type Result struct {
	Categories  map[string]model.GradeValue
	Overall     model.GradeValue
	Metrics     map[string][]model.MetricGrade
	Opportunity *float64
	Factor      float64
}

// Scorer grades records against a season baseline.
type Scorer struct {
	policy            Policy
	qualifyingPA      float64
	qualifyingInnings float64
	overallWeights    map[model.Role]map[string]float64
}

// New creates a Scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		policy:            PolicyAsIs,
		qualifyingPA:      DefaultQualifyingPA,
		qualifyingInnings: DefaultQualifyingInnings,
		overallWeights: map[model.Role]map[string]float64{
			model.RoleBatter:  BatterOverallWeights,
			model.RolePitcher: PitcherOverallWeights,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Policy returns the missing-metric policy in use.
func (s *Scorer) Policy() Policy { return s.policy }

// Threshold returns the qualifying opportunity for role.
func (s *Scorer) Threshold(role model.Role) float64 {
	if role == model.RolePitcher {
		return s.qualifyingInnings
	}
	return s.qualifyingPA
}

// Score grades every present metric of rec, aggregates categories and the overall
// grade, and applies opportunity weighting when the opportunity stat is present.
func (s *Scorer) Score(rec *model.RawStatRecord, baseline *grading.Baseline) Result {
	cats := metric.Categories(rec.Role)
	res := Result{
		Categories: make(map[string]model.GradeValue, len(cats)),
		Metrics:    make(map[string][]model.MetricGrade, len(cats)),
		Factor:     1,
	}

	opp, hasOpp := rec.Opportunity()
	if hasOpp {
		res.Opportunity = &opp
		res.Factor = OpportunityFactor(opp, s.Threshold(rec.Role))
	}

	base := make(map[string]int, len(cats))
	weighted := make(map[string]int, len(cats))
	for _, cat := range cats {
		var grades []WeightedGrade
		var graded []model.MetricGrade
		for _, def := range cat.Metrics {
			raw, ok := rec.Value(def.Key)
			if !ok {
				continue
			}
			norm, g := baseline.GradeMetric(def, raw)
			grades = append(grades, WeightedGrade{Grade: g, Weight: def.Weight})
			graded = append(graded, model.MetricGrade{
				Key:        def.Key,
				Name:       def.Name,
				Value:      raw,
				Normalized: norm,
				Grade:      g,
				Weight:     def.Weight,
			})
		}
		score := CategoryScore(grades, s.policy)
		base[cat.Key] = score
		var w *int
		if hasOpp {
			v := Weighted(score, res.Factor)
			weighted[cat.Key] = v
			w = &v
		}
		res.Categories[cat.Key] = model.NewGradeValue(score, w)
		if len(graded) > 0 {
			res.Metrics[cat.Key] = graded
		}
	}

	weights := s.overallWeights[rec.Role]
	var overall *int
	if hasOpp {
		v := Overall(weighted, weights)
		overall = &v
	}
	res.Overall = model.NewGradeValue(Overall(base, weights), overall)
	return res
}
