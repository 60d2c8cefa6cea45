// Package population derives percentiles, team averages and leaderboards from
// a completed season of graded profiles.
package population

import (
	"math"
	"sort"

	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
	"gonum.org/v1/gonum/stat"
)

// OverallKey is the percentile and leaderboard key of the overall grade.
const OverallKey = "overall"

// Percentile returns the inclusive rank of value in all as 0-100:
// the share of values <= value. Inverse metrics report 100 - p.
// An empty population yields 0.
func Percentile(value float64, all []float64, inverse bool) float64 {
	if len(all) == 0 {
		return 0
	}
	sorted := append([]float64(nil), all...)
	sort.Float64s(sorted)
	return percentileSorted(value, sorted, inverse)
}

func percentileSorted(value float64, sorted []float64, inverse bool) float64 {
	if len(sorted) == 0 || math.IsNaN(value) {
		return 0
	}
	p := 100 * stat.CDF(value, stat.Empirical, sorted, nil)
	if inverse {
		p = 100 - p
	}
	return math.Max(0, math.Min(100, p))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percentiles returns copies of profiles with percentile maps attached for
// every metric, every category and the overall grade. Missing values yield no entry.
// Values are rounded to one decimal.
func Percentiles(profiles []model.PlayerGradeProfile, role model.Role) []model.PlayerGradeProfile {
	defs := metric.Definitions(role)
	cats := metric.CategoryKeys(role)

	metricPop := make(map[string][]float64, len(defs))
	catPop := make(map[string][]float64, len(cats))
	var overallPop []float64
	for i := range profiles {
		p := &profiles[i]
		for _, list := range p.Metrics {
			for _, m := range list {
				metricPop[m.Key] = append(metricPop[m.Key], m.Normalized)
			}
		}
		for _, c := range cats {
			if v, ok := p.CategoryValue(c); ok {
				catPop[c] = append(catPop[c], float64(v))
			}
		}
		overallPop = append(overallPop, float64(p.Overall.Value()))
	}
	for _, v := range metricPop {
		sort.Float64s(v)
	}
	for _, v := range catPop {
		sort.Float64s(v)
	}
	sort.Float64s(overallPop)

	out := make([]model.PlayerGradeProfile, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		pct := make(map[string]float64, len(defs)+len(cats)+1)
		for _, def := range defs {
			m, ok := p.Metric(def.Key)
			if !ok {
				continue
			}
			pct[def.Key] = round1(percentileSorted(m.Normalized, metricPop[def.Key], def.Inverse))
		}
		for _, c := range cats {
			if v, ok := p.CategoryValue(c); ok {
				pct[c] = round1(percentileSorted(float64(v), catPop[c], false))
			}
		}
		pct[OverallKey] = round1(percentileSorted(float64(p.Overall.Value()), overallPop, false))
		out[i] = p.WithPercentiles(pct)
	}
	return out
}
