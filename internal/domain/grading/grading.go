// Package grading maps normalized metric values onto the 20-80 scouting scale.
package grading

import (
	"math"

	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
	"gonum.org/v1/gonum/stat"
)

// Scale bounds.
const (
	MinGrade     = 20
	MaxGrade     = 80
	NeutralGrade = 50
	gradePerSD   = 10
)

// Distribution summarizes one metric over a season population.
type Distribution struct {
	N      int
	Mean   float64
	StdDev float64
}

// NewDistribution computes mean and sample standard deviation of values.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	mean, sd := stat.MeanStdDev(values, nil)
	return Distribution{N: len(values), Mean: mean, StdDev: sd}
}

// Degenerate reports whether grades against d fall back to neutral.
func (d Distribution) Degenerate() bool {
	return d.N < 2 || d.StdDev == 0 || math.IsNaN(d.StdDev) || math.IsInf(d.StdDev, 0)
}

// Grade returns round(50 + 10z) clamped to [20, 80], with z negated for
// inverse metrics. Degenerate distributions yield 50.
func Grade(value float64, d Distribution, inverse bool) int {
	if d.Degenerate() || math.IsNaN(value) {
		return NeutralGrade
	}
	z := (value - d.Mean) / d.StdDev
	if inverse {
		z = -z
	}
	return Clamp(math.Round(NeutralGrade + gradePerSD*z))
}

// Clamp rounds v and bounds it to the grade scale.
func Clamp(v float64) int {
	if math.IsNaN(v) {
		return NeutralGrade
	}
	r := int(math.Round(v))
	switch {
	case r < MinGrade:
		return MinGrade
	case r > MaxGrade:
		return MaxGrade
	default:
		return r
	}
}

// Baseline holds per-metric distributions for one (season, role).
// It is read-only after construction.
type Baseline struct {
	Role  model.Role
	dists map[string]Distribution
}

// BuildBaseline computes distributions over the normalized, non-missing
// values of every metric of role across records. Records of the other role are ignored.
func BuildBaseline(role model.Role, records []model.RawStatRecord) *Baseline {
	defs := metric.Definitions(role)
	values := make(map[string][]float64, len(defs))
	for i := range records {
		if records[i].Role != role {
			continue
		}
		for _, def := range defs {
			v, ok := records[i].Value(def.Key)
			if !ok {
				continue
			}
			values[def.Key] = append(values[def.Key], metric.Normalize(def, v))
		}
	}
	b := &Baseline{Role: role, dists: make(map[string]Distribution, len(defs))}
	for _, def := range defs {
		b.dists[def.Key] = NewDistribution(values[def.Key])
	}
	return b
}

// Distribution returns the distribution of key; the zero value when unknown.
func (b *Baseline) Distribution(key string) Distribution {
	if b == nil {
		return Distribution{}
	}
	return b.dists[key]
}

// Degenerate lists metric keys whose distributions fall back to neutral, in table order.
func (b *Baseline) Degenerate() []string {
	var out []string
	for _, def := range metric.Definitions(b.Role) {
		if b.dists[def.Key].Degenerate() {
			out = append(out, def.Key)
		}
	}
	return out
}

// GradeMetric normalizes raw and grades it against the baseline.
func (b *Baseline) GradeMetric(def metric.Definition, raw float64) (normalized float64, grade int) {
	normalized = metric.Normalize(def, raw)
	return normalized, Grade(normalized, b.Distribution(def.Key), def.Inverse)
}
