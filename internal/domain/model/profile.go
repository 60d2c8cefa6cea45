package model

// GradeValue holds a base grade and, when the opportunity stat was present,
// an opportunity-weighted grade that takes precedence.
type GradeValue struct {
	Weighted *int `json:"weighted,omitempty"`
	Base     int  `json:"base"`
}

// NewGradeValue builds a GradeValue with an optional weighted grade.
func NewGradeValue(base int, weighted *int) GradeValue {
	gv := GradeValue{Base: base}
	if weighted != nil {
		w := *weighted
		gv.Weighted = &w
	}
	return gv
}

// Value returns the weighted grade when present, else the base grade.
func (g GradeValue) Value() int {
	if g.Weighted != nil {
		return *g.Weighted
	}
	return g.Base
}

// MetricGrade is one graded metric. Value is the value as read from the
// input; Normalized is the value on the grading scale (ratios ×100).
type MetricGrade struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Normalized float64 `json:"-"`
	Grade      int     `json:"grade"`
	Weight     float64 `json:"weight"`
}

// PlayerGradeProfile is the fully graded output for one (player, season).
// Profiles are never mutated after construction; percentiles are attached to a copy.
type PlayerGradeProfile struct {
	PlayerCode       string                   `json:"player_code"`
	Name             string                   `json:"name"`
	Team             string                   `json:"team"`
	Season           int                      `json:"season"`
	Role             Role                     `json:"role"`
	BullpenRole      BullpenRole              `json:"pitcher_role,omitempty"`
	Position         string                   `json:"position,omitempty"`
	Overall          GradeValue               `json:"-"`
	Categories       map[string]GradeValue    `json:"-"`
	Archetype        string                   `json:"archetype"`
	TraditionalStats map[string]float64       `json:"traditional_stats"`
	Metrics          map[string][]MetricGrade `json:"metrics"`
	Percentiles      map[string]float64       `json:"percentiles,omitempty"`
	Strengths        []string                 `json:"strengths"`
	Weaknesses       []string                 `json:"weaknesses"`
	Opportunity      *float64                 `json:"-"`
}

// CategoryValue returns the effective grade for category.
func (p *PlayerGradeProfile) CategoryValue(category string) (int, bool) {
	gv, ok := p.Categories[category]
	if !ok {
		return 0, false
	}
	return gv.Value(), true
}

// EffectiveCategories returns category → effective grade.
func (p *PlayerGradeProfile) EffectiveCategories() map[string]int {
	out := make(map[string]int, len(p.Categories))
	for k, gv := range p.Categories {
		out[k] = gv.Value()
	}
	return out
}

// Metric returns the graded metric for key across all categories.
func (p *PlayerGradeProfile) Metric(key string) (MetricGrade, bool) {
	for _, list := range p.Metrics {
		for _, m := range list {
			if m.Key == key {
				return m, true
			}
		}
	}
	return MetricGrade{}, false
}

// WithPercentiles returns a copy of p carrying pct.
func (p PlayerGradeProfile) WithPercentiles(pct map[string]float64) PlayerGradeProfile {
	p.Percentiles = pct
	return p
}

// SeasonPopulation is every graded profile of one season split by role.
type SeasonPopulation struct {
	Season   int
	Batters  []PlayerGradeProfile
	Pitchers []PlayerGradeProfile
}

// Profiles returns the profiles of role.
func (s *SeasonPopulation) Profiles(role Role) []PlayerGradeProfile {
	if role == RolePitcher {
		return s.Pitchers
	}
	return s.Batters
}

// ByTeam partitions the role's profiles by team name, skipping empty team names.
// Each team slice keeps population order.
func (s *SeasonPopulation) ByTeam(role Role) map[string][]PlayerGradeProfile {
	out := make(map[string][]PlayerGradeProfile)
	for _, p := range s.Profiles(role) {
		if p.Team == "" {
			continue
		}
		out[p.Team] = append(out[p.Team], p)
	}
	return out
}
