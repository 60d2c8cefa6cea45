package model

import "encoding/json"

// MarshalJSON flattens the two-tier grades into the boundary shape:
// overall_grade (base), overall_grade_weighted (when present) and
// category_scores carrying effective values.
func (p PlayerGradeProfile) MarshalJSON() ([]byte, error) {
	type profile PlayerGradeProfile
	return json.Marshal(struct {
		profile
		OverallGrade         int            `json:"overall_grade"`
		OverallGradeWeighted *int           `json:"overall_grade_weighted,omitempty"`
		CategoryScores       map[string]int `json:"category_scores"`
	}{
		profile:              profile(p),
		OverallGrade:         p.Overall.Base,
		OverallGradeWeighted: p.Overall.Weighted,
		CategoryScores:       p.EffectiveCategories(),
	})
}
