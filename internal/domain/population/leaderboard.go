package population

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/types"
)

// Leaderboard field names beyond category, metric and traditional stat keys.
const (
	FieldOverall      = OverallKey
	FieldOverallBase  = "overall_base"
	FieldOverallGrade = "overall_grade"

	// BaseSuffix turns a category key into its base-grade field, e.g. contact_base.
	BaseSuffix = "_base"
)

// BaseField names the base-grade field of category.
func BaseField(category string) string { return category + BaseSuffix }

// ValidateField checks that field can rank players of role.
func ValidateField(role model.Role, field string) error {
	switch {
	case field == FieldOverall, field == FieldOverallBase, field == FieldOverallGrade:
		return nil
	case metric.IsCategory(role, field), metric.IsTraditional(role, field):
		return nil
	case strings.HasSuffix(field, BaseSuffix) && metric.IsCategory(role, strings.TrimSuffix(field, BaseSuffix)):
		return nil
	}
	if _, ok := metric.Lookup(role, field); ok {
		return nil
	}
	return fmt.Errorf("%w: %q for %s", ErrUnknownField, field, role)
}

// FieldValue extracts field from p. Category and overall fields use effective
// grades, overall_base, overall_grade and <category>_base the base grade, metric keys and
// traditional stats the value as read from the input.
func FieldValue(p *model.PlayerGradeProfile, field string) (float64, bool) {
	switch field {
	case FieldOverall:
		return float64(p.Overall.Value()), true
	case FieldOverallBase, FieldOverallGrade:
		return float64(p.Overall.Base), true
	}
	if v, ok := p.CategoryValue(field); ok {
		return float64(v), true
	}
	if cat, ok := strings.CutSuffix(field, BaseSuffix); ok {
		if gv, ok := p.Categories[cat]; ok {
			return float64(gv.Base), true
		}
	}
	if m, ok := p.Metric(field); ok {
		return m.Value, true
	}
	if v, ok := p.TraditionalStats[field]; ok {
		return v, true
	}
	return 0, false
}

// Leaderboard returns the top n profiles by field, descending. Profiles
// without the field are excluded. Ties are broken by player code ascending,
// then input order. n <= 0 yields an empty board.
func Leaderboard(profiles []model.PlayerGradeProfile, field string, n int) []types.Entry {
	if n <= 0 {
		return []types.Entry{}
	}
	type row struct {
		p *model.PlayerGradeProfile
		v float64
	}
	rows := make([]row, 0, len(profiles))
	for i := range profiles {
		if v, ok := FieldValue(&profiles[i], field); ok {
			rows = append(rows, row{p: &profiles[i], v: v})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].v != rows[j].v {
			return rows[i].v > rows[j].v
		}
		return rows[i].p.PlayerCode < rows[j].p.PlayerCode
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	out := make([]types.Entry, len(rows))
	for i, r := range rows {
		out[i] = types.Entry{
			Rank:       i + 1,
			PlayerCode: r.p.PlayerCode,
			Name:       r.p.Name,
			Team:       r.p.Team,
			Value:      r.v,
		}
	}
	return out
}
