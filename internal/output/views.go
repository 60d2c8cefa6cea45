package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/okian/scout/internal/domain/archetype"
	"github.com/okian/scout/internal/domain/grading"
	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/types"
)

// GradeColor paints text by the tier of grade: green for plus and above,
// yellow for below average, red for poor.
func GradeColor(grade int, text string) string {
	switch {
	case grade >= 70:
		return color.GreenString(text)
	case grade >= 60:
		return color.CyanString(text)
	case grade < 40:
		return color.RedString(text)
	case grade < 50:
		return color.YellowString(text)
	default:
		return text
	}
}

func gradeCell(grade int, colored bool) string {
	s := strconv.Itoa(grade)
	if colored {
		return GradeColor(grade, s)
	}
	return s
}

func categoryNames(role model.Role) map[string]string {
	out := make(map[string]string)
	for _, c := range metric.Categories(role) {
		out[c.Key] = c.Name
	}
	return out
}

// ProfileView renders one graded profile.
type ProfileView struct {
	Profile model.PlayerGradeProfile
}

func (v *ProfileView) RenderData() any { return v.Profile }

func (v *ProfileView) RenderText(w io.Writer, colored bool) error {
	return v.report(colored).RenderText(w, colored)
}

func (v *ProfileView) report(colored bool) *Report {
	p := &v.Profile
	info := archetype.Describe(archetype.Tag(p.Archetype))
	names := categoryNames(p.Role)

	lines := []string{
		fmt.Sprintf("%s  %s  %d  %s", p.PlayerCode, p.Team, p.Season, roleLabel(p)),
		fmt.Sprintf("Overall: %s (%s)", overallText(p.Overall, colored), grading.Label(p.Overall.Value())),
		fmt.Sprintf("Archetype: %s - %s", info.Name, info.Description),
	}
	if len(p.Strengths) > 0 {
		lines = append(lines, "Strengths: "+joinNames(p.Strengths, names))
	}
	if len(p.Weaknesses) > 0 {
		lines = append(lines, "Weaknesses: "+joinNames(p.Weaknesses, names))
	}

	cats := &Table{Title: "Categories", Headers: []string{"category", "grade", "base", "tier", "percentile"}}
	for _, key := range metric.CategoryKeys(p.Role) {
		gv, ok := p.Categories[key]
		if !ok {
			continue
		}
		pct := ""
		if v, ok := p.Percentiles[key]; ok {
			pct = strconv.FormatFloat(v, 'f', 1, 64)
		}
		cats.Rows = append(cats.Rows, []string{
			names[key], gradeCell(gv.Value(), colored), strconv.Itoa(gv.Base), grading.Label(gv.Value()), pct,
		})
	}

	metrics := &Table{Title: "Metrics", Headers: []string{"category", "metric", "value", "grade", "weight"}}
	for _, key := range metric.CategoryKeys(p.Role) {
		for _, m := range p.Metrics[key] {
			metrics.Rows = append(metrics.Rows, []string{
				names[key], m.Name, strconv.FormatFloat(m.Value, 'f', 3, 64),
				gradeCell(m.Grade, colored), strconv.FormatFloat(m.Weight, 'f', 2, 64),
			})
		}
	}

	tables := []*Table{cats, metrics}
	if len(p.TraditionalStats) > 0 {
		trad := &Table{Title: "Traditional", Headers: []string{"stat", "value"}}
		for _, key := range metric.Traditional(p.Role) {
			if v, ok := p.TraditionalStats[key]; ok {
				trad.Rows = append(trad.Rows, []string{key, strconv.FormatFloat(v, 'f', -1, 64)})
			}
		}
		tables = append(tables, trad)
	}
	return &Report{Title: p.Name, Lines: lines, Tables: tables, Data: p}
}

func roleLabel(p *model.PlayerGradeProfile) string {
	if p.Role == model.RolePitcher {
		return string(p.BullpenRole)
	}
	if p.Position != "" {
		return p.Position
	}
	return string(p.Role)
}

func overallText(g model.GradeValue, colored bool) string {
	if g.Weighted == nil {
		return gradeCell(g.Base, colored)
	}
	return fmt.Sprintf("%s (base %d)", gradeCell(*g.Weighted, colored), g.Base)
}

func joinNames(keys []string, names map[string]string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k
		if n, ok := names[k]; ok {
			out[i] = n
		}
	}
	return strings.Join(out, ", ")
}

// NewLeaderboardTable renders ranked entries.
func NewLeaderboardTable(role model.Role, season int, field string, entries []types.Entry, colored bool) *Table {
	t := &Table{
		Title:   fmt.Sprintf("Leaderboard %d (%ss) by %s", season, role, field),
		Headers: []string{"rank", "player", "name", "team", "value"},
		Data:    entries,
	}
	gradeField := field == population.FieldOverall || field == population.FieldOverallBase ||
		field == population.FieldOverallGrade ||
		metric.IsCategory(role, strings.TrimSuffix(field, population.BaseSuffix))
	for _, e := range entries {
		value := strconv.FormatFloat(e.Value, 'f', -1, 64)
		if gradeField && colored {
			value = GradeColor(int(e.Value), value)
		}
		t.Rows = append(t.Rows, []string{strconv.Itoa(e.Rank), e.PlayerCode, e.Name, e.Team, value})
	}
	return t
}

// NewTeamsTable renders team averages sorted by team name.
func NewTeamsTable(role model.Role, season int, teams map[string]population.TeamSummary) *Table {
	keys := append([]string{population.OverallKey}, metric.CategoryKeys(role)...)
	t := &Table{
		Title:   fmt.Sprintf("Team averages %d (%ss)", season, role),
		Headers: append(append([]string{"team"}, keys...), "players"),
		Data:    teams,
	}
	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ts := teams[name]
		row := []string{name}
		for _, k := range keys {
			row = append(row, strconv.FormatFloat(ts.Averages[k], 'f', 1, 64))
		}
		t.Rows = append(t.Rows, append(row, strconv.Itoa(ts.PlayerCount)))
	}
	return t
}
