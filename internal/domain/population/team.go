package population

import (
	"encoding/json"

	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
)

// TeamSummary holds a team's averages over its qualifying players.
type TeamSummary struct {
	PlayerCount int
	// Averages maps "overall" and each category key to a mean rounded to one decimal.
	Averages map[string]float64
}

// MarshalJSON renders {"avg_<key>": v, ..., "player_count": n}.
func (t TeamSummary) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(t.Averages)+1)
	for k, v := range t.Averages {
		flat["avg_"+k] = v
	}
	flat["player_count"] = t.PlayerCount
	return json.Marshal(flat)
}

func qualifies(p *model.PlayerGradeProfile, minOpportunity float64) bool {
	if minOpportunity <= 0 {
		return true
	}
	return p.Opportunity != nil && *p.Opportunity >= minOpportunity
}

// TeamAverages averages effective grades per team of pop over players of role
// whose opportunity reaches minOpportunity. Teams with no qualifying player are absent.
func TeamAverages(pop *model.SeasonPopulation, role model.Role, minOpportunity float64) map[string]TeamSummary {
	keys := append([]string{OverallKey}, metric.CategoryKeys(role)...)
	out := make(map[string]TeamSummary)

	for team, players := range pop.ByTeam(role) {
		sums := make(map[string]float64, len(keys))
		n := 0
		for i := range players {
			p := &players[i]
			if !qualifies(p, minOpportunity) {
				continue
			}
			sums[OverallKey] += float64(p.Overall.Value())
			for _, c := range keys[1:] {
				v, _ := p.CategoryValue(c)
				sums[c] += float64(v)
			}
			n++
		}
		if n == 0 {
			continue
		}
		avg := make(map[string]float64, len(keys))
		for _, k := range keys {
			avg[k] = round1(sums[k] / float64(n))
		}
		out[team] = TeamSummary{PlayerCount: n, Averages: avg}
	}
	return out
}
