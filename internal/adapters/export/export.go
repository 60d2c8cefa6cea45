// Package export renders graded seasons into the single-file scouting document
// consumed by the mobile client.
package export

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/okian/scout/internal/domain/engine"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/types"
)

// Version is the document format version.
const Version = "1.0.0"

// Options tunes Build.
type Options struct {
	RunID string
	Now   func() time.Time
}

// Metadata describes one export.
type Metadata struct {
	Version     string `json:"version"`
	GeneratedAt string `json:"generated_at"`
	RunID       string `json:"run_id"`
	Seasons     []int  `json:"seasons"`
	Digest      string `json:"digest"`
}

// IndexEntry is the per-player directory row. Name, team and position come
// from the player's latest season.
type IndexEntry struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Hand     string `json:"hand"`
	Role     string `json:"role,omitempty"`
	Seasons  []int  `json:"seasons"`
}

// RoleSection is the index and kpi block of one role. kpi maps season to
// player code to profile.
type RoleSection struct {
	Index map[string]IndexEntry                          `json:"index"`
	KPI   map[string]map[string]model.PlayerGradeProfile `json:"kpi"`
}

// TeamComparison is the per-season team averages of both roles.
type TeamComparison struct {
	Batters  map[string]population.TeamSummary `json:"batters"`
	Pitchers map[string]population.TeamSummary `json:"pitchers"`
}

// Leaderboards maps season to board name to ordered player codes.
type Leaderboards struct {
	Batters  map[string]map[string][]string `json:"batters"`
	Pitchers map[string]map[string][]string `json:"pitchers"`
}

// Document is the full export.
type Document struct {
	Metadata       Metadata                  `json:"metadata"`
	Batters        RoleSection               `json:"batters"`
	Pitchers       RoleSection               `json:"pitchers"`
	TeamComparison map[string]TeamComparison `json:"team_comparison"`
	Leaderboards   Leaderboards              `json:"leaderboards"`
}

// Build assembles the document from graded seasons. players may be nil.
func Build(results []*engine.SeasonResult, players map[string]model.PlayerInfo, opts Options) (*Document, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	ordered := make([]*engine.SeasonResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			ordered = append(ordered, r)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Season < ordered[j].Season })

	doc := &Document{
		Batters:        newRoleSection(),
		Pitchers:       newRoleSection(),
		TeamComparison: make(map[string]TeamComparison, len(ordered)),
		Leaderboards: Leaderboards{
			Batters:  make(map[string]map[string][]string, len(ordered)),
			Pitchers: make(map[string]map[string][]string, len(ordered)),
		},
	}
	seasons := make([]int, 0, len(ordered))
	for _, r := range ordered {
		key := strconv.Itoa(r.Season)
		seasons = append(seasons, r.Season)

		doc.Batters.add(key, r.Population.Batters, players, model.RoleBatter)
		doc.Pitchers.add(key, r.Population.Pitchers, players, model.RolePitcher)
		doc.TeamComparison[key] = TeamComparison{
			Batters:  r.Summary.Batters.TeamAverages,
			Pitchers: r.Summary.Pitchers.TeamAverages,
		}
		doc.Leaderboards.Batters[key] = boardIDs(r.Summary.Batters.Leaderboards)
		doc.Leaderboards.Pitchers[key] = boardIDs(r.Summary.Pitchers.Leaderboards)
	}

	digest, err := Digest(doc)
	if err != nil {
		return nil, err
	}
	doc.Metadata = Metadata{
		Version:     Version,
		GeneratedAt: opts.Now().UTC().Format(time.RFC3339),
		RunID:       opts.RunID,
		Seasons:     seasons,
		Digest:      digest,
	}
	return doc, nil
}

// Digest is the xxhash64 of the minified kpi sections, hex encoded. It only
// changes when graded content changes.
func Digest(doc *Document) (string, error) {
	b, err := json.Marshal(struct {
		Batters  map[string]map[string]model.PlayerGradeProfile `json:"batters"`
		Pitchers map[string]map[string]model.PlayerGradeProfile `json:"pitchers"`
	}{doc.Batters.KPI, doc.Pitchers.KPI})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

func newRoleSection() RoleSection {
	return RoleSection{
		Index: make(map[string]IndexEntry),
		KPI:   make(map[string]map[string]model.PlayerGradeProfile),
	}
}

// add must be called in ascending season order so the latest season wins the index.
func (s *RoleSection) add(season string, profiles []model.PlayerGradeProfile, players map[string]model.PlayerInfo, role model.Role) {
	kpi := make(map[string]model.PlayerGradeProfile, len(profiles))
	for _, p := range profiles {
		kpi[p.PlayerCode] = p

		entry := s.Index[p.PlayerCode]
		entry.Name = p.Name
		entry.Team = p.Team
		entry.Position = p.Position
		if role == model.RolePitcher {
			entry.Position = "P"
			entry.Role = string(p.BullpenRole)
		}
		if info, ok := players[p.PlayerCode]; ok {
			entry.Hand = info.Hand()
		}
		entry.Seasons = append(entry.Seasons, p.Season)
		s.Index[p.PlayerCode] = entry
	}
	s.KPI[season] = kpi
}

func boardIDs(boards map[string][]types.Entry) map[string][]string {
	out := make(map[string][]string, len(boards))
	for name, entries := range boards {
		out[name] = types.PlayerCodes(entries)
	}
	return out
}
