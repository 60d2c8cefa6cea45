package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/okian/scout/internal/domain/engine"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/types"
)

const defaultMaxLimit = 500

// snapshot is immutable once published.
type snapshot struct {
	seasons []int
	results map[int]*engine.SeasonResult
	index   map[model.Role]map[int]map[string]int
	count   int
}

func newSnapshot(results []*engine.SeasonResult) *snapshot {
	s := &snapshot{
		results: make(map[int]*engine.SeasonResult, len(results)),
		index:   make(map[model.Role]map[int]map[string]int, len(model.Roles)),
	}
	for _, role := range model.Roles {
		s.index[role] = make(map[int]map[string]int, len(results))
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		if _, dup := s.results[r.Season]; !dup {
			s.seasons = append(s.seasons, r.Season)
		}
		s.results[r.Season] = r
		for _, role := range model.Roles {
			profiles := r.Population.Profiles(role)
			idx := make(map[string]int, len(profiles))
			for i := range profiles {
				idx[profiles[i].PlayerCode] = i
			}
			s.index[role][r.Season] = idx
		}
	}
	sort.Ints(s.seasons)
	for _, r := range s.results {
		s.count += len(r.Population.Batters) + len(r.Population.Pitchers)
	}
	return s
}

// SnapshotStore implements Store with an atomically swapped snapshot.
type SnapshotStore struct {
	current  atomic.Pointer[snapshot]
	maxLimit int
}

// NewSnapshotStore creates an empty store with configuration options.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{maxLimit: defaultMaxLimit}

	for _, opt := range opts {
		opt(s)
	}

	s.current.Store(newSnapshot(nil))
	return s
}

func (s *SnapshotStore) Replace(_ context.Context, results []*engine.SeasonResult) {
	s.current.Store(newSnapshot(results))
}

func (s *SnapshotStore) Seasons(_ context.Context) []int {
	return append([]int(nil), s.current.Load().seasons...)
}

func (s *SnapshotStore) season(season int) (*engine.SeasonResult, error) {
	r, ok := s.current.Load().results[season]
	if !ok {
		return nil, fmt.Errorf("%w: season %d", ErrNotFound, season)
	}
	return r, nil
}

func (s *SnapshotStore) Profile(_ context.Context, role model.Role, season int, code string) (model.PlayerGradeProfile, error) {
	snap := s.current.Load()
	r, ok := snap.results[season]
	if !ok {
		return model.PlayerGradeProfile{}, fmt.Errorf("%w: season %d", ErrNotFound, season)
	}
	i, ok := snap.index[role][season][code]
	if !ok {
		return model.PlayerGradeProfile{}, fmt.Errorf("%w: %s %s in %d", ErrNotFound, role, code, season)
	}
	return r.Population.Profiles(role)[i], nil
}

func (s *SnapshotStore) Profiles(_ context.Context, role model.Role, season int) ([]model.PlayerGradeProfile, error) {
	r, err := s.season(season)
	if err != nil {
		return nil, err
	}
	return r.Population.Profiles(role), nil
}

func (s *SnapshotStore) Summary(_ context.Context, season int) (population.Summary, error) {
	r, err := s.season(season)
	if err != nil {
		return population.Summary{}, err
	}
	return r.Summary, nil
}

func (s *SnapshotStore) checkLimit(n int) error {
	if n <= 0 || n > s.maxLimit {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidLimit, n, s.maxLimit)
	}
	return nil
}

func (s *SnapshotStore) TopN(ctx context.Context, role model.Role, season int, field string, n int) ([]types.Entry, error) {
	if err := s.checkLimit(n); err != nil {
		return nil, err
	}
	if err := population.ValidateField(role, field); err != nil {
		return nil, err
	}
	profiles, err := s.Profiles(ctx, role, season)
	if err != nil {
		return nil, err
	}
	return population.Leaderboard(profiles, field, n), nil
}

func (s *SnapshotStore) Search(ctx context.Context, role model.Role, season int, query string, limit int) ([]SearchHit, error) {
	if err := s.checkLimit(limit); err != nil {
		return nil, err
	}
	profiles, err := s.Profiles(ctx, role, season)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchHit{}, nil
	}
	names := make([]string, len(profiles))
	for i := range profiles {
		names[i] = profiles[i].Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return profiles[ranks[i].OriginalIndex].PlayerCode < profiles[ranks[j].OriginalIndex].PlayerCode
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]SearchHit, len(ranks))
	for i, r := range ranks {
		p := &profiles[r.OriginalIndex]
		out[i] = SearchHit{PlayerCode: p.PlayerCode, Name: p.Name, Team: p.Team, Distance: r.Distance}
	}
	return out, nil
}

func (s *SnapshotStore) Count(_ context.Context) int {
	return s.current.Load().count
}
