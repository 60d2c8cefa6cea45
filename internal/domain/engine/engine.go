// Package engine runs the two-phase season pipeline: every player is graded
// independently against a read-only baseline, then the completed population
// is aggregated into percentiles, team averages and leaderboards.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/okian/scout/internal/domain/archetype"
	"github.com/okian/scout/internal/domain/grading"
	"github.com/okian/scout/internal/domain/metric"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
	"github.com/sourcegraph/conc/pool"
)

// Phase names used in logs and metrics.
const (
	PhaseGrade     = "grade"
	PhaseAggregate = "aggregate"
)

// SeasonResult is the graded output of one season. It is read-only once returned.
type SeasonResult struct {
	Season     int
	Population model.SeasonPopulation
	Summary    population.Summary
	Baselines  map[model.Role]*grading.Baseline
}

// Engine grades seasons of raw records.
type Engine struct {
	scorer  *scoring.Scorer
	workers int
	summary population.SummaryOptions
	log     logger.Logger
}

// New creates an Engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		scorer:  scoring.New(),
		workers: runtime.NumCPU(),
		summary: population.SummaryOptions{LeaderboardSize: population.DefaultLeaderboardSize},
		log:     logger.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Profile grades one record against its season baseline. It does not read
// any other player's data and never mutates rec or baseline.
func (e *Engine) Profile(rec *model.RawStatRecord, baseline *grading.Baseline) model.PlayerGradeProfile {
	res := e.scorer.Score(rec, baseline)

	p := model.PlayerGradeProfile{
		PlayerCode:       rec.PlayerCode,
		Name:             rec.Name,
		Team:             rec.Team,
		Season:           rec.Season,
		Role:             rec.Role,
		Position:         rec.Position,
		Overall:          res.Overall,
		Categories:       res.Categories,
		Metrics:          res.Metrics,
		TraditionalStats: make(map[string]float64),
		Strengths:        []string{},
		Weaknesses:       []string{},
		Opportunity:      res.Opportunity,
	}
	if rec.Role == model.RolePitcher {
		p.BullpenRole = rec.BullpenRole
		if p.BullpenRole == "" {
			p.BullpenRole = model.BullpenUnknown
		}
	}

	for _, k := range metric.Traditional(rec.Role) {
		if v, ok := rec.Value(k); ok {
			p.TraditionalStats[k] = v
		}
	}

	for _, c := range metric.CategoryKeys(rec.Role) {
		v, _ := p.CategoryValue(c)
		switch {
		case grading.IsStrength(v):
			p.Strengths = append(p.Strengths, c)
		case grading.IsWeakness(v):
			p.Weaknesses = append(p.Weaknesses, c)
		}
	}

	p.Archetype = string(archetype.Classify(archetype.Input{
		Role:        rec.Role,
		BullpenRole: p.BullpenRole,
		Scores:      p.EffectiveCategories(),
		Overall:     p.Overall.Value(),
		Raw:         rec.Values,
	}))
	return p
}

// GradeSeason grades every record of season. Records from other seasons are ignored.
// Cancellation is only observed between phases.
func (e *Engine) GradeSeason(ctx context.Context, season int, records []model.RawStatRecord) (*SeasonResult, error) {
	log := e.log.Named("engine")
	byRole := make(map[model.Role][]model.RawStatRecord, len(model.Roles))
	for i := range records {
		if records[i].Season == season {
			byRole[records[i].Role] = append(byRole[records[i].Role], records[i])
		}
	}

	res := &SeasonResult{
		Season:    season,
		Baselines: make(map[model.Role]*grading.Baseline, len(model.Roles)),
	}
	res.Population.Season = season

	// phase 1: per-player grading
	start := time.Now()
	graded := make(map[model.Role][]model.PlayerGradeProfile, len(model.Roles))
	for _, role := range model.Roles {
		recs := byRole[role]
		baseline := grading.BuildBaseline(role, recs)
		res.Baselines[role] = baseline
		for _, key := range baseline.Degenerate() {
			metrics.RecordDegenerateDistribution(string(role))
			log.Debug(ctx, "degenerate distribution, grading neutral",
				logger.Int("season", season),
				logger.String("role", string(role)),
				logger.String("metric", key),
			)
		}
		graded[role] = e.gradeAll(recs, baseline)
		metrics.RecordProfilesGraded(string(role), len(recs))
		metrics.UpdatePopulationSize(string(role), season, len(recs))
	}
	took := time.Since(start)
	metrics.ObserveSeasonPhase(PhaseGrade, took.Seconds())
	log.Info(ctx, "graded season",
		logger.Int("season", season),
		logger.Int("batters", len(graded[model.RoleBatter])),
		logger.Int("pitchers", len(graded[model.RolePitcher])),
		logger.Duration("took", took),
	)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("grade season %d: %w", season, err)
	}

	// phase 2: population aggregation
	start = time.Now()
	res.Population.Batters = population.Percentiles(graded[model.RoleBatter], model.RoleBatter)
	res.Population.Pitchers = population.Percentiles(graded[model.RolePitcher], model.RolePitcher)
	res.Summary = population.Summarize(&res.Population, e.summary)
	took = time.Since(start)
	metrics.ObserveSeasonPhase(PhaseAggregate, took.Seconds())
	log.Info(ctx, "aggregated season",
		logger.Int("season", season),
		logger.Int("batter_teams", len(res.Summary.Batters.TeamAverages)),
		logger.Int("pitcher_teams", len(res.Summary.Pitchers.TeamAverages)),
		logger.Duration("took", took),
	)
	return res, nil
}

// gradeAll profiles recs in parallel and returns them ordered by player code.
func (e *Engine) gradeAll(recs []model.RawStatRecord, baseline *grading.Baseline) []model.PlayerGradeProfile {
	out := make([]model.PlayerGradeProfile, len(recs))
	p := pool.New().WithMaxGoroutines(e.workers)
	for i := range recs {
		p.Go(func() {
			out[i] = e.Profile(&recs[i], baseline)
		})
	}
	p.Wait()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayerCode < out[j].PlayerCode
	})
	return out
}

// Seasons returns the distinct seasons in records, ascending.
func Seasons(records []model.RawStatRecord) []int {
	seen := make(map[int]struct{})
	var out []int
	for i := range records {
		if _, ok := seen[records[i].Season]; ok {
			continue
		}
		seen[records[i].Season] = struct{}{}
		out = append(out, records[i].Season)
	}
	sort.Ints(out)
	return out
}

// GradeAll grades every season found in records, in ascending season order.
func (e *Engine) GradeAll(ctx context.Context, records []model.RawStatRecord) ([]*SeasonResult, error) {
	seasons := Seasons(records)
	out := make([]*SeasonResult, 0, len(seasons))
	for _, s := range seasons {
		res, err := e.GradeSeason(ctx, s, records)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
