// Package service owns the data source, the grading engine and the profile
// store, and implements the dependencies required by the HTTP API and CLI.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/scout/internal/adapters/datasource"
	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/domain/engine"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Reload outcomes, also used as metric labels.
const (
	ReloadOK        = "ok"
	ReloadUnchanged = "unchanged"
	ReloadError     = "error"
)

// watcher is implemented by sources that can signal input changes.
type watcher interface {
	Watch(ctx context.Context, fn func()) error
}

// Service grades every season of the source and serves the results.
type Service struct {
	mu       sync.RWMutex
	reloadMu sync.Mutex

	// Core components
	source datasource.Source
	engine *engine.Engine
	store  repository.Store

	// Configuration
	watch bool

	// State
	started     bool
	runID       string
	loadedAt    time.Time
	dataset     *datasource.Dataset
	results     []*engine.SeasonResult
	stopWatch   context.CancelFunc
	watchDone   chan struct{}
	reloadCount int

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		engine: engine.New(),
		store:  repository.NewSnapshotStore(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads and grades every season, then starts watching the inputs when
// configured. Calling Start on a started service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	if s.source == nil {
		s.mu.Unlock()
		return ErrNoSource
	}
	s.mu.Unlock()

	s.logger.Info(ctx, "starting scouting service...")
	if _, err := s.Reload(ctx, true); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true

	if s.watch {
		w, ok := s.source.(watcher)
		if !ok {
			s.logger.Warn(ctx, "source does not support watching; reload with POST /reload")
		} else {
			wctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
			s.stopWatch = cancel
			s.watchDone = make(chan struct{})
			go s.watchLoop(wctx, w, s.watchDone)
		}
	}

	s.logger.Info(ctx, "scouting service started",
		logger.String("run_id", s.runID),
		logger.Int("seasons", len(s.results)),
		logger.Bool("watch", s.stopWatch != nil),
	)
	return nil
}

func (s *Service) watchLoop(ctx context.Context, w watcher, done chan struct{}) {
	defer close(done)
	err := w.Watch(ctx, func() {
		if _, err := s.Reload(ctx, false); err != nil {
			s.logger.Error(ctx, "reload after change failed", logger.Error(err))
		}
	})
	if err != nil {
		s.logger.Error(ctx, "watch stopped", logger.Error(err))
	}
}

// Stop stops watching. The last graded results stay readable.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	cancel, done := s.stopWatch, s.watchDone
	s.stopWatch, s.watchDone = nil, nil
	s.started = false
	s.mu.Unlock()

	s.logger.Info(context.Background(), "stopping scouting service...")
	if cancel != nil {
		cancel()
		<-done
	}
	s.logger.Info(context.Background(), "scouting service stopped")
}

// Reload re-reads and re-grades the inputs. Unless force is set it does
// nothing when the source reports no change. It returns whether new results
// were published. On failure the previous results stay in place.
func (s *Service) Reload(ctx context.Context, force bool) (bool, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := s.log()
	if s.source == nil {
		return false, ErrNoSource
	}
	if !force {
		changed, err := s.source.Changed()
		if err != nil {
			metrics.RecordReload(ReloadError, 0)
			return false, err
		}
		if !changed {
			metrics.RecordReload(ReloadUnchanged, 0)
			log.Debug(ctx, "inputs unchanged; skipping reload")
			return false, nil
		}
	}

	start := time.Now()
	ds, err := s.source.Load(ctx)
	if err != nil {
		metrics.RecordReload(ReloadError, 0)
		return false, err
	}
	results, err := s.engine.GradeAll(ctx, ds.Records())
	if err != nil {
		metrics.RecordReload(ReloadError, 0)
		return false, err
	}
	s.store.Replace(ctx, results)

	runID := uuid.NewString()
	s.mu.Lock()
	s.runID = runID
	s.loadedAt = ds.LoadedAt
	s.dataset = ds
	s.results = results
	s.reloadCount++
	s.mu.Unlock()

	metrics.RecordReload(ReloadOK, float64(ds.LoadedAt.Unix()))
	log.Info(ctx, "graded datasets",
		logger.String("run_id", runID),
		logger.Int("batters", len(ds.Batters)),
		logger.Int("pitchers", len(ds.Pitchers)),
		logger.Int("files", len(ds.Files)),
		logger.Int("seasons", len(results)),
		logger.Duration("took", time.Since(start)),
	)
	return true, nil
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Nop()
	}
	return s.logger
}

// Results returns the graded seasons of the last successful load.
func (s *Service) Results() []*engine.SeasonResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

// Dataset returns the last successfully loaded dataset, or nil.
func (s *Service) Dataset() *datasource.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// RunID identifies the last successful load.
func (s *Service) RunID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runID
}

// Seasons returns the graded seasons, ascending.
func (s *Service) Seasons(ctx context.Context) []int {
	return s.store.Seasons(ctx)
}

// Profile returns one graded profile.
func (s *Service) Profile(ctx context.Context, role model.Role, season int, code string) (model.PlayerGradeProfile, error) {
	return s.store.Profile(ctx, role, season, code)
}

// Leaderboard returns the top-n profiles of role in season by field.
func (s *Service) Leaderboard(ctx context.Context, role model.Role, season int, field string, n int) ([]types.Entry, error) {
	return s.store.TopN(ctx, role, season, field, n)
}

// TeamAverages returns the team averages of role in season.
func (s *Service) TeamAverages(ctx context.Context, role model.Role, season int) (map[string]population.TeamSummary, error) {
	summary, err := s.store.Summary(ctx, season)
	if err != nil {
		return nil, err
	}
	return summary.Role(role).TeamAverages, nil
}

// Search ranks players of role in season by fuzzy name match.
func (s *Service) Search(ctx context.Context, role model.Role, season int, query string, limit int) ([]repository.SearchHit, error) {
	return s.store.Search(ctx, role, season, query, limit)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"watch":   s.stopWatch != nil,
		"reloads": s.reloadCount,
	}

	if s.dataset != nil {
		stats["runId"] = s.runID
		stats["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
		stats["batterRecords"] = len(s.dataset.Batters)
		stats["pitcherRecords"] = len(s.dataset.Pitchers)
		stats["files"] = len(s.dataset.Files)
		stats["profiles"] = s.store.Count(context.Background())
		seasons := make([]int, len(s.results))
		for i, r := range s.results {
			seasons[i] = r.Season
		}
		stats["seasons"] = seasons
	}

	return stats
}
