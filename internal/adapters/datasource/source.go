// Package datasource reads raw per-player season statistics from CSV files.
//
// A FileSource is the explicit, read-only data source handed to the pipeline.
// It never caches across calls to Load; callers decide when to reload by
// asking Changed or by subscribing through Watch.
package datasource

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/okian/scout/internal/domain/dedupe"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

const defaultDebounce = 250 * time.Millisecond

// Dataset is one load of every input table. It is read-only after Load returns.
type Dataset struct {
	Batters  []model.RawStatRecord
	Pitchers []model.RawStatRecord
	Players  map[string]model.PlayerInfo
	Files    []string
	LoadedAt time.Time
}

// Records returns batters followed by pitchers.
func (d *Dataset) Records() []model.RawStatRecord {
	out := make([]model.RawStatRecord, 0, len(d.Batters)+len(d.Pitchers))
	out = append(out, d.Batters...)
	return append(out, d.Pitchers...)
}

// Player returns the identity row of code.
func (d *Dataset) Player(code string) (model.PlayerInfo, bool) {
	p, ok := d.Players[code]
	return p, ok
}

// Source loads datasets.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
	// Changed reports whether the inputs differ from the last successful Load.
	Changed() (bool, error)
}

type stamp struct {
	size    int64
	modTime time.Time
}

// FileSource reads datasets from files matched by doublestar globs.
type FileSource struct {
	batterGlob  string
	pitcherGlob string
	playerGlob  string
	debounce    time.Duration
	log         logger.Logger

	mu     sync.Mutex
	stamps map[string]stamp

	// loadMu serializes Load; seen is reset at the start of every load.
	loadMu sync.Mutex
	seen   dedupe.Deduper
}

// NewFileSource creates a FileSource with configuration options.
func NewFileSource(opts ...Option) *FileSource {
	s := &FileSource{
		debounce: defaultDebounce,
		log:      logger.Nop(),
		seen:     dedupe.NewInMemoryDeduper(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *FileSource) patterns() []string {
	var out []string
	for _, p := range []string{s.batterGlob, s.pitcherGlob, s.playerGlob} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func glob(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}
	files, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(files)
	return files, nil
}

// Load reads every matched file. A configured batter or pitcher glob that
// matches nothing returns ErrNoInput; the player lookup is optional.
func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	log := s.log.Named("datasource")
	ds := &Dataset{Players: map[string]model.PlayerInfo{}, LoadedAt: time.Now()}
	seen := s.seen
	seen.Reset()

	for _, part := range []struct {
		role    model.Role
		pattern string
		into    *[]model.RawStatRecord
	}{
		{model.RoleBatter, s.batterGlob, &ds.Batters},
		{model.RolePitcher, s.pitcherGlob, &ds.Pitchers},
	} {
		if part.pattern == "" {
			continue
		}
		files, err := glob(part.pattern)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: %s pattern %q", ErrNoInput, part.role, part.pattern)
		}
		for _, f := range files {
			recs, err := readFile(ctx, f, part.role, log)
			if err != nil {
				return nil, err
			}
			for i := range recs {
				if seen.SeenAndRecord(ctx, dedupe.RecordKey(&recs[i])) {
					metrics.RecordDuplicateRecord(string(part.role))
					log.Warn(ctx, "duplicate record ignored",
						logger.String("file", f),
						logger.String("player_code", recs[i].PlayerCode),
						logger.Int("season", recs[i].Season),
					)
					continue
				}
				metrics.RecordRecordLoaded(string(part.role))
				*part.into = append(*part.into, recs[i])
			}
			ds.Files = append(ds.Files, f)
		}
	}

	players, err := glob(s.playerGlob)
	if err != nil {
		return nil, err
	}
	for _, f := range players {
		fh, err := os.Open(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, f, err)
		}
		rows, err := ReadPlayers(fh)
		_ = fh.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		for k, v := range rows {
			ds.Players[k] = v
		}
		ds.Files = append(ds.Files, f)
	}

	stamps, err := statAll(ds.Files)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.stamps = stamps
	s.mu.Unlock()

	log.Info(ctx, "dataset loaded",
		logger.Int("files", len(ds.Files)),
		logger.Int("batters", len(ds.Batters)),
		logger.Int("pitchers", len(ds.Pitchers)),
		logger.Int("players", len(ds.Players)),
		logger.Int("unique_records", int(seen.Size())),
	)
	return ds, nil
}

func readFile(ctx context.Context, path string, role model.Role, log logger.Logger) ([]model.RawStatRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	defer func() { _ = f.Close() }()
	recs, err := ReadRecords(ctx, f, role, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func statAll(files []string) (map[string]stamp, error) {
	out := make(map[string]stamp, len(files))
	for _, f := range files {
		fi, err := os.Stat(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, f, err)
		}
		out[f] = stamp{size: fi.Size(), modTime: fi.ModTime()}
	}
	return out, nil
}

// Changed compares the currently matched files, their sizes and modification
// times with the last successful Load. It reports true before the first Load.
func (s *FileSource) Changed() (bool, error) {
	s.mu.Lock()
	prev := s.stamps
	s.mu.Unlock()
	if prev == nil {
		return true, nil
	}

	var files []string
	for _, p := range s.patterns() {
		m, err := glob(p)
		if err != nil {
			return false, err
		}
		files = append(files, m...)
	}
	if len(files) != len(prev) {
		return true, nil
	}
	for _, f := range files {
		old, ok := prev[f]
		if !ok {
			return true, nil
		}
		fi, err := os.Stat(f)
		if err != nil {
			return true, nil //nolint:nilerr // a vanished file is a change
		}
		if fi.Size() != old.size || !fi.ModTime().Equal(old.modTime) {
			return true, nil
		}
	}
	return false, nil
}
