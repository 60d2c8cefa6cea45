package datasource

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/okian/scout/pkg/logger"
)

// watchDirs returns the fixed directory prefix of every pattern.
func (s *FileSource) watchDirs() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.patterns() {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(filepath.Clean(p)))
		dir := filepath.FromSlash(base)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}

func (s *FileSource) matches(name string) bool {
	name = filepath.ToSlash(filepath.Clean(name))
	for _, p := range s.patterns() {
		if ok, _ := doublestar.Match(filepath.ToSlash(filepath.Clean(p)), name); ok {
			return true
		}
	}
	return false
}

// Watch calls fn after writes to any matched input settle. It watches the
// fixed directory prefix of each glob (not recursively) and blocks until ctx
// is done. A callback already running when ctx ends finishes before Watch returns.
func (s *FileSource) Watch(ctx context.Context, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	for _, dir := range s.watchDirs() {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	log := s.log.Named("datasource")
	var mu sync.Mutex
	var timer *time.Timer
	var running sync.WaitGroup
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			running.Done()
		}
		mu.Unlock()
		running.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !s.matches(ev.Name) {
				continue
			}
			log.Debug(ctx, "input changed", logger.String("file", ev.Name), logger.String("op", ev.Op.String()))
			mu.Lock()
			if timer != nil && timer.Stop() {
				running.Done()
			}
			running.Add(1)
			timer = time.AfterFunc(s.debounce, func() {
				defer running.Done()
				if ctx.Err() == nil {
					fn()
				}
			})
			mu.Unlock()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn(ctx, "watch error", logger.Error(err))
		}
	}
}
