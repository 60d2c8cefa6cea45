package datasource

import (
	"time"

	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the FileSource.
type Option func(*FileSource)

// WithBatterFiles sets the glob of batter datasets.
func WithBatterFiles(pattern string) Option {
	return func(s *FileSource) {
		s.batterGlob = pattern
	}
}

// WithPitcherFiles sets the glob of pitcher datasets.
func WithPitcherFiles(pattern string) Option {
	return func(s *FileSource) {
		s.pitcherGlob = pattern
	}
}

// WithPlayerFiles sets the glob of the optional identity/handedness lookup.
func WithPlayerFiles(pattern string) Option {
	return func(s *FileSource) {
		s.playerGlob = pattern
	}
}

// WithDebounce sets how long Watch waits for writes to settle before firing.
func WithDebounce(d time.Duration) Option {
	return func(s *FileSource) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *FileSource) {
		if l != nil {
			s.log = l
		}
	}
}
