package engine

import (
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScorer sets the category and overall scorer.
func WithScorer(s *scoring.Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithWorkers sets the number of goroutines grading players in phase one.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithSummaryOptions sets team-average minimums and leaderboard size.
func WithSummaryOptions(opts population.SummaryOptions) Option {
	return func(e *Engine) {
		e.summary = opts
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
