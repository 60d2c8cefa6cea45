package service

import (
	"github.com/okian/scout/internal/adapters/datasource"
	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/domain/engine"
	"github.com/okian/scout/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource sets the dataset source.
func WithSource(src datasource.Source) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithEngine sets the grading engine.
func WithEngine(e *engine.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithStore sets the profile store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithWatch reloads on input file changes while started. The source must
// support watching; otherwise the flag is ignored with a warning.
func WithWatch(enabled bool) Option {
	return func(s *Service) {
		s.watch = enabled
	}
}
