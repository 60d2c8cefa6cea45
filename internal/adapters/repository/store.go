// Package repository keeps graded seasons in memory for the read API.
package repository

import (
	"context"

	"github.com/okian/scout/internal/domain/engine"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/types"
)

// SearchHit is one fuzzy name match.
type SearchHit struct {
	PlayerCode string `json:"player_code"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Distance   int    `json:"distance"`
}

// Store provides read access to graded seasons and an atomic swap for reloads.
type Store interface {
	// Replace swaps in a new set of season results. Readers see either the old
	// or the new set, never a mix.
	Replace(ctx context.Context, results []*engine.SeasonResult)

	// Seasons returns the graded seasons, ascending.
	Seasons(ctx context.Context) []int

	// Profile returns one graded profile. Returns ErrNotFound if unknown.
	Profile(ctx context.Context, role model.Role, season int, code string) (model.PlayerGradeProfile, error)

	// Profiles returns every profile of role in season, ordered by player code.
	Profiles(ctx context.Context, role model.Role, season int) ([]model.PlayerGradeProfile, error)

	// Summary returns the season aggregates.
	Summary(ctx context.Context, season int) (population.Summary, error)

	// TopN returns the top-n profiles of role in season by field.
	TopN(ctx context.Context, role model.Role, season int, field string, n int) ([]types.Entry, error)

	// Search ranks players of role in season by fuzzy name match.
	Search(ctx context.Context, role model.Role, season int, query string, limit int) ([]SearchHit, error)

	// Count returns the number of profiles held.
	Count(ctx context.Context) int
}
