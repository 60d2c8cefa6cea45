package repository

import "errors"

// Sentinel kinds for store errors.
var (
	// ErrNotFound means no graded profile or season exists for the key.
	ErrNotFound     = errors.New("no data")
	ErrInvalidLimit = errors.New("invalid leaderboard limit")
)
