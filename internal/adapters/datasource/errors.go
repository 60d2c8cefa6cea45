package datasource

import "errors"

var (
	// ErrNoInput is returned when a configured dataset glob matches no file.
	ErrNoInput = errors.New("no input files")
	// ErrUnreadable is returned when a matched file cannot be opened or parsed as CSV.
	ErrUnreadable = errors.New("input unreadable")
)
