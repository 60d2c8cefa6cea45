package model

import "errors"

// ErrUnknownRole is returned when a role string is neither batter nor pitcher.
var ErrUnknownRole = errors.New("unknown role")
