package population

import "errors"

// ErrUnknownField is returned when a leaderboard field does not exist for a role.
var ErrUnknownField = errors.New("unknown leaderboard field")
