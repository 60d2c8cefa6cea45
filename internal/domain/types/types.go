// Package types contains common types used across the application
package types

// Entry represents a leaderboard entry
type Entry struct {
	Rank       int     `json:"rank"`
	PlayerCode string  `json:"player_code"`
	Name       string  `json:"name"`
	Team       string  `json:"team"`
	Value      float64 `json:"value"`
}

// PlayerCodes returns the codes of entries in rank order.
func PlayerCodes(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.PlayerCode
	}
	return out
}
