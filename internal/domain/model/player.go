package model

import "strings"

// PlayerInfo is the identity and handedness lookup row for a player.
type PlayerInfo struct {
	PlayerCode string
	Throws     string
	Bats       string
}

// Hand renders throwing and batting hands as "R/L". Empty when either is unknown.
func (p PlayerInfo) Hand() string {
	t, b := strings.TrimSpace(p.Throws), strings.TrimSpace(p.Bats)
	if t == "" || b == "" {
		return ""
	}
	return strings.ToUpper(t) + "/" + strings.ToUpper(b)
}
