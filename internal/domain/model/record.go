// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math"
	"strings"
)

// Role separates the two graded populations.
type Role string

const (
	RoleBatter  Role = "batter"
	RolePitcher Role = "pitcher"
)

// Roles lists every role in output order.
var Roles = []Role{RoleBatter, RolePitcher}

// ParseRole accepts "batter"/"batters" and "pitcher"/"pitchers" in any case.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "batter", "batters", "hitter", "hitters":
		return RoleBatter, nil
	case "pitcher", "pitchers":
		return RolePitcher, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// BullpenRole is the pitcher usage sub-tag.
type BullpenRole string

const (
	BullpenStarter BullpenRole = "Starter"
	BullpenCloser  BullpenRole = "Closer"
	BullpenSetup   BullpenRole = "Setup"
	BullpenMiddle  BullpenRole = "Middle"
	BullpenLong    BullpenRole = "Long"
	BullpenUnknown BullpenRole = "Unknown"
)

// ParseBullpenRole maps a source value to a BullpenRole. Unrecognized values yield BullpenUnknown.
func ParseBullpenRole(s string) BullpenRole {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "starter", "sp", "선발":
		return BullpenStarter
	case "closer", "cl", "마무리":
		return BullpenCloser
	case "setup", "su", "셋업":
		return BullpenSetup
	case "middle", "mr", "중간":
		return BullpenMiddle
	case "long", "lr", "롱릴리프":
		return BullpenLong
	default:
		return BullpenUnknown
	}
}

// IsReliever reports whether the pitcher works out of the bullpen.
func (b BullpenRole) IsReliever() bool {
	switch b {
	case BullpenCloser, BullpenSetup, BullpenMiddle, BullpenLong:
		return true
	default:
		return false
	}
}

// Opportunity stat keys.
const (
	KeyPlateAppearances = "plate_appearances"
	KeyInningsPitched   = "total_innings_pitched"
)

// RawStatRecord is one input row for a (player, season). An absent key in
// Values means the metric is missing for that season.
type RawStatRecord struct {
	PlayerCode  string
	Name        string
	Team        string
	Season      int
	Role        Role
	BullpenRole BullpenRole
	Position    string
	Values      map[string]float64
}

// Value returns the raw value for key and whether it is present.
func (r *RawStatRecord) Value(key string) (float64, bool) {
	v, ok := r.Values[key]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Opportunity returns the sample size used for opportunity weighting:
// plate appearances for batters, innings (as true thirds) for pitchers.
func (r *RawStatRecord) Opportunity() (float64, bool) {
	if r.Role == RolePitcher {
		v, ok := r.Value(KeyInningsPitched)
		if !ok {
			return 0, false
		}
		return Innings(v), true
	}
	return r.Value(KeyPlateAppearances)
}

// Innings converts baseball notation (45.2 = 45 and two thirds) into a true
// decimal inning count. Fractions other than .1 and .2 are taken as-is.
func Innings(notation float64) float64 {
	whole := math.Trunc(notation)
	outs := math.Round((notation - whole) * 10)
	switch outs {
	case 0:
		return whole
	case 1, 2:
		return whole + outs/3
	default:
		return notation
	}
}
