// Package archetype assigns exactly one player-style tag from an ordered rule list.
//
// Rules are evaluated top to bottom and the first match wins. The final rule
// of each list always matches, so classification is total.
package archetype

import (
	"github.com/okian/scout/internal/domain/grading"
	"github.com/okian/scout/internal/domain/model"
)

// Tag is an archetype label.
type Tag string

// Input is what the classifier may look at.
type Input struct {
	Role        model.Role
	BullpenRole model.BullpenRole
	// Scores are the effective category grades.
	Scores  map[string]int
	Overall int
	// Raw are the unnormalized input values of the record.
	Raw map[string]float64
}

// Score returns the category grade, neutral when absent.
func (in Input) Score(category string) int {
	if s, ok := in.Scores[category]; ok {
		return s
	}
	return grading.NeutralGrade
}

func (in Input) raw(key string) (float64, bool) {
	v, ok := in.Raw[key]
	return v, ok
}

func (in Input) allAtLeast(min int, categories ...string) bool {
	for _, c := range categories {
		if in.Score(c) < min {
			return false
		}
	}
	return true
}

// Rule pairs a tag with its predicate.
type Rule struct {
	Tag   Tag
	Match func(Input) bool
}

// Rules returns the ordered rule list of role. Order is part of the contract.
func Rules(role model.Role) []Rule {
	if role == model.RolePitcher {
		return pitcherRules
	}
	return batterRules
}

// Classify returns the tag of the first matching rule.
func Classify(in Input) Tag {
	rules := Rules(in.Role)
	for _, r := range rules {
		if r.Match(in) {
			return r.Tag
		}
	}
	// unreachable while the last rule is a catch-all
	return rules[len(rules)-1].Tag
}

func always(Input) bool { return true }
