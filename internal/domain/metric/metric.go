// Package metric holds the fixed metric definition tables and the metric normalizer.
package metric

import "github.com/okian/scout/internal/domain/model"

// Kind describes how a raw value maps to the comparison axis.
type Kind int

const (
	// KindPercent values are already on a 0-100 scale.
	KindPercent Kind = iota
	// KindRatio values are 0-1 ratios scaled by 100.
	KindRatio
	// KindRaw values stay in their natural unit (average, km/h, wOBA).
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindPercent:
		return "percent"
	case KindRatio:
		return "ratio"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Definition is one graded metric. Inverse marks lower-is-better metrics;
// it is applied at grading and percentile time, never during normalization.
type Definition struct {
	Key      string
	Name     string
	Category string
	Weight   float64
	Kind     Kind
	Inverse  bool
	Unit     string
}

// Category is an ordered group of metric definitions.
type Category struct {
	Key     string
	Name    string
	Metrics []Definition
}

// Normalize maps a raw value onto the comparison axis of def.
func Normalize(def Definition, raw float64) float64 {
	if def.Kind == KindRatio {
		return raw * 100
	}
	return raw
}

// Categories returns the ordered categories of role. The returned slice is shared; do not modify.
func Categories(role model.Role) []Category {
	if role == model.RolePitcher {
		return pitcherCategories
	}
	return batterCategories
}

// CategoryKeys returns category keys of role in output order.
func CategoryKeys(role model.Role) []string {
	cats := Categories(role)
	keys := make([]string, len(cats))
	for i, c := range cats {
		keys[i] = c.Key
	}
	return keys
}

// Definitions returns every metric definition of role in table order.
func Definitions(role model.Role) []Definition {
	if role == model.RolePitcher {
		return pitcherDefs
	}
	return batterDefs
}

// Lookup finds a metric definition of role by key.
func Lookup(role model.Role, key string) (Definition, bool) {
	idx := batterIndex
	if role == model.RolePitcher {
		idx = pitcherIndex
	}
	d, ok := idx[key]
	return d, ok
}

// IsCategory reports whether key names a category of role.
func IsCategory(role model.Role, key string) bool {
	for _, c := range Categories(role) {
		if c.Key == key {
			return true
		}
	}
	return false
}

// Traditional returns the traditional stat keys carried through for role.
func Traditional(role model.Role) []string {
	if role == model.RolePitcher {
		return pitcherTraditional
	}
	return batterTraditional
}

// IsTraditional reports whether key is a traditional stat of role.
func IsTraditional(role model.Role, key string) bool {
	for _, k := range Traditional(role) {
		if k == key {
			return true
		}
	}
	return false
}

var (
	batterDefs, pitcherDefs   []Definition
	batterIndex, pitcherIndex map[string]Definition
)

func init() {
	batterDefs, batterIndex = flatten(batterCategories)
	pitcherDefs, pitcherIndex = flatten(pitcherCategories)
}

func flatten(cats []Category) ([]Definition, map[string]Definition) {
	var defs []Definition
	idx := make(map[string]Definition)
	for ci := range cats {
		for mi := range cats[ci].Metrics {
			cats[ci].Metrics[mi].Category = cats[ci].Key
			d := cats[ci].Metrics[mi]
			defs = append(defs, d)
			idx[d.Key] = d
		}
	}
	return defs, idx
}
