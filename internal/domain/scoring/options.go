package scoring

import "github.com/okian/scout/internal/domain/model"

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithPolicy sets how category scores treat missing metrics.
func WithPolicy(p Policy) Option {
	return func(s *Scorer) {
		s.policy = p
	}
}

// WithQualifying sets the opportunity thresholds. Non-positive values disable
// the discount for that role.
func WithQualifying(plateAppearances, innings float64) Option {
	return func(s *Scorer) {
		s.qualifyingPA = plateAppearances
		s.qualifyingInnings = innings
	}
}

// WithOverallWeights overrides the category weights used for the overall grade of role.
func WithOverallWeights(role model.Role, weights map[string]float64) Option {
	return func(s *Scorer) {
		// copy to avoid external modifications
		w := make(map[string]float64, len(weights))
		for k, v := range weights {
			if v > 0 {
				w[k] = v
			}
		}
		if len(w) == 0 {
			return
		}
		s.overallWeights[role] = w
	}
}
