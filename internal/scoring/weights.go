// Package scoring implements the hybrid scoring algorithm: deterministic
// skill/experience arithmetic, LLM semantic validation, and the fixed-weight
// blend that composes them.
package scoring

import (
	"fmt"
	"math"
)

// weightTolerance is the floating tolerance for weight-sum checks.
const weightTolerance = 1e-9

// Weights holds the fixed scoring weights. They are passed explicitly into
// the components rather than read from ambient state so test runs can carry
// different sets in parallel.
type Weights struct {
	// Deterministic components (must sum to 1.0)
	Skill      float64
	Experience float64

	// Semantic components (must sum to 1.0)
	Semantic   float64
	SoftSkills float64

	// Hybrid blend (must sum to 1.0)
	DeterministicShare float64
	SemanticShare      float64
}

// DefaultWeights returns the production weight set.
func DefaultWeights() Weights {
	return Weights{
		Skill:              0.667,
		Experience:         0.333,
		Semantic:           0.625,
		SoftSkills:         0.375,
		DeterministicShare: 0.60,
		SemanticShare:      0.40,
	}
}

// Validate checks that each weight pair sums to 1.0 within floating tolerance.
func (w Weights) Validate() error {
	pairs := []struct {
		name string
		sum  float64
	}{
		{"skill/experience", w.Skill + w.Experience},
		{"semantic/soft_skills", w.Semantic + w.SoftSkills},
		{"deterministic/semantic shares", w.DeterministicShare + w.SemanticShare},
	}
	for _, p := range pairs {
		if math.Abs(p.sum-1.0) > weightTolerance {
			return fmt.Errorf("weights %s must sum to 1.0, got %v", p.name, p.sum)
		}
	}
	return nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampPercent clamps a value to the [0,100] range.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
