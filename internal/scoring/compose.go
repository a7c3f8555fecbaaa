package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-checker/internal/types"
)

// excerptLimit bounds reasoning and cultural-fit excerpts in strengths/gaps.
const excerptLimit = 200

// ScoreComposer blends deterministic and semantic scores under the fixed
// weights, assigns a grade, and compiles strengths and gaps. Pure and safely
// reentrant.
type ScoreComposer struct {
	weights Weights
}

// NewScoreComposer creates a composer with the given weight set.
func NewScoreComposer(w Weights) *ScoreComposer {
	return &ScoreComposer{weights: w}
}

// Compose builds the final hybrid score from the two components.
func (c *ScoreComposer) Compose(det types.DeterministicScore, sem types.SemanticScore) types.HybridScore {
	final := round2(det.TotalScore*c.weights.DeterministicShare + sem.TotalScore*c.weights.SemanticShare)

	return types.HybridScore{
		FinalScore:    final,
		Grade:         Grade(final),
		Deterministic: det,
		Semantic:      sem,
		Strengths:     compileStrengths(det, sem),
		Gaps:          compileGaps(det, sem),
	}
}

// Grade converts a numeric score to a letter grade using fixed thresholds.
func Grade(score float64) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	case score >= 80:
		return "B"
	case score >= 75:
		return "C+"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// compileStrengths collects up to 5 strengths in fixed priority order:
// matched skills, experience alignment, transferable skills, then a reasoning
// excerpt as filler when fewer than 3 were found.
func compileStrengths(det types.DeterministicScore, sem types.SemanticScore) []string {
	strengths := make([]string, 0, 5)

	if len(det.MatchedSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Strong match on %d required skills: %s",
			len(det.MatchedSkills), strings.Join(headOf(det.MatchedSkills, 5), ", ")))
	}

	if det.ExperienceAlignmentPercent >= 90 {
		strengths = append(strengths, "Excellent experience level alignment")
	}

	if len(sem.TransferableSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Transferable skills identified: %s",
			strings.Join(headOf(sem.TransferableSkills, 3), ", ")))
	}

	if len(strengths) < 3 && sem.Reasoning != "" {
		strengths = append(strengths, excerpt(sem.Reasoning, excerptLimit))
	}

	return headOf(strengths, 5)
}

// compileGaps collects up to 5 gaps: missing skills, then each experience gap
// annotation in insertion order, then cultural-fit notes when they mention a
// concern.
func compileGaps(det types.DeterministicScore, sem types.SemanticScore) []string {
	gaps := make([]string, 0, 5)

	if len(det.MissingSkills) > 0 {
		gaps = append(gaps, fmt.Sprintf("Missing %d required skills: %s",
			len(det.MissingSkills), strings.Join(headOf(det.MissingSkills, 5), ", ")))
	}

	for _, gap := range det.ExperienceGaps {
		gaps = append(gaps, gap.Description)
	}

	if sem.CulturalFitNotes != "" && strings.Contains(strings.ToLower(sem.CulturalFitNotes), "concern") {
		gaps = append(gaps, excerpt(sem.CulturalFitNotes, excerptLimit))
	}

	return headOf(gaps, 5)
}

// headOf returns at most n leading elements of items.
func headOf(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// excerpt truncates text to at most limit characters.
func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
