package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/cv-checker/internal/types"
)

// DeterministicScorer computes skill-overlap and experience-alignment metrics
// with local, reproducible arithmetic. It is pure and safely reentrant.
type DeterministicScorer struct {
	weights Weights
}

// NewDeterministicScorer creates a scorer with the given weight set.
func NewDeterministicScorer(w Weights) *DeterministicScorer {
	return &DeterministicScorer{weights: w}
}

// normalizeSkillSet lower-cases and trims skill names into a set, dropping
// empties.
func normalizeSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// SkillMatch computes the percentage of required skills the candidate covers,
// plus the matched and missing sets in sorted order. An empty required set is
// a vacuous 100% match.
func (s *DeterministicScorer) SkillMatch(required, candidate []string) (float64, []string, []string) {
	requiredSet := normalizeSkillSet(required)
	candidateSet := normalizeSkillSet(candidate)

	if len(requiredSet) == 0 {
		return 100.0, nil, nil
	}

	matched := make([]string, 0, len(requiredSet))
	missing := make([]string, 0, len(requiredSet))
	for skill := range requiredSet {
		if candidateSet[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	percent := float64(len(matched)) / float64(len(requiredSet)) * 100

	return percent, matched, missing
}

// ExperienceAlignment computes how well the candidate's years of experience
// align with the requirement. Over-qualification beyond twice the requirement
// decays linearly to a floor of 90; under-qualification decays linearly to 0.
func (s *DeterministicScorer) ExperienceAlignment(requiredYears int, candidateYears float64) (float64, []types.ExperienceGap) {
	var gaps []types.ExperienceGap
	required := float64(requiredYears)
	if required < 0 {
		required = 0
	}
	if candidateYears < 0 {
		candidateYears = 0
	}

	if candidateYears >= required {
		if candidateYears <= required*2 {
			return 100.0, nil
		}
		alignment := 100 - (candidateYears-required*2)*2
		if alignment < 90 {
			alignment = 90
		}
		gaps = append(gaps, types.ExperienceGap{
			Type:        types.GapOverQualified,
			Description: fmt.Sprintf("Candidate has %.1f years beyond requirement", candidateYears-required),
		})
		return alignment, gaps
	}

	// Under-qualified: linear penalty. This branch is unreachable for a zero
	// requirement, so the division is safe.
	shortage := required - candidateYears
	alignment := 100 - shortage/required*100
	if alignment < 0 {
		alignment = 0
	}
	gaps = append(gaps, types.ExperienceGap{
		Type:        types.GapUnderQualified,
		Description: fmt.Sprintf("Missing %.1f years of experience", shortage),
	})
	return alignment, gaps
}

// Score combines skill match and experience alignment under the fixed
// deterministic weights, rounded to two decimals.
func (s *DeterministicScorer) Score(job *types.JobRequirements, cv *types.CandidateProfile) types.DeterministicScore {
	skillMatch, matched, missing := s.SkillMatch(job.RequiredSkills, cv.Skills)
	expAlign, expGaps := s.ExperienceAlignment(job.RequiredYears, cv.TotalYearsExperience)

	total := skillMatch*s.weights.Skill + expAlign*s.weights.Experience

	return types.DeterministicScore{
		SkillMatchPercent:          round2(skillMatch),
		ExperienceAlignmentPercent: round2(expAlign),
		TotalScore:                 round2(total),
		MatchedSkills:              matched,
		MissingSkills:              missing,
		ExperienceGaps:             expGaps,
	}
}
