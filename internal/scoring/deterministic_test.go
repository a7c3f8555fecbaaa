package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-checker/internal/types"
)

func TestSkillMatch_CaseAndWhitespaceInsensitive(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	percent, matched, missing := scorer.SkillMatch(
		[]string{"Python", "  FastAPI  "},
		[]string{"  python", "fastapi"},
	)

	assert.InDelta(t, 100.0, percent, 0.001)
	assert.Equal(t, []string{"fastapi", "python"}, matched)
	assert.Empty(t, missing)
}

func TestSkillMatch_PartialOverlap(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	percent, matched, missing := scorer.SkillMatch(
		[]string{"Python", "FastAPI"},
		[]string{"python", "Django"},
	)

	assert.InDelta(t, 50.0, percent, 0.001)
	assert.Equal(t, []string{"python"}, matched)
	assert.Equal(t, []string{"fastapi"}, missing)
}

func TestSkillMatch_EmptyRequiredIsVacuousMatch(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	percent, matched, missing := scorer.SkillMatch(nil, []string{"go", "postgres"})

	assert.InDelta(t, 100.0, percent, 0.001)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestSkillMatch_NoCandidateSkills(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	percent, matched, missing := scorer.SkillMatch([]string{"go", "kubernetes"}, nil)

	assert.InDelta(t, 0.0, percent, 0.001)
	assert.Empty(t, matched)
	assert.Equal(t, []string{"go", "kubernetes"}, missing)
}

func TestSkillMatch_DuplicatesCollapse(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	percent, matched, _ := scorer.SkillMatch(
		[]string{"Go", "go", "GO "},
		[]string{"go"},
	)

	assert.InDelta(t, 100.0, percent, 0.001)
	assert.Equal(t, []string{"go"}, matched)
}

func TestExperienceAlignment_ExactMatch(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	alignment, gaps := scorer.ExperienceAlignment(5, 5)

	assert.InDelta(t, 100.0, alignment, 0.001)
	assert.Empty(t, gaps)
}

func TestExperienceAlignment_WithinDoubleIsPerfect(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	alignment, gaps := scorer.ExperienceAlignment(5, 10)

	assert.InDelta(t, 100.0, alignment, 0.001)
	assert.Empty(t, gaps)
}

func TestExperienceAlignment_OverQualified(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	alignment, gaps := scorer.ExperienceAlignment(5, 11)

	// 100 - (11 - 10)*2 = 98
	assert.InDelta(t, 98.0, alignment, 0.001)
	require.Len(t, gaps, 1)
	assert.Equal(t, types.GapOverQualified, gaps[0].Type)
	assert.Equal(t, "Candidate has 6.0 years beyond requirement", gaps[0].Description)
}

func TestExperienceAlignment_OverQualifiedFloorsAt90(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	alignment, gaps := scorer.ExperienceAlignment(2, 30)

	assert.InDelta(t, 90.0, alignment, 0.001)
	require.Len(t, gaps, 1)
	assert.Equal(t, types.GapOverQualified, gaps[0].Type)
}

func TestExperienceAlignment_UnderQualified(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	alignment, gaps := scorer.ExperienceAlignment(5, 3)

	// 100 - 2/5*100 = 60
	assert.InDelta(t, 60.0, alignment, 0.001)
	require.Len(t, gaps, 1)
	assert.Equal(t, types.GapUnderQualified, gaps[0].Type)
	assert.Equal(t, "Missing 2.0 years of experience", gaps[0].Description)
}

func TestExperienceAlignment_NoExperienceAtAll(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	alignment, gaps := scorer.ExperienceAlignment(5, 0)

	assert.InDelta(t, 0.0, alignment, 0.001)
	require.Len(t, gaps, 1)
	assert.Equal(t, "Missing 5.0 years of experience", gaps[0].Description)
}

func TestExperienceAlignment_NoRequirement(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	alignment, gaps := scorer.ExperienceAlignment(0, 0)

	assert.InDelta(t, 100.0, alignment, 0.001)
	assert.Empty(t, gaps)
}

func TestScore_BlendsSkillAndExperience(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	job := &types.JobRequirements{
		RequiredSkills: []string{"Python", "FastAPI"},
		RequiredYears:  5,
	}
	cv := &types.CandidateProfile{
		Skills:               []string{"python", "Django"},
		TotalYearsExperience: 5,
	}

	score := scorer.Score(job, cv)

	assert.InDelta(t, 50.0, score.SkillMatchPercent, 0.001)
	assert.InDelta(t, 100.0, score.ExperienceAlignmentPercent, 0.001)
	// 50*0.667 + 100*0.333 = 66.65
	assert.InDelta(t, 66.65, score.TotalScore, 0.001)
	assert.Equal(t, []string{"python"}, score.MatchedSkills)
	assert.Equal(t, []string{"fastapi"}, score.MissingSkills)
	assert.Empty(t, score.ExperienceGaps)
}

func TestScore_IsDeterministic(t *testing.T) {
	scorer := NewDeterministicScorer(DefaultWeights())

	job := &types.JobRequirements{
		RequiredSkills: []string{"go", "postgres", "docker"},
		RequiredYears:  4,
	}
	cv := &types.CandidateProfile{
		Skills:               []string{"go", "docker"},
		TotalYearsExperience: 2.5,
	}

	first := scorer.Score(job, cv)
	second := scorer.Score(job, cv)

	assert.Equal(t, first, second)
}
