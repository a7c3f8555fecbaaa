package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-checker/internal/types"
)

func TestGrade_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		grade string
	}{
		{100, "A+"},
		{95, "A+"},
		{94.99, "A"},
		{90, "A"},
		{89.99, "B+"},
		{85, "B+"},
		{84.99, "B"},
		{80, "B"},
		{79.99, "C+"},
		{75, "C+"},
		{74.99, "C"},
		{70, "C"},
		{69.99, "D"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, Grade(tt.score), "score %.2f", tt.score)
	}
}

func TestCompose_Blend(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	det := types.DeterministicScore{TotalScore: 80}
	sem := types.SemanticScore{TotalScore: 60}

	hybrid := composer.Compose(det, sem)

	// 80*0.60 + 60*0.40 = 72
	assert.InDelta(t, 72.0, hybrid.FinalScore, 0.001)
	assert.Equal(t, "C", hybrid.Grade)
	assert.Equal(t, det, hybrid.Deterministic)
	assert.Equal(t, sem, hybrid.Semantic)
}

func TestCompose_RoundsToTwoDecimals(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	hybrid := composer.Compose(
		types.DeterministicScore{TotalScore: 66.666},
		types.SemanticScore{TotalScore: 33.333},
	)

	// 66.666*0.6 + 33.333*0.4 = 53.3328 -> 53.33
	assert.InDelta(t, 53.33, hybrid.FinalScore, 0.0001)
}

func TestCompileStrengths_PriorityOrder(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	det := types.DeterministicScore{
		MatchedSkills:              []string{"go", "postgres", "docker"},
		ExperienceAlignmentPercent: 95,
	}
	sem := types.SemanticScore{
		TransferableSkills: []string{"aws", "terraform"},
		Reasoning:          "solid backend profile",
	}

	hybrid := composer.Compose(det, sem)

	require.Len(t, hybrid.Strengths, 3)
	assert.Equal(t, "Strong match on 3 required skills: go, postgres, docker", hybrid.Strengths[0])
	assert.Equal(t, "Excellent experience level alignment", hybrid.Strengths[1])
	assert.Equal(t, "Transferable skills identified: aws, terraform", hybrid.Strengths[2])
}

func TestCompileStrengths_ReasoningFillerWhenSparse(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	sem := types.SemanticScore{Reasoning: "limited overlap but strong fundamentals"}

	hybrid := composer.Compose(types.DeterministicScore{}, sem)

	require.Len(t, hybrid.Strengths, 1)
	assert.Equal(t, "limited overlap but strong fundamentals", hybrid.Strengths[0])
}

func TestCompileStrengths_ReasoningExcerptTruncated(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	long := strings.Repeat("x", 500)
	hybrid := composer.Compose(types.DeterministicScore{}, types.SemanticScore{Reasoning: long})

	require.Len(t, hybrid.Strengths, 1)
	assert.Len(t, hybrid.Strengths[0], 200)
}

func TestCompileStrengths_SkillListTruncatedAtFive(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	det := types.DeterministicScore{
		MatchedSkills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	hybrid := composer.Compose(det, types.SemanticScore{})

	require.NotEmpty(t, hybrid.Strengths)
	assert.Equal(t, "Strong match on 7 required skills: a, b, c, d, e", hybrid.Strengths[0])
}

func TestCompileGaps_PriorityOrder(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	det := types.DeterministicScore{
		MissingSkills: []string{"kubernetes", "rust"},
		ExperienceGaps: []types.ExperienceGap{
			{Type: types.GapUnderQualified, Description: "Missing 2.0 years of experience"},
		},
	}
	sem := types.SemanticScore{
		CulturalFitNotes: "Some concern about pace of delivery in startup settings",
	}

	hybrid := composer.Compose(det, sem)

	require.Len(t, hybrid.Gaps, 3)
	assert.Equal(t, "Missing 2 required skills: kubernetes, rust", hybrid.Gaps[0])
	assert.Equal(t, "Missing 2.0 years of experience", hybrid.Gaps[1])
	assert.Contains(t, hybrid.Gaps[2], "concern about pace")
}

func TestCompileGaps_CulturalNotesWithoutConcernIgnored(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	sem := types.SemanticScore{CulturalFitNotes: "great collaborative energy"}

	hybrid := composer.Compose(types.DeterministicScore{}, sem)

	assert.Empty(t, hybrid.Gaps)
}

func TestCompileGaps_CappedAtFive(t *testing.T) {
	composer := NewScoreComposer(DefaultWeights())

	det := types.DeterministicScore{
		MissingSkills: []string{"a"},
		ExperienceGaps: []types.ExperienceGap{
			{Description: "gap 1"}, {Description: "gap 2"}, {Description: "gap 3"},
			{Description: "gap 4"}, {Description: "gap 5"},
		},
	}

	hybrid := composer.Compose(det, types.SemanticScore{CulturalFitNotes: "a concern"})

	assert.Len(t, hybrid.Gaps, 5)
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())

	bad := DefaultWeights()
	bad.Skill = 0.5
	assert.Error(t, bad.Validate())

	bad = DefaultWeights()
	bad.DeterministicShare = 0.7
	assert.Error(t, bad.Validate())
}
