package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-checker/internal/llm"
	"github.com/jonathan/cv-checker/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func TestSemanticValidator_Success(t *testing.T) {
	var capturedPrompt string
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
			capturedPrompt = prompt
			assert.Equal(t, llm.TierAdvanced, tier)
			return `{
				"semantic_match_percent": 80,
				"soft_skills_match_percent": 60,
				"reasoning": "strong adjacent stack",
				"transferable_skills": ["aws"],
				"cultural_fit_notes": "good fit"
			}`, nil
		},
	}

	validator := NewSemanticValidator(mockClient, DefaultWeights(), nil)
	baseline := types.DeterministicScore{
		SkillMatchPercent: 50,
		MatchedSkills:     []string{"python"},
		MissingSkills:     []string{"fastapi"},
	}

	score, err := validator.Validate(context.Background(), "job text", "cv text", baseline)

	require.NoError(t, err)
	assert.InDelta(t, 80.0, score.SemanticMatchPercent, 0.001)
	assert.InDelta(t, 60.0, score.SoftSkillsMatchPercent, 0.001)
	// 80*0.625 + 60*0.375 = 72.5
	assert.InDelta(t, 72.5, score.TotalScore, 0.001)
	assert.Equal(t, "strong adjacent stack", score.Reasoning)
	assert.Equal(t, []string{"aws"}, score.TransferableSkills)

	// Prompt carries the deterministic baseline so judgment is anchored
	assert.Contains(t, capturedPrompt, "Skill Match: 50.00%")
	assert.Contains(t, capturedPrompt, "python")
	assert.Contains(t, capturedPrompt, "fastapi")
	assert.Contains(t, capturedPrompt, "job text")
	assert.Contains(t, capturedPrompt, "cv text")
}

func TestSemanticValidator_ClampsOutOfRangeValues(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"semantic_match_percent": 150, "soft_skills_match_percent": -20}`, nil
		},
	}

	validator := NewSemanticValidator(mockClient, DefaultWeights(), nil)

	score, err := validator.Validate(context.Background(), "job", "cv", types.DeterministicScore{})

	require.NoError(t, err)
	assert.InDelta(t, 100.0, score.SemanticMatchPercent, 0.001)
	assert.InDelta(t, 0.0, score.SoftSkillsMatchPercent, 0.001)
}

func TestSemanticValidator_MissingFieldsDefaultToZero(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"reasoning": "no numbers provided"}`, nil
		},
	}

	validator := NewSemanticValidator(mockClient, DefaultWeights(), nil)

	score, err := validator.Validate(context.Background(), "job", "cv", types.DeterministicScore{})

	require.NoError(t, err)
	assert.InDelta(t, 0.0, score.SemanticMatchPercent, 0.001)
	assert.InDelta(t, 0.0, score.TotalScore, 0.001)
	assert.Equal(t, "no numbers provided", score.Reasoning)
}

func TestSemanticValidator_MalformedResponse(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `not json at all`, nil
		},
	}

	validator := NewSemanticValidator(mockClient, DefaultWeights(), nil)

	_, err := validator.Validate(context.Background(), "job", "cv", types.DeterministicScore{})

	require.Error(t, err)
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestSemanticValidator_WrongShapeResponse(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"semantic_match_percent": "eighty"}`, nil
		},
	}

	validator := NewSemanticValidator(mockClient, DefaultWeights(), nil)

	_, err := validator.Validate(context.Background(), "job", "cv", types.DeterministicScore{})

	require.Error(t, err)
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestSemanticValidator_TransportErrorPropagates(t *testing.T) {
	transportErr := &llm.TransportError{Op: "generate", Cause: errors.New("rate limit exceeded")}
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", transportErr
		},
	}

	validator := NewSemanticValidator(mockClient, DefaultWeights(), nil)

	_, err := validator.Validate(context.Background(), "job", "cv", types.DeterministicScore{})

	require.Error(t, err)
	var tErr *llm.TransportError
	assert.ErrorAs(t, err, &tErr)
	var valErr *ValidationError
	assert.False(t, errors.As(err, &valErr))
}
