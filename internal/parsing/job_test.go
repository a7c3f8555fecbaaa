package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-checker/internal/llm"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
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

func TestJobExtractor_Success(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
			assert.Equal(t, llm.TierStandard, tier)
			assert.Contains(t, prompt, "Senior Backend Engineer posting text")
			return `{
				"job_title": "Senior Backend Engineer",
				"company": "Acme",
				"location": "Berlin",
				"required_skills": ["golang", "postgres", "Go"],
				"preferred_skills": ["k8s"],
				"required_years": 5,
				"education_requirements": "Bachelor's in CS",
				"key_responsibilities": ["Design services", "Mentor juniors"],
				"role_type": "senior"
			}`, nil
		},
	}

	extractor := NewJobExtractor(mockClient, nil)

	job, err := extractor.Extract(context.Background(), "Senior Backend Engineer posting text")

	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", job.JobTitle)
	assert.Equal(t, "Acme", job.Company)
	// Aliases canonicalized and duplicates collapsed
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.RequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, job.PreferredSkills)
	assert.Equal(t, 5, job.RequiredYears)
	assert.Equal(t, "senior", job.RoleType)
	assert.Len(t, job.KeyResponsibilities, 2)
}

func TestJobExtractor_NullAndMissingFieldsDefault(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{
				"job_title": "Engineer",
				"required_skills": ["go"],
				"required_years": null,
				"role_type": null
			}`, nil
		},
	}

	extractor := NewJobExtractor(mockClient, nil)

	job, err := extractor.Extract(context.Background(), "posting")

	require.NoError(t, err)
	assert.Equal(t, 0, job.RequiredYears)
	assert.Equal(t, "mid", job.RoleType)
	assert.NotNil(t, job.KeyResponsibilities)
	assert.Empty(t, job.KeyResponsibilities)
}

func TestJobExtractor_FractionalYearsTruncated(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"job_title": "Engineer", "required_skills": [], "required_years": 5.0, "role_type": "mid"}`, nil
		},
	}

	extractor := NewJobExtractor(mockClient, nil)

	job, err := extractor.Extract(context.Background(), "posting")

	require.NoError(t, err)
	assert.Equal(t, 5, job.RequiredYears)
}

func TestJobExtractor_MalformedResponse(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `this is not json`, nil
		},
	}

	extractor := NewJobExtractor(mockClient, nil)

	_, err := extractor.Extract(context.Background(), "posting")

	require.Error(t, err)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, DocJob, extractErr.Doc)
}

func TestJobExtractor_WrongShapeResponse(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"job_title": 42, "required_skills": "go"}`, nil
		},
	}

	extractor := NewJobExtractor(mockClient, nil)

	_, err := extractor.Extract(context.Background(), "posting")

	require.Error(t, err)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, DocJob, extractErr.Doc)
}

func TestJobExtractor_TransportErrorPropagates(t *testing.T) {
	transportErr := &llm.TransportError{Op: "generate", Cause: errors.New("quota exceeded")}
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", transportErr
		},
	}

	extractor := NewJobExtractor(mockClient, nil)

	_, err := extractor.Extract(context.Background(), "posting")

	require.Error(t, err)
	var tErr *llm.TransportError
	assert.ErrorAs(t, err, &tErr)
	var extractErr *ExtractionError
	assert.False(t, errors.As(err, &extractErr))
}
