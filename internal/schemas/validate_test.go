package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ConformingDocument(t *testing.T) {
	doc := `{
		"job_title": "Engineer",
		"required_skills": ["go"],
		"required_years": 5,
		"role_type": "senior"
	}`

	assert.NoError(t, Validate(JobRequirements, doc))
}

func TestValidate_NullFieldsAccepted(t *testing.T) {
	doc := `{
		"job_title": "Engineer",
		"required_skills": null,
		"required_years": null,
		"role_type": null
	}`

	assert.NoError(t, Validate(JobRequirements, doc))
}

func TestValidate_MissingFieldsAccepted(t *testing.T) {
	// Missing fields are defaulted downstream, so the schemas only reject
	// wrong shapes, never absence.
	assert.NoError(t, Validate(JobRequirements, `{}`))
	assert.NoError(t, Validate(CandidateProfile, `{}`))
	assert.NoError(t, Validate(SemanticJudgment, `{}`))
	assert.NoError(t, Validate(RecommendationReport, `{}`))
}

func TestValidate_WrongTypeRejected(t *testing.T) {
	err := Validate(JobRequirements, `{"job_title": 42}`)

	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.NotEmpty(t, valErr.Errors)
	assert.Equal(t, "job_title", valErr.Errors[0].Field)
}

func TestValidate_WrongElementTypeRejected(t *testing.T) {
	err := Validate(JobRequirements, `{"required_skills": [1, 2]}`)

	require.Error(t, err)
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestValidate_NotJSONAtAll(t *testing.T) {
	err := Validate(JobRequirements, `certainly not json`)

	require.Error(t, err)
	var valErr *ValidationError
	assert.False(t, errors.As(err, &valErr),
		"non-JSON input should be a plain error, not a ValidationError")
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := Validate(SemanticJudgment, `{"semantic_match_percent": "eighty"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "semantic_match_percent")
}
