// Package parsing provides the structured extractors that turn free-text
// documents into domain records via LLM extraction.
package parsing

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/jonathan/cv-checker/internal/llm"
	"github.com/jonathan/cv-checker/internal/schemas"
	"github.com/jonathan/cv-checker/internal/types"
)

// JobExtractor extracts structured requirements from job postings.
type JobExtractor struct {
	client llm.Client
	log    *zap.Logger
}

// NewJobExtractor creates a job extractor backed by the given client.
func NewJobExtractor(client llm.Client, logger *zap.Logger) *JobExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobExtractor{client: client, log: logger}
}

// jobPayload mirrors the LLM response. Numeric fields are pointers so that
// null and absent both coerce to the documented defaults.
type jobPayload struct {
	JobTitle              string   `json:"job_title"`
	Company               string   `json:"company"`
	Location              string   `json:"location"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	RequiredYears         *float64 `json:"required_years"`
	EducationRequirements string   `json:"education_requirements"`
	KeyResponsibilities   []string `json:"key_responsibilities"`
	RoleType              string   `json:"role_type"`
}

// Extract parses a job posting into structured requirements. It returns an
// *ExtractionError when the response is malformed; transport failures from
// the completion capability propagate unchanged.
func (e *JobExtractor) Extract(ctx context.Context, jobText string) (*types.JobRequirements, error) {
	e.log.Info("parsing job description", zap.Int("length", len(jobText)))

	prompt := llm.BuildExtractionPrompt(llm.JobRequirementsSchema(), jobText)

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.JobRequirements, responseText); err != nil {
		return nil, &ExtractionError{Doc: DocJob, Message: "malformed response", Cause: err}
	}

	var payload jobPayload
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
		return nil, &ExtractionError{Doc: DocJob, Message: "failed to parse JSON response", Cause: err}
	}

	req := &types.JobRequirements{
		JobTitle:              payload.JobTitle,
		Company:               payload.Company,
		Location:              payload.Location,
		RequiredSkills:        NormalizeSkills(payload.RequiredSkills),
		PreferredSkills:       NormalizeSkills(payload.PreferredSkills),
		EducationRequirements: payload.EducationRequirements,
		KeyResponsibilities:   payload.KeyResponsibilities,
		RoleType:              normalizeRoleType(payload.RoleType),
	}

	// Unspecified experience requirement means none
	if payload.RequiredYears != nil && *payload.RequiredYears > 0 {
		req.RequiredYears = int(*payload.RequiredYears)
	}
	if req.KeyResponsibilities == nil {
		req.KeyResponsibilities = []string{}
	}

	e.log.Info("job parsing complete",
		zap.String("title", req.JobTitle),
		zap.Int("required_skills", len(req.RequiredSkills)),
		zap.Int("required_years", req.RequiredYears))

	return req, nil
}
