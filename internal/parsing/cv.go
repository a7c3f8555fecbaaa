package parsing

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/jonathan/cv-checker/internal/llm"
	"github.com/jonathan/cv-checker/internal/schemas"
	"github.com/jonathan/cv-checker/internal/types"
)

// CVExtractor extracts a structured candidate profile from CV text.
type CVExtractor struct {
	client llm.Client
	log    *zap.Logger
}

// NewCVExtractor creates a CV extractor backed by the given client.
func NewCVExtractor(client llm.Client, logger *zap.Logger) *CVExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CVExtractor{client: client, log: logger}
}

type cvExperiencePayload struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	DurationYears    *float64 `json:"duration_years"`
	Responsibilities []string `json:"responsibilities"`
}

type cvEducationPayload struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	GraduationYear *float64 `json:"graduation_year"`
}

type cvPayload struct {
	CandidateName        string                `json:"candidate_name"`
	Email                string                `json:"email"`
	Phone                string                `json:"phone"`
	Location             string                `json:"location"`
	Skills               []string              `json:"skills"`
	TotalYearsExperience *float64              `json:"total_years_experience"`
	WorkExperience       []cvExperiencePayload `json:"work_experience"`
	Education            []cvEducationPayload  `json:"education"`
	Certifications       []string              `json:"certifications"`
	Projects             []string              `json:"projects"`
}

// Extract parses CV text into a structured candidate profile. It returns an
// *ExtractionError when the response is malformed; transport failures from
// the completion capability propagate unchanged.
func (e *CVExtractor) Extract(ctx context.Context, cvText string) (*types.CandidateProfile, error) {
	e.log.Info("parsing cv", zap.Int("length", len(cvText)))

	prompt := llm.BuildExtractionPrompt(llm.CandidateProfileSchema(), cvText)

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.CandidateProfile, responseText); err != nil {
		return nil, &ExtractionError{Doc: DocCV, Message: "malformed response", Cause: err}
	}

	var payload cvPayload
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
		return nil, &ExtractionError{Doc: DocCV, Message: "failed to parse JSON response", Cause: err}
	}

	profile := &types.CandidateProfile{
		CandidateName:  payload.CandidateName,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Location:       payload.Location,
		Skills:         NormalizeSkills(payload.Skills),
		Certifications: payload.Certifications,
		Projects:       payload.Projects,
	}

	if payload.TotalYearsExperience != nil && *payload.TotalYearsExperience > 0 {
		profile.TotalYearsExperience = *payload.TotalYearsExperience
	}

	profile.WorkExperience = make([]types.WorkExperience, 0, len(payload.WorkExperience))
	for _, we := range payload.WorkExperience {
		entry := types.WorkExperience{
			Company:          we.Company,
			Title:            we.Title,
			StartDate:        we.StartDate,
			EndDate:          we.EndDate,
			Responsibilities: we.Responsibilities,
		}
		if we.DurationYears != nil {
			entry.DurationYears = *we.DurationYears
		}
		profile.WorkExperience = append(profile.WorkExperience, entry)
	}

	profile.Education = make([]types.Education, 0, len(payload.Education))
	for _, edu := range payload.Education {
		entry := types.Education{
			Degree:      edu.Degree,
			Institution: edu.Institution,
		}
		if edu.GraduationYear != nil {
			entry.GraduationYear = int(*edu.GraduationYear)
		}
		profile.Education = append(profile.Education, entry)
	}

	e.log.Info("cv parsing complete",
		zap.String("candidate", profile.CandidateName),
		zap.Int("skills", len(profile.Skills)),
		zap.Float64("years_experience", profile.TotalYearsExperience))

	return profile, nil
}
