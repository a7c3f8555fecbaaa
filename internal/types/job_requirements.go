// Package types defines the shared domain records for the analysis pipeline.
package types

// Seniority levels recognized in role_type
const (
	SeniorityEntry     = "entry"
	SeniorityMid       = "mid"
	SenioritySenior    = "senior"
	SeniorityLead      = "lead"
	SeniorityPrincipal = "principal"
)

// JobRequirements is the structured form of a job posting, produced once per
// pipeline run by the job extractor and immutable afterward.
type JobRequirements struct {
	JobTitle              string   `json:"job_title"`
	Company               string   `json:"company,omitempty"`
	Location              string   `json:"location,omitempty"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	RequiredYears         int      `json:"required_years"`
	EducationRequirements string   `json:"education_requirements,omitempty"`
	KeyResponsibilities   []string `json:"key_responsibilities"`
	RoleType              string   `json:"role_type"`
}
