package types

import "time"

// SkillMatch is a flat per-skill record projected from the deterministic
// breakdown for presentation collaborators.
type SkillMatch struct {
	SkillName        string  `json:"skill_name"`
	Required         bool    `json:"required"`
	CandidateHas     bool    `json:"candidate_has"`
	ProficiencyLevel string  `json:"proficiency_level,omitempty"`
	MatchScore       float64 `json:"match_score"`
}

// ExperienceMatch summarizes experience alignment for display.
type ExperienceMatch struct {
	RequiredYears  int     `json:"required_years"`
	CandidateYears float64 `json:"candidate_years"`
	AlignmentScore float64 `json:"alignment_score"`
	Match          bool    `json:"match"`
}

// EducationMatch summarizes education alignment for display.
type EducationMatch struct {
	Required  string  `json:"required"`
	Candidate string  `json:"candidate"`
	Match     bool    `json:"match"`
	Score     float64 `json:"score"`
}

// AnalysisResult is the final payload handed to the caller and, best-effort,
// to persistence.
type AnalysisResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OverallScore    float64         `json:"overall_score"`
	Grade           string          `json:"grade"`
	SkillMatches    []SkillMatch    `json:"skill_matches"`
	ExperienceMatch ExperienceMatch `json:"experience_match"`
	EducationMatch  EducationMatch  `json:"education_match"`

	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`

	// Denormalized job context for display and filtering
	JobTitle       string `json:"job_title,omitempty"`
	SeniorityLevel string `json:"seniority_level,omitempty"`

	// Full scoring breakdown for auditability
	Breakdown *HybridScore `json:"breakdown,omitempty"`
}
