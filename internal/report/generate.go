// Package report synthesizes prioritized, categorized improvement
// recommendations from a composed hybrid score.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/cv-checker/internal/llm"
	"github.com/jonathan/cv-checker/internal/schemas"
	"github.com/jonathan/cv-checker/internal/types"
)

// Recommendation priorities
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Recommendation is a single actionable item tagged with priority and
// category (ADD_SKILL, MODIFY_CONTENT, EMPHASIZE_EXPERIENCE, REMOVE_CONTENT,
// RESTRUCTURE).
type Recommendation struct {
	Priority       string `json:"priority"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
	Rationale      string `json:"rationale"`
}

// Report is the structured recommendation set returned by the synthesizer.
type Report struct {
	ExecutiveSummary    string           `json:"executive_summary"`
	Recommendations     []Recommendation `json:"recommendations"`
	QuickWins           []string         `json:"quick_wins,omitempty"`
	LongTermDevelopment []string         `json:"long_term_development,omitempty"`
}

// Synthesizer generates the recommendation report via the completion
// capability.
type Synthesizer struct {
	client llm.Client
	log    *zap.Logger
}

// NewSynthesizer creates a synthesizer backed by the given client.
func NewSynthesizer(client llm.Client, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{client: client, log: logger}
}

// Generate produces the recommendation report. A malformed payload is a
// *SynthesisError; a parseable payload with a missing recommendations field
// yields an empty list and a soft warning, because downstream padding repairs
// under-population. Transport failures propagate unchanged.
func (s *Synthesizer) Generate(ctx context.Context, hybrid types.HybridScore, job *types.JobRequirements, cv *types.CandidateProfile) (*Report, error) {
	s.log.Info("generating recommendations", zap.Float64("final_score", hybrid.FinalScore))

	prompt := buildReportPrompt(hybrid, job, cv)

	responseText, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.RecommendationReport, responseText); err != nil {
		return nil, &SynthesisError{Message: "malformed response", Cause: err}
	}

	var rep Report
	if err := json.Unmarshal([]byte(responseText), &rep); err != nil {
		return nil, &SynthesisError{Message: "failed to parse JSON response", Cause: err}
	}

	if rep.Recommendations == nil {
		s.log.Warn("synthesizer response missing recommendations field, substituting empty list")
		rep.Recommendations = []Recommendation{}
	}
	if rep.ExecutiveSummary == "" {
		rep.ExecutiveSummary = fmt.Sprintf("Candidate scored %.2f/100 with grade %s.", hybrid.FinalScore, hybrid.Grade)
	}

	s.log.Info("report generated", zap.Int("recommendations", len(rep.Recommendations)))

	return &rep, nil
}

func buildReportPrompt(hybrid types.HybridScore, job *types.JobRequirements, cv *types.CandidateProfile) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert career coach and technical recruiter. Generate actionable recommendations for CV improvement.

Each recommendation must be specific and actionable, explain WHY it matters for this role, and suggest HOW to implement it.

Return ONLY valid JSON:
{
  "executive_summary": "2-3 sentence overview",
  "recommendations": [
    {
      "priority": "HIGH|MEDIUM|LOW",
      "category": "ADD_SKILL|MODIFY_CONTENT|EMPHASIZE_EXPERIENCE|REMOVE_CONTENT|RESTRUCTURE",
      "recommendation": "specific action",
      "rationale": "why this matters"
    }
  ],
  "quick_wins": ["easy improvement"],
  "long_term_development": ["skill to develop"]
}

Ensure at least 5 total recommendations. Be constructive and encouraging.

`)

	sb.WriteString("ANALYSIS RESULTS:\n")
	sb.WriteString(fmt.Sprintf("Final Score: %.2f/100 (Grade: %s)\n\n", hybrid.FinalScore, hybrid.Grade))

	sb.WriteString("Strengths:\n")
	for _, str := range hybrid.Strengths {
		sb.WriteString("- " + str + "\n")
	}
	sb.WriteString("\nGaps:\n")
	for _, gap := range hybrid.Gaps {
		sb.WriteString("- " + gap + "\n")
	}

	sb.WriteString("\nDeterministic Analysis:\n")
	sb.WriteString(fmt.Sprintf("- Skill Match: %.2f%%\n", hybrid.Deterministic.SkillMatchPercent))
	sb.WriteString(fmt.Sprintf("- Missing Skills: %s\n", strings.Join(hybrid.Deterministic.MissingSkills, ", ")))

	sb.WriteString("\nSemantic Analysis:\n")
	sb.WriteString(fmt.Sprintf("- Semantic Match: %.2f%%\n", hybrid.Semantic.SemanticMatchPercent))
	sb.WriteString(fmt.Sprintf("- Reasoning: %s\n", hybrid.Semantic.Reasoning))

	sb.WriteString("\nJOB REQUIREMENTS:\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", job.JobTitle))
	sb.WriteString(fmt.Sprintf("Required Skills: %s\n", strings.Join(job.RequiredSkills, ", ")))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", job.RequiredYears))
	sb.WriteString(fmt.Sprintf("Level: %s\n", job.RoleType))

	sb.WriteString("\nCANDIDATE PROFILE:\n")
	name := cv.CandidateName
	if name == "" {
		name = "N/A"
	}
	sb.WriteString(fmt.Sprintf("Name: %s\n", name))
	sb.WriteString(fmt.Sprintf("Total Experience: %.1f years\n", cv.TotalYearsExperience))
	skills := cv.Skills
	if len(skills) > 10 {
		skills = skills[:10]
	}
	sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(skills, ", ")))

	sb.WriteString("\nGenerate actionable recommendations to improve this candidate's match for this role.")

	return sb.String()
}
