package scoring

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

// SemanticValidator asks the completion capability for a semantic judgment of
// the two documents, anchored on the deterministic baseline.
type SemanticValidator struct {
	client  llm.Client
	weights Weights
	log     *zap.Logger
}

// NewSemanticValidator creates a validator backed by the given client.
func NewSemanticValidator(client llm.Client, w Weights, logger *zap.Logger) *SemanticValidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemanticValidator{client: client, weights: w, log: logger}
}

type semanticPayload struct {
	SemanticMatchPercent   float64  `json:"semantic_match_percent"`
	SoftSkillsMatchPercent float64  `json:"soft_skills_match_percent"`
	Reasoning              string   `json:"reasoning"`
	TransferableSkills     []string `json:"transferable_skills"`
	CulturalFitNotes       string   `json:"cultural_fit_notes"`
}

// Validate performs semantic analysis and soft-skills evaluation. The prompt
// carries the deterministic baseline so the judgment is anchored, not blind.
// Missing fields default to zero values; malformed JSON is a
// *ValidationError; transport failures propagate unchanged.
func (v *SemanticValidator) Validate(ctx context.Context, jobText, cvText string, baseline types.DeterministicScore) (types.SemanticScore, error) {
	v.log.Info("starting semantic validation",
		zap.Float64("baseline_total", baseline.TotalScore))

	prompt := buildSemanticPrompt(jobText, cvText, baseline)

	responseText, err := v.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return types.SemanticScore{}, err
	}

	if err := schemas.Validate(schemas.SemanticJudgment, responseText); err != nil {
		return types.SemanticScore{}, &ValidationError{Message: "malformed response", Cause: err}
	}

	var payload semanticPayload
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
		return types.SemanticScore{}, &ValidationError{Message: "failed to parse JSON response", Cause: err}
	}

	semMatch := clampPercent(payload.SemanticMatchPercent)
	softMatch := clampPercent(payload.SoftSkillsMatchPercent)
	total := semMatch*v.weights.Semantic + softMatch*v.weights.SoftSkills

	score := types.SemanticScore{
		SemanticMatchPercent:   round2(semMatch),
		SoftSkillsMatchPercent: round2(softMatch),
		TotalScore:             round2(total),
		Reasoning:              payload.Reasoning,
		TransferableSkills:     payload.TransferableSkills,
		CulturalFitNotes:       payload.CulturalFitNotes,
	}

	v.log.Info("semantic validation complete", zap.Float64("total", score.TotalScore))

	return score, nil
}

func buildSemanticPrompt(jobText, cvText string, baseline types.DeterministicScore) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert technical recruiter with deep understanding of skill transferability and cultural fit.

Analyze the candidate's CV against the job requirements considering:

1. Semantic skill matching: synonyms, related technologies, and transferable skills (e.g., Java -> C#, AWS -> Azure) that keyword matching misses, plus context and depth of experience from project descriptions.
2. Soft skills and cultural fit: leadership and collaboration indicators, communication style from CV writing quality, problem-solving approach from achievements, growth mindset.

Return ONLY valid JSON with these fields:
{
  "semantic_match_percent": number 0-100,
  "soft_skills_match_percent": number 0-100,
  "reasoning": "brief explanation",
  "transferable_skills": ["skill1", "skill2"],
  "cultural_fit_notes": "observations"
}

Be objective but considerate. Focus on actionable insights.

`)

	sb.WriteString("DETERMINISTIC BASELINE:\n")
	sb.WriteString(fmt.Sprintf("- Skill Match: %.2f%%\n", baseline.SkillMatchPercent))
	sb.WriteString(fmt.Sprintf("- Matched Skills: %s\n", joinOrNone(baseline.MatchedSkills)))
	sb.WriteString(fmt.Sprintf("- Missing Skills: %s\n", joinOrNone(baseline.MissingSkills)))
	sb.WriteString(fmt.Sprintf("- Experience Alignment: %.2f%%\n\n", baseline.ExperienceAlignmentPercent))

	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(jobText)
	sb.WriteString("\n\nCANDIDATE CV:\n")
	sb.WriteString(cvText)
	sb.WriteString("\n\nAnalyze and return JSON only.")

	return sb.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
