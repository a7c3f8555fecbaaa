package types

// Experience gap annotation kinds
const (
	GapOverQualified  = "over_qualified"
	GapUnderQualified = "under_qualified"
)

// ExperienceGap annotates an experience misalignment. Gaps are kept as an
// ordered slice so downstream compilation preserves insertion order.
type ExperienceGap struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// DeterministicScore holds the locally computed, reproducible metrics.
// Invariant: MatchedSkills and MissingSkills are disjoint and together cover
// the normalized required-skill set.
type DeterministicScore struct {
	SkillMatchPercent          float64         `json:"skill_match_percent"`
	ExperienceAlignmentPercent float64         `json:"experience_alignment_percent"`
	TotalScore                 float64         `json:"total_score"`
	MatchedSkills              []string        `json:"matched_skills"`
	MissingSkills              []string        `json:"missing_skills"`
	ExperienceGaps             []ExperienceGap `json:"experience_gaps,omitempty"`
}

// SemanticScore holds the externally judged semantic metrics. Values are
// accepted as given, clamped to [0,100] but not otherwise re-validated.
type SemanticScore struct {
	SemanticMatchPercent   float64  `json:"semantic_match_percent"`
	SoftSkillsMatchPercent float64  `json:"soft_skills_match_percent"`
	TotalScore             float64  `json:"total_score"`
	Reasoning              string   `json:"reasoning,omitempty"`
	TransferableSkills     []string `json:"transferable_skills,omitempty"`
	CulturalFitNotes       string   `json:"cultural_fit_notes,omitempty"`
}

// HybridScore is the fixed-weight blend of deterministic and semantic scores,
// created once per run and immutable.
type HybridScore struct {
	FinalScore    float64            `json:"final_score"`
	Grade         string             `json:"grade"`
	Deterministic DeterministicScore `json:"deterministic"`
	Semantic      SemanticScore      `json:"semantic"`
	Strengths     []string           `json:"strengths"`
	Gaps          []string           `json:"gaps"`
}
