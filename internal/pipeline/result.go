package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-checker/internal/report"
	"github.com/jonathan/cv-checker/internal/types"
)

const (
	minRecommendations = 5
	maxRecommendations = 10

	fillerRecommendation = "Continue developing skills aligned with career goals"
)

// buildResult assembles the final report from the stage outputs. Blending,
// grading, and strength/gap compilation already happened inside the composer;
// this projects the pieces into the client-facing shape.
func buildResult(hybrid types.HybridScore, rep *report.Report, job *types.JobRequirements, cv *types.CandidateProfile) *types.AnalysisResult {
	return &types.AnalysisResult{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		OverallScore:    hybrid.FinalScore,
		Grade:           hybrid.Grade,
		SkillMatches:    buildSkillMatches(hybrid),
		ExperienceMatch: buildExperienceMatch(hybrid, job, cv),
		EducationMatch:  buildEducationMatch(job, cv),
		Strengths:       hybrid.Strengths,
		Gaps:            hybrid.Gaps,
		Recommendations: buildRecommendations(rep),
		JobTitle:        job.JobTitle,
		SeniorityLevel:  job.RoleType,
		Breakdown:       &hybrid,
	}
}

func buildSkillMatches(hybrid types.HybridScore) []types.SkillMatch {
	matches := make([]types.SkillMatch, 0, len(hybrid.Deterministic.MatchedSkills)+len(hybrid.Deterministic.MissingSkills))
	for _, skill := range hybrid.Deterministic.MatchedSkills {
		matches = append(matches, types.SkillMatch{
			SkillName:        skill,
			Required:         true,
			CandidateHas:     true,
			ProficiencyLevel: "present",
			MatchScore:       1.0,
		})
	}
	for _, skill := range hybrid.Deterministic.MissingSkills {
		matches = append(matches, types.SkillMatch{
			SkillName:  skill,
			Required:   true,
			MatchScore: 0.0,
		})
	}
	return matches
}

func buildExperienceMatch(hybrid types.HybridScore, job *types.JobRequirements, cv *types.CandidateProfile) types.ExperienceMatch {
	return types.ExperienceMatch{
		RequiredYears:  job.RequiredYears,
		CandidateYears: cv.TotalYearsExperience,
		AlignmentScore: hybrid.Deterministic.ExperienceAlignmentPercent,
		Match:          hybrid.Deterministic.ExperienceAlignmentPercent >= 70,
	}
}

func buildEducationMatch(job *types.JobRequirements, cv *types.CandidateProfile) types.EducationMatch {
	required := strings.TrimSpace(job.EducationRequirements)
	if required == "" {
		required = "Not specified"
	}

	entries := cv.Education
	if len(entries) > 2 {
		entries = entries[:2]
	}
	parts := make([]string, 0, len(entries))
	for _, edu := range entries {
		switch {
		case edu.Degree != "" && edu.Institution != "":
			parts = append(parts, fmt.Sprintf("%s from %s", edu.Degree, edu.Institution))
		case edu.Degree != "":
			parts = append(parts, edu.Degree)
		case edu.Institution != "":
			parts = append(parts, edu.Institution)
		}
	}
	candidate := strings.Join(parts, "; ")
	if candidate == "" {
		candidate = "Not specified"
	}

	return types.EducationMatch{
		Required:  required,
		Candidate: candidate,
		Match:     true,
		Score:     100,
	}
}

// buildRecommendations flattens the synthesized report into display strings,
// padded with a generic filler when the model produced too few and capped at
// the maximum.
func buildRecommendations(rep *report.Report) []string {
	recs := report.FormatAsList(rep)
	for len(recs) < minRecommendations {
		recs = append(recs, fillerRecommendation)
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
