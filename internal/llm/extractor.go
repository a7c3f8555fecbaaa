// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobRequirements", "CandidateProfile")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- If information is not available, use null or empty lists as appropriate.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// JobRequirementsSchema returns the extraction schema for job postings.
// Extracts title, skills, experience and education requirements, and seniority.
func JobRequirementsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobRequirements",
		Description: `You are an expert job description parser. Your task is to extract structured requirements from a job posting.
Be thorough but concise. Normalize skill names (e.g., "React.js" -> "React", "K8s" -> "Kubernetes").`,
		Fields: []SchemaField{
			{
				Name:        "job_title",
				Type:        "\"string\"",
				Description: "The job title/position",
				Required:    true,
			},
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Company name (if mentioned)",
				Required:    false,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Job location (if mentioned)",
				Required:    false,
			},
			{
				Name:        "required_skills",
				Type:        "[\"string\"]",
				Description: "Required technical and soft skills",
				Required:    true,
			},
			{
				Name:        "preferred_skills",
				Type:        "[\"string\"]",
				Description: "Preferred/nice-to-have skills",
				Required:    false,
			},
			{
				Name:        "required_years",
				Type:        "number",
				Description: "Minimum years of experience required, or null if not specified",
				Required:    true,
			},
			{
				Name:        "education_requirements",
				Type:        "\"string\"",
				Description: "Education level required (e.g., \"Bachelor's in Computer Science\")",
				Required:    false,
			},
			{
				Name:        "key_responsibilities",
				Type:        "[\"string\"]",
				Description: "Main job responsibilities, in posting order",
				Required:    false,
			},
			{
				Name:        "role_type",
				Type:        "\"string\"",
				Description: "Seniority level - one of: entry, mid, senior, lead, principal",
				Required:    true,
			},
		},
	}
}

// CandidateProfileSchema returns the extraction schema for CVs/resumes.
// Extracts contact info, skills, work history, education, and total experience.
func CandidateProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CandidateProfile",
		Description: `You are an expert CV/resume parser. Your task is to extract structured information from a CV.
Normalize skill names (e.g., "React.js" -> "React", "K8s" -> "Kubernetes").
Calculate years of experience accurately from date ranges.`,
		Fields: []SchemaField{
			{
				Name:        "candidate_name",
				Type:        "\"string\"",
				Description: "Full name",
				Required:    false,
			},
			{
				Name:        "email",
				Type:        "\"string\"",
				Description: "Contact email",
				Required:    false,
			},
			{
				Name:        "phone",
				Type:        "\"string\"",
				Description: "Contact phone (if available)",
				Required:    false,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Current location (if mentioned)",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "All technical and soft skills mentioned",
				Required:    true,
			},
			{
				Name:        "total_years_experience",
				Type:        "number",
				Description: "Total years of professional experience, calculated from work history",
				Required:    true,
			},
			{
				Name:        "work_experience",
				Type:        "[{\"company\": \"string\", \"title\": \"string\", \"start_date\": \"string\", \"end_date\": \"string\", \"duration_years\": number, \"responsibilities\": [\"string\"]}]",
				Description: "Jobs in reverse chronological order; end_date may be \"Present\"",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[{\"degree\": \"string\", \"institution\": \"string\", \"graduation_year\": number}]",
				Description: "Degrees earned",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        "[\"string\"]",
				Description: "Certifications held",
				Required:    false,
			},
			{
				Name:        "projects",
				Type:        "[\"string\"]",
				Description: "Notable projects mentioned",
				Required:    false,
			},
		},
	}
}
