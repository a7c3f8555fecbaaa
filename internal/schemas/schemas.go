// Package schemas provides JSON Schema validation for the structured payloads
// returned by the completion capability. A payload that fails here is
// malformed; absent fields are tolerated and defaulted by the callers.
package schemas

// JobRequirements validates the job extractor payload. No field is required:
// missing fields are filled with defaults downstream, but present fields must
// carry the right shape.
const JobRequirements = `{
  "type": "object",
  "properties": {
    "job_title": {"type": ["string", "null"]},
    "company": {"type": ["string", "null"]},
    "location": {"type": ["string", "null"]},
    "required_skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "preferred_skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "required_years": {"type": ["number", "null"]},
    "education_requirements": {"type": ["string", "null"]},
    "key_responsibilities": {"type": ["array", "null"], "items": {"type": "string"}},
    "role_type": {"type": ["string", "null"]}
  }
}`

// CandidateProfile validates the CV extractor payload.
const CandidateProfile = `{
  "type": "object",
  "properties": {
    "candidate_name": {"type": ["string", "null"]},
    "email": {"type": ["string", "null"]},
    "phone": {"type": ["string", "null"]},
    "location": {"type": ["string", "null"]},
    "skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "total_years_experience": {"type": ["number", "null"]},
    "work_experience": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": ["string", "null"]},
          "title": {"type": ["string", "null"]},
          "start_date": {"type": ["string", "null"]},
          "end_date": {"type": ["string", "null"]},
          "duration_years": {"type": ["number", "null"]},
          "responsibilities": {"type": ["array", "null"], "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": ["string", "null"]},
          "institution": {"type": ["string", "null"]},
          "graduation_year": {"type": ["number", "null"]}
        }
      }
    },
    "certifications": {"type": ["array", "null"], "items": {"type": "string"}},
    "projects": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

// SemanticJudgment validates the semantic validator payload.
const SemanticJudgment = `{
  "type": "object",
  "properties": {
    "semantic_match_percent": {"type": ["number", "null"]},
    "soft_skills_match_percent": {"type": ["number", "null"]},
    "reasoning": {"type": ["string", "null"]},
    "transferable_skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "cultural_fit_notes": {"type": ["string", "null"]},
    "strengths": {"type": ["array", "null"], "items": {"type": "string"}},
    "gaps": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

// RecommendationReport validates the recommendation synthesizer payload.
const RecommendationReport = `{
  "type": "object",
  "properties": {
    "executive_summary": {"type": ["string", "null"]},
    "recommendations": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "priority": {"type": ["string", "null"]},
          "category": {"type": ["string", "null"]},
          "recommendation": {"type": ["string", "null"]},
          "rationale": {"type": ["string", "null"]}
        }
      }
    },
    "quick_wins": {"type": ["array", "null"], "items": {"type": "string"}},
    "long_term_development": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`
