package types

// WorkExperience is a single job entry from a CV, with the duration the
// extractor computed from its date range.
type WorkExperience struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	DurationYears    float64  `json:"duration_years,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Education is a single degree entry from a CV.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduation_year,omitempty"`
}

// CandidateProfile is the structured form of a CV, produced once per pipeline
// run by the CV extractor and immutable afterward.
type CandidateProfile struct {
	CandidateName        string           `json:"candidate_name,omitempty"`
	Email                string           `json:"email,omitempty"`
	Phone                string           `json:"phone,omitempty"`
	Location             string           `json:"location,omitempty"`
	Skills               []string         `json:"skills"`
	TotalYearsExperience float64          `json:"total_years_experience"`
	WorkExperience       []WorkExperience `json:"work_experience"`
	Education            []Education      `json:"education"`
	Certifications       []string         `json:"certifications,omitempty"`
	Projects             []string         `json:"projects,omitempty"`
}
