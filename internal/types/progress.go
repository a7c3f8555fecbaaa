package types

// Progress event discriminators
const (
	EventProgress = "progress"
	EventResult   = "result"
	EventError    = "error"
)

// Progress step statuses
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// TotalSteps is the fixed number of pipeline stages reported to consumers.
const TotalSteps = 4

// ProgressEvent is a discrete, ordered notification of a pipeline stage
// transition. A stream of these is terminated by exactly one result or one
// error event; consumers should ignore unknown fields for forward
// compatibility.
type ProgressEvent struct {
	Type       string          `json:"type"`
	Step       int             `json:"step,omitempty"`
	TotalSteps int             `json:"total_steps,omitempty"`
	Message    string          `json:"message,omitempty"`
	Status     string          `json:"status,omitempty"`
	Result     *AnalysisResult `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	Stage      string          `json:"stage,omitempty"`
}
