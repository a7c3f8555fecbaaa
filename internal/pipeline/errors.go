package pipeline

import "fmt"

// Stage names for StageError, reported to callers so UIs can offer
// stage-appropriate guidance.
const (
	StageParseJob   = "parse_job"
	StageParseCV    = "parse_cv"
	StageScore      = "score"
	StageSynthesize = "synthesize"
)

// StageError identifies which pipeline stage failed. The underlying cause is
// surfaced unchanged.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
