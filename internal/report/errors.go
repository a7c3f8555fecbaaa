package report

import "fmt"

// SynthesisError indicates the recommendation response was not parseable
// structured JSON. A parseable payload missing only the recommendations
// field is tolerated, not wrapped here.
type SynthesisError struct {
	Message string
	Cause   error
}

func (e *SynthesisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("recommendation synthesis failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("recommendation synthesis failed: %s", e.Message)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}
