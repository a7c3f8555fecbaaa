package scoring

import "fmt"

// ValidationError indicates the semantic validator received a response that
// is not parseable structured JSON. Incomplete-but-parseable responses are
// tolerated and defaulted, never wrapped here.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("semantic validation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("semantic validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
