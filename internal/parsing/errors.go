package parsing

import "fmt"

// Document discriminators for ExtractionError
const (
	DocJob = "job"
	DocCV  = "cv"
)

// ExtractionError indicates the completion capability returned content that
// does not parse as well-formed structured data for the given document.
// Transport-level failures are not wrapped here; they propagate unchanged.
type ExtractionError struct {
	Doc     string // "job" or "cv"
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Doc, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Doc, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
