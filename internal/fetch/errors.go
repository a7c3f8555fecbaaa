package fetch

import "fmt"

// Reason classifies why a job posting could not be retrieved. The set is
// closed so API clients can branch on it without string matching.
type Reason string

// Failure reasons
const (
	ReasonTimeout        Reason = "timeout"
	ReasonNotFound       Reason = "content-not-found"
	ReasonAntiAutomation Reason = "anti-automation-detected"
)

// Error reports a failed posting fetch with its classified reason.
type Error struct {
	URL    string
	Reason Reason
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch failed for %s (%s): %v", e.URL, e.Reason, e.Cause)
	}
	return fmt.Sprintf("fetch failed for %s (%s)", e.URL, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
