package llm

import "fmt"

// TransportError indicates the completion capability itself was unreachable
// or returned a provider-level failure. It is distinct from malformed-payload
// errors, which belong to the callers that parse responses.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion transport failure (%s): %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("completion transport failure (%s)", e.Op)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
