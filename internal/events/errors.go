package events

import "fmt"

// ClassificationError reports an action string that survived the relevance
// filter but matched no known event type. It is fatal for the whole build;
// callers can detect it with errors.As to distinguish bad action vocabulary
// from loader or I/O failures.
type ClassificationError struct {
	Action string
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unknown value for action text: %q", e.Action)
}
