package parsing

import "fmt"

// ParseError reports empty or unparsable input. It is surfaced to the
// caller directly; a retry with the same input cannot succeed.
type ParseError struct {
	Input   string // "resume" or "job description"
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Input, e.Message)
}
