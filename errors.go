package wfq

import "fmt"

// MalformedLineError reports an input line that did not parse as 6 or 7
// whitespace-separated tokens of the expected shape. It is the
// only error type this package defines; every other internal condition that
// "must never happen" given a well-formed model is a panic, not an error,
// because it indicates a bug in the scheduler rather than bad input.
type MalformedLineError struct {
	LineNo int
	Line   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed input line %d: %q (%s)", e.LineNo, e.Line, e.Reason)
}
