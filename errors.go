package jsonarray

import "fmt"

// A MalformedStreamError is returned when the input runs out before a
// line starting with '[' is found, i.e. the stream does not contain a
// JSON array at all.  No object can have been emitted before it.
type MalformedStreamError struct {
	// Lines is the number of lines consumed before giving up.
	Lines int
}

func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("stream does not start with a JSON array (scanned %d lines)", e.Lines)
}

// A MalformedObjectError is returned when the text of a completed
// top-level object fails to decode as JSON.  Objects emitted before the
// failing one remain valid.
type MalformedObjectError struct {
	// Err is the underlying decode error.
	Err error

	// Text is the raw object text that failed to decode.
	Text string
}

func (e *MalformedObjectError) Error() string {
	return fmt.Sprintf("cannot decode object: %s\nin: %s", e.Err, e.Text)
}

func (e *MalformedObjectError) Unwrap() error {
	return e.Err
}

// A TruncatedStreamError is returned in place of a clean end of stream
// when the input ends inside an object and the Decoder was configured
// with StrictArrayEnd.
type TruncatedStreamError struct {
	// Depth is the brace nesting depth left open at the end of input.
	Depth int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("stream ended inside an object (depth %d)", e.Depth)
}
