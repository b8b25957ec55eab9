package extract

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by Session.Wait after Cancel.
var ErrCancelled = errors.New("extract: cancelled")

// SchemaError reports a completion that does not conform to the output
// schema. Field is empty when the document as a whole is unusable.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "extract: schema validation failed: " + e.Reason
	}
	return fmt.Sprintf("extract: schema validation failed: %s: %s", e.Field, e.Reason)
}

// StreamError reports a transport failure while starting or reading the
// completion.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return "extract: stream failed: " + e.Err.Error()
}

func (e *StreamError) Unwrap() error { return e.Err }

// IsSchemaError reports whether err is or wraps a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsStreamError reports whether err is or wraps a *StreamError.
func IsStreamError(err error) bool {
	var se *StreamError
	return errors.As(err, &se)
}
