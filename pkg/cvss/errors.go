package cvss

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPrefix          = errors.New("missing " + prefix + " prefix")
	ErrSegment         = errors.New("segment is not of the form CODE:value")
	ErrUnknownMetric   = errors.New("unknown metric")
	ErrInvalidValue    = errors.New("value not allowed for metric")
	ErrDuplicateMetric = errors.New("duplicate metric")
	ErrMissingMetric   = errors.New("missing metric")
)

// ParseError reports a malformed vector string. Segment is the offending
// token, or the comma separated missing codes for ErrMissingMetric, and Pos
// is its byte offset in Input.
type ParseError struct {
	Input   string
	Segment string
	Pos     int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cvss: parse %q: %v %q at offset %d", e.Input, e.Err, e.Segment, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError is returned when a vector does not hold a valid value for
// every base metric, which only happens with zero or hand-converted values.
type ValidationError struct {
	Metrics []string
}

func (e *ValidationError) Error() string {
	return "cvss: invalid vector, unresolved metrics: " + strings.Join(e.Metrics, ", ")
}
