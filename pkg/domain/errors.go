package domain

import (
	"errors"
	"fmt"
)

// ErrStructural is returned when a record or table line has too few columns.
var ErrStructural = errors.New("wrong number of columns")

// ErrTypedField is returned when a typed column or a taxon_id value cannot be parsed.
var ErrTypedField = errors.New("invalid typed field")

// ErrSegmentSyntax marks an attribute segment that matches neither dialect.
var ErrSegmentSyntax = errors.New("malformed attribute segment")

// ErrReservedKey is returned when a write targets a key that cannot be set that way.
var ErrReservedKey = errors.New("reserved attribute key")

// LineError locates an error on a line of an input stream.
type LineError struct {
	Line int   // 1-based physical line number
	Err  error // underlying cause
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// FieldError represents a value that could not be converted to its typed field.
type FieldError struct {
	Field string // Field name
	Value string // Raw text that failed to parse
	Err   error  // Parser error, if any
}

func (e *FieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("field %q: cannot parse %q", e.Field, e.Value)
	}
	return fmt.Sprintf("field %q: cannot parse %q: %s", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Is makes every FieldError match ErrTypedField.
func (e *FieldError) Is(target error) bool { return target == ErrTypedField }

// SegmentError is a recoverable error for a single attribute segment.
type SegmentError struct {
	Segment string
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("cannot parse attribute: %q", e.Segment)
}

func (e *SegmentError) Is(target error) bool { return target == ErrSegmentSyntax }

// StructuralError builds the error for a line split into too few columns.
func StructuralError(line, want, got int) error {
	return &LineError{
		Line: line,
		Err:  fmt.Errorf("%w: expected %d, found %d", ErrStructural, want, got),
	}
}
