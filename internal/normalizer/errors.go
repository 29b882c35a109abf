package normalizer

import (
	"errors"
	"fmt"
)

// Normalization errors.
var (
	ErrMissingColumn          = errors.New("missing required column")
	ErrMissingTimecode        = errors.New("missing timecode")
	ErrInvalidTimecode        = errors.New("invalid timecode")
	ErrReversedSegment        = errors.New("segment ends before it starts")
	ErrUndeclaredQuestionSlot = errors.New("question column beyond declared slots")
)

// MissingColumnError reports a structural column absent from a row.
type MissingColumnError struct {
	Column string
	Row    int
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("row %d: %v %q", e.Row, ErrMissingColumn, e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// TimecodeError reports a question boundary that cannot be turned into seconds.
type TimecodeError struct {
	Err    error
	Column string
	Value  string
	Row    int
}

func (e *TimecodeError) Error() string {
	return fmt.Sprintf("row %d column %q: %v %q", e.Row, e.Column, e.Err, e.Value)
}

func (e *TimecodeError) Unwrap() error {
	return e.Err
}

// SchemaError reports a header set that does not fit the configured schema.
type SchemaError struct {
	Err    error
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch on column %q: %v", e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
