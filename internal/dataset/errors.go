package dataset

import (
	"errors"
	"fmt"
)

// Error kinds reported by the loader. Use errors.Is to classify a failure.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrParse        = errors.New("parse error")
)

// ParseError describes a malformed header or cell in a source table.
//
// Line is the 1-based line in the source where the problem was found; it is zero when the
// problem concerns the table as a whole (e.g. an empty file). Column is empty when the
// problem is not tied to a single column.
type ParseError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrParse, e.Source)
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(": column %q", e.Column)
	}

	return msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as the kind of every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
