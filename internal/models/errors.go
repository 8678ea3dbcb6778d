package models

import (
	"fmt"
	"strings"
)

// SourceNotFoundError is returned when a data source cannot be opened
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("data source not found: %s", e.Path)
	}
	return fmt.Sprintf("data source not found: %s: %v", e.Path, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// IsTransient returns false; a missing file does not appear by retrying
func (e *SourceNotFoundError) IsTransient() bool {
	return false
}

// MalformedRowError reports a row that violates the column contract.
// Line is the 1-based line number in the source, Row the offending fields.
type MalformedRowError struct {
	Line   int
	Row    []string
	Reason string
	Err    error
}

func (e *MalformedRowError) Error() string {
	msg := fmt.Sprintf("malformed row at line %d: %s", e.Line, e.Reason)
	if len(e.Row) > 0 {
		msg += fmt.Sprintf(" [%s]", strings.Join(e.Row, ","))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

func (e *MalformedRowError) IsTransient() bool {
	return false
}

// ParseError is returned for a value that is not a valid calendar date
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid calendar date %q, expected YYYY-MM-DD", e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) IsTransient() bool {
	return false
}

// FormatError is returned for a non-numeric value where a number is expected
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid numeric value %q", e.Value)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) IsTransient() bool {
	return false
}

// EmptyInputError is returned by statistical operations that are undefined
// on an empty sequence. Op names the operation that received no data.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: no data", e.Op)
}

func (e *EmptyInputError) IsTransient() bool {
	return false
}
