package engine

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSchema            = errors.New("schema error")
	ErrRowParse          = errors.New("row parse error")

	// ErrMissingHeader is wrapped by SchemaError when the source has no header line.
	ErrMissingHeader = errors.New("missing header")
	// ErrMissingColumn is wrapped by SchemaError when a declared column is absent from the header.
	ErrMissingColumn = errors.New("missing column")
	// ErrDuplicateColumn is wrapped by SchemaError when a declared column appears more than once.
	ErrDuplicateColumn = errors.New("duplicate column")
)

// SourceError reports that the byte source could not be opened or read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("source unavailable: %v", e.Err)
	}
	return fmt.Sprintf("source unavailable: %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

// SchemaError reports a header that is absent, unreadable, or lacks a declared column.
type SchemaError struct {
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("schema error: %v", e.Err)
	}
	return fmt.Sprintf("schema error: column %q: %v", e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// RowParseError reports the first data row that did not match the schema.
// Row is 1-based and does not count the header.
type RowParseError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d: column %q: %v", e.Row, e.Column, e.Err)
}

func (e *RowParseError) Unwrap() error { return e.Err }

func (e *RowParseError) Is(target error) bool { return target == ErrRowParse }

// FieldError is a single cell that failed conversion to its column's kind.
type FieldError struct {
	Column string
	Kind   Kind
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Value, e.Kind, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
