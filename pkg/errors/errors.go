package errors

import (
	"fmt"
)

// ParseError represents a failure to read or decode an input document.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a registry document that failed the schema gate.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingSourceError is returned when a declared component file cannot be read
// from a style's source tree.
type MissingSourceError struct {
	Style string
	Item  string
	Path  string
	Err   error
}

// NewMissingSourceError constructs a MissingSourceError.
func NewMissingSourceError(style, item, path string, err error) error {
	return &MissingSourceError{Style: style, Item: item, Path: path, Err: err}
}

func (e *MissingSourceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("missing source: style %s: item %s: %s: %v", e.Style, e.Item, e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *MissingSourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ArtifactError indicates an output file could not be written or removed.
type ArtifactError struct {
	Path string
	Op   string
	Err  error
}

// NewArtifactError constructs an ArtifactError for the given operation.
func NewArtifactError(op, path string, err error) error {
	return &ArtifactError{Path: path, Op: op, Err: err}
}

func (e *ArtifactError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("artifact error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("artifact error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ArtifactError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
