package errors

import (
	"fmt"
	"strings"
)

// FrameTooNarrowError reports a frame width below the structural minimum of
// two borders plus padding plus one content cell.
type FrameTooNarrowError struct {
	Width int
	Min   int
}

// NewFrameTooNarrowError constructs a FrameTooNarrowError.
func NewFrameTooNarrowError(width, min int) error {
	return &FrameTooNarrowError{Width: width, Min: min}
}

func (e *FrameTooNarrowError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("frame too narrow: width %d is below the minimum of %d", e.Width, e.Min)
}

// WidthExceededError reports frame options that do not fit inside the render
// context's width budget.
type WidthExceededError struct {
	FrameWidth   int
	ContextWidth int
}

// NewWidthExceededError constructs a WidthExceededError.
func NewWidthExceededError(frameWidth, contextWidth int) error {
	return &WidthExceededError{FrameWidth: frameWidth, ContextWidth: contextWidth}
}

func (e *WidthExceededError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("width exceeded: frame width %d is wider than the context budget %d", e.FrameWidth, e.ContextWidth)
}

// AlignmentError reports rendered output that failed the post-build
// self-check. Issues carries one entry per defect, naming the line index and
// the expected versus actual measurement.
type AlignmentError struct {
	Issues []string
}

// NewAlignmentError constructs an AlignmentError from the validator's issue list.
func NewAlignmentError(issues []string) error {
	return &AlignmentError{Issues: append([]string(nil), issues...)}
}

func (e *AlignmentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("alignment defect: %s", strings.Join(e.Issues, "; "))
}

// MissingVariablesError reports template variables that were declared but not
// supplied at render time.
type MissingVariablesError struct {
	Names []string
}

// NewMissingVariablesError constructs a MissingVariablesError.
func NewMissingVariablesError(names []string) error {
	return &MissingVariablesError{Names: append([]string(nil), names...)}
}

func (e *MissingVariablesError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("missing template variables: %s", strings.Join(e.Names, ", "))
}

// UnknownColorError reports a color name outside the fixed palette.
type UnknownColorError struct {
	Name string
}

// NewUnknownColorError constructs an UnknownColorError.
func NewUnknownColorError(name string) error {
	return &UnknownColorError{Name: name}
}

func (e *UnknownColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown color %q", e.Name)
}

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures screen definition validation issues.
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
