package parser

import (
	"errors"
	"fmt"
)

// ErrorKind represents the kind of compile error.
type ErrorKind int

const (
	// FormatError indicates a structural violation: a segment not wrapped in
	// braces or two segments without a separator between them.
	FormatError ErrorKind = iota
	// InvalidEmbed indicates a semantic violation: a malformed URL or a size
	// limit exceeded.
	InvalidEmbed
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case FormatError:
		return "format error"
	case InvalidEmbed:
		return "invalid embed"
	default:
		return "unknown error"
	}
}

// ParseError is a template compile error with a user-displayable message.
type ParseError struct {
	// Kind is the error kind.
	Kind ErrorKind
	// Message is the error message.
	Message string
	// Segment is the offending segment text, if any.
	Segment string
	// Attribute is the offending card attribute (e.g. "image.url"), if any.
	Attribute string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("%s: %s (segment: %s)", e.Kind, e.Message, e.Segment)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// newFormatError creates a FormatError naming the offending segment.
func newFormatError(message, segment string) *ParseError {
	return &ParseError{
		Kind:    FormatError,
		Message: message,
		Segment: segment,
	}
}

// NewInvalidEmbedError creates an InvalidEmbed error for attribute.
func NewInvalidEmbedError(attribute, message string) *ParseError {
	return &ParseError{
		Kind:      InvalidEmbed,
		Message:   message,
		Attribute: attribute,
	}
}

// IsFormatError reports whether err is a FormatError.
func IsFormatError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == FormatError
}

// IsInvalidEmbed reports whether err is an InvalidEmbed error.
func IsInvalidEmbed(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == InvalidEmbed
}
