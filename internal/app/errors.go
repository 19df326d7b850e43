package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// TemplateReadFailed indicates the template could not be read.
	TemplateReadFailed AppErrorType = iota
	// ContextLoadFailed indicates context values could not be loaded.
	ContextLoadFailed
	// CompileFailed indicates the template did not compile.
	CompileFailed
	// SerializeFailed indicates a message could not be serialized.
	SerializeFailed
	// ValidationFailed indicates invalid options.
	ValidationFailed
)

// String returns the error type name.
func (t AppErrorType) String() string {
	switch t {
	case TemplateReadFailed:
		return "template read failed"
	case ContextLoadFailed:
		return "context load failed"
	case CompileFailed:
		return "compile failed"
	case SerializeFailed:
		return "serialize failed"
	case ValidationFailed:
		return "validation failed"
	default:
		return "unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewTemplateReadError creates a template read error.
func NewTemplateReadError(message string, cause error) *AppError {
	return NewAppError(TemplateReadFailed, message, cause)
}

// NewContextLoadError creates a context load error.
func NewContextLoadError(message string, cause error) *AppError {
	return NewAppError(ContextLoadFailed, message, cause)
}

// NewCompileError creates a compile error.
func NewCompileError(message string, cause error) *AppError {
	return NewAppError(CompileFailed, message, cause)
}

// NewSerializeError creates a serialize error.
func NewSerializeError(message string, cause error) *AppError {
	return NewAppError(SerializeFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
