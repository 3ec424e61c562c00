// Package errors provides a lightweight structured error type (NodeDocsError)
// for category-based classification of failures and CLI exit code mapping.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a nodedocs error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryInput      ErrorCategory = "input"
	CategoryValidation ErrorCategory = "validation"

	// Output errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Everything else
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// NodeDocsError is a structured error with category, severity and context
type NodeDocsError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for NodeDocsError
type ContextFields map[string]any

// Error implements the error interface
func (e *NodeDocsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *NodeDocsError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *NodeDocsError) WithContext(key string, value any) *NodeDocsError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new NodeDocsError
func New(category ErrorCategory, severity ErrorSeverity, message string) *NodeDocsError {
	return &NodeDocsError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new NodeDocsError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *NodeDocsError {
	return &NodeDocsError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the outermost NodeDocsError in err's chain, if any.
func As(err error) (*NodeDocsError, bool) {
	var nde *NodeDocsError
	if stdErrors.As(err, &nde) {
		return nde, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if nde, ok := As(err); ok {
		return nde.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a NodeDocsError
func GetCategory(err error) ErrorCategory {
	if nde, ok := As(err); ok {
		return nde.Category
	}
	return CategoryInternal
}
