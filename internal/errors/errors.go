// Package errors provides sentinel errors for the relkit CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfiguration indicates a malformed or inconsistent instruction file
	// or release descriptor.
	ErrConfiguration = errors.New("configuration error")

	// ErrIO indicates a filesystem read or write failure.
	ErrIO = errors.New("i/o error")

	// ErrNotFound indicates a descriptor, instruction file, or artifact
	// directory was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for diagnostics.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Path is the offending file path (optional).
	Path string

	// Component is the component name the error relates to (optional).
	Component string

	// Version is the component version the error relates to (optional).
	Version string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Path != "" {
		b.WriteString("  Path: ")
		b.WriteString(e.Path)
		b.WriteString("\n")
	}
	if e.Component != "" {
		b.WriteString("  Component: ")
		b.WriteString(e.Component)
		b.WriteString("\n")
	}
	if e.Version != "" {
		b.WriteString("  Version: ")
		b.WriteString(e.Version)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a configuration error with details.
func NewConfigurationError(message, path, component, hint string) error {
	return &DetailError{
		Type:      "configuration failed",
		Message:   message,
		Path:      path,
		Component: component,
		Hint:      hint,
		Cause:     ErrConfiguration,
	}
}

// NewIOError creates an I/O error with details, wrapping the underlying
// filesystem error so callers can still inspect it with errors.Is/As.
func NewIOError(message, path, component string, cause error) error {
	return &DetailError{
		Type:      "i/o failed",
		Message:   message,
		Path:      path,
		Component: component,
		Cause:     fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, path, hint string) error {
	return &DetailError{
		Type:    "not found",
		Message: message,
		Path:    path,
		Hint:    hint,
		Cause:   ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
