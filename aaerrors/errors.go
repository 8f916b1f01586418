// Package aaerrors provides structured error types for asyncapitools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and document-level issues
//   - DecodeError: Field-level decoding failures (missing required fields,
//     unknown fields on strict objects, type mismatches)
//   - ValidationError: AsyncAPI semantic violations
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("asyncapi.yaml"))
//	if err != nil {
//	    var decErr *aaerrors.DecodeError
//	    if errors.As(err, &decErr) {
//	        if decErr.IsMissingField {
//	            // Handle missing required field specifically
//	        }
//	    }
//	}
package aaerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrDecode indicates a field-level decoding failure.
	ErrDecode = errors.New("decode error")

	// ErrMissingField indicates a required field was absent.
	ErrMissingField = errors.New("missing required field")

	// ErrUnknownField indicates a field was rejected by a strict object.
	ErrUnknownField = errors.New("unknown field")

	// ErrTypeMismatch indicates a field held a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidation indicates an AsyncAPI semantic violation.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an AsyncAPI document.
// This includes YAML/JSON deserialization errors and document-level issues
// such as a missing or unsupported asyncapi version.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DecodeError represents a field-level failure while decoding a document
// object into its typed representation. The Path identifies the object in
// the document and Field the offending wire-format key.
type DecodeError struct {
	// Path is the document path to the object (e.g., "servers.production")
	Path string
	// Field is the wire name of the problematic field (e.g., "protocol")
	Field string
	// Expected describes the expected shape or token set, if known
	Expected string
	// IsMissingField is true when a required field was absent
	IsMissingField bool
	// IsUnknownField is true when a strict object rejected a field
	IsUnknownField bool
	// IsTypeMismatch is true when a field held the wrong value type
	IsTypeMismatch bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	switch {
	case e.IsMissingField:
		msg = "missing required field"
	case e.IsUnknownField:
		msg = "unknown field"
	case e.IsTypeMismatch:
		msg = "type mismatch"
	}
	loc := e.Path
	if e.Field != "" {
		if loc != "" {
			loc += "."
		}
		loc += e.Field
	}
	if loc != "" {
		msg += ": " + loc
	}
	if e.Expected != "" {
		msg += " (expected " + e.Expected + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrDecode, and also ErrMissingField, ErrUnknownField, or
// ErrTypeMismatch when the corresponding flag is set.
func (e *DecodeError) Is(target error) bool {
	if target == ErrDecode {
		return true
	}
	if target == ErrMissingField && e.IsMissingField {
		return true
	}
	if target == ErrUnknownField && e.IsUnknownField {
		return true
	}
	if target == ErrTypeMismatch && e.IsTypeMismatch {
		return true
	}
	return false
}

// NewMissingField creates a DecodeError for a required field that was
// absent from the document object at path.
func NewMissingField(path, field string) *DecodeError {
	return &DecodeError{
		Path:           path,
		Field:          field,
		IsMissingField: true,
	}
}

// NewUnknownField creates a DecodeError for a field rejected by a strict
// document object at path.
func NewUnknownField(path, field string) *DecodeError {
	return &DecodeError{
		Path:           path,
		Field:          field,
		IsUnknownField: true,
	}
}

// NewTypeMismatch creates a DecodeError for a field that held a value of
// the wrong type. expected describes the required shape or token set.
func NewTypeMismatch(path, field, expected string) *DecodeError {
	return &DecodeError{
		Path:           path,
		Field:          field,
		Expected:       expected,
		IsTypeMismatch: true,
	}
}

// ValidationError represents an AsyncAPI semantic violation.
type ValidationError struct {
	// Path is the document path to the problematic object (e.g., "servers.production.security[0]")
	Path string
	// Field is the specific field name with the issue
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
