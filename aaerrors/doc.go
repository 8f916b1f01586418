// Package aaerrors provides structured error types for the asyncapitools library.
//
// Import path: github.com/erraggy/asyncapitools/aaerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ParseError]: YAML/JSON parsing failures and document-level issues
//   - [DecodeError]: Field-level decoding failures with document paths
//   - [ValidationError]: AsyncAPI semantic violations
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrMissingField]: Matches [DecodeError] with IsMissingField=true
//   - [ErrUnknownField]: Matches [DecodeError] with IsUnknownField=true
//   - [ErrTypeMismatch]: Matches [DecodeError] with IsTypeMismatch=true
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("asyncapi.yaml"))
//	if errors.Is(err, aaerrors.ErrMissingField) {
//	    // Handle missing required field
//	}
//
// Extract error details with errors.As():
//
//	var decErr *aaerrors.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Printf("Failed to decode %s.%s\n", decErr.Path, decErr.Field)
//	}
package aaerrors
