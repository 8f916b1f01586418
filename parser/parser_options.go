package parser

import (
	"io"

	"github.com/erraggy/asyncapitools/aaerrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	acceptAnyVersion bool
	logger           Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses an AsyncAPI document using functional options.
// This provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("asyncapi.yaml"),
//	    parser.WithLogger(logger),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		AcceptAnyVersion: cfg.acceptAnyVersion,
		Logger:           cfg.logger,
	}

	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	default:
		result, parseErr = p.ParseBytes(cfg.bytes)
	}
	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions runs the options over a fresh config and checks that
// exactly one input source was selected.
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.bytes != nil {
		sources++
	}
	switch sources {
	case 0:
		return nil, &aaerrors.ConfigError{
			Message: "no input source specified: use WithFilePath, WithReader, or WithBytes",
		}
	case 1:
		return cfg, nil
	default:
		return nil, &aaerrors.ConfigError{
			Message: "multiple input sources specified: use exactly one of WithFilePath, WithReader, or WithBytes",
		}
	}
}

// WithFilePath selects a file as the input source.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return &aaerrors.ConfigError{Option: "WithFilePath", Message: "file path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader selects an io.Reader as the input source.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &aaerrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes selects an in-memory byte slice as the input source.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &aaerrors.ConfigError{Option: "WithBytes", Message: "data cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceName overrides ParseResult.SourcePath in the result.
// Useful when the input comes from a reader or byte slice but has a
// meaningful origin to report.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// WithLogger configures the structured logger used during parsing.
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithAcceptAnyVersion disables the asyncapi version check.
// See Parser.AcceptAnyVersion.
func WithAcceptAnyVersion(accept bool) Option {
	return func(cfg *parseConfig) error {
		cfg.acceptAnyVersion = accept
		return nil
	}
}
