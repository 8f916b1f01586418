package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asyncapitools/aaerrors"
)

// Parser handles AsyncAPI document parsing
type Parser struct {
	// AcceptAnyVersion disables the asyncapi version check. When enabled,
	// documents declaring versions outside the supported 3.0.x series are
	// decoded anyway and ParseResult.SpecVersion is VersionUnknown.
	// Useful for inspecting pre-release documents; the server object shape
	// must still match the v3 model.
	AcceptAnyVersion bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source AsyncAPI document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed AsyncAPI document and metadata.
//
// # Immutability
//
// While Go does not enforce immutability, callers should treat ParseResult
// as read-only after parsing. The decoded document is a plain value graph
// that is safe to share across concurrent readers as long as nothing
// mutates it.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from
	SourcePath string
	// SourceFormat is the detected format of the source data
	SourceFormat SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// Version is the asyncapi version string as declared by the document
	Version string
	// SpecVersion is the enumerated AsyncAPI version
	SpecVersion SpecVersion
	// Data is the raw parsed document as a generic map
	Data map[string]any
	// Document is the typed document model
	Document *Document
}

// Parse parses an AsyncAPI document from a file path
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath) //nolint:gosec // G304 - path is user-provided input
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &aaerrors.ParseError{
			Path:    specPath,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	res, err := p.parseBytes(data, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	// Prefer the extension over content sniffing when the path carries one
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an AsyncAPI document from an io.Reader
// Note: since there is no actual source path, ParseResult.SourcePath will
// be set to ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &aaerrors.ParseError{Message: "failed to read data", Cause: err}
	}
	res, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses an AsyncAPI document from a byte slice
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	return res, nil
}

// parseBytes is the shared parse pipeline. YAML input is normalized to a
// generic map and re-encoded through encoding/json, so the required-field
// and strict-binding rules implemented in the UnmarshalJSON codecs apply
// to both source formats.
func (p *Parser) parseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	result := &ParseResult{
		SourcePath: sourcePath,
		SourceSize: int64(len(data)),
	}
	result.SourceFormat = detectFormatFromContent(data)

	// First pass: parse to a generic map to detect the asyncapi version
	jsonData := data
	if result.SourceFormat == SourceFormatJSON {
		if err := json.Unmarshal(data, &result.Data); err != nil {
			return nil, &aaerrors.ParseError{Path: sourcePath, Message: "failed to parse JSON", Cause: err}
		}
	} else {
		if err := yaml.Unmarshal(data, &result.Data); err != nil {
			return nil, &aaerrors.ParseError{Path: sourcePath, Message: "failed to parse YAML", Cause: err}
		}
		// Re-encode so the typed decode below goes through the JSON codecs
		encoded, err := json.Marshal(result.Data)
		if err != nil {
			return nil, &aaerrors.ParseError{
				Path:    sourcePath,
				Message: "document contains structures not representable in the object model",
				Cause:   err,
			}
		}
		jsonData = encoded
	}

	version, specVersion, err := p.detectVersion(result.Data, sourcePath)
	if err != nil {
		return nil, err
	}
	result.Version = version
	result.SpecVersion = specVersion

	var doc Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		if sourcePath != "" {
			return nil, fmt.Errorf("parser: %s: %w", sourcePath, err)
		}
		return nil, fmt.Errorf("parser: %w", err)
	}
	doc.SpecVersion = specVersion
	result.Document = &doc

	p.log().Debug("parsed document",
		"source", result.SourcePath,
		"format", result.SourceFormat,
		"version", version,
		"servers", len(doc.Servers))

	return result, nil
}

// detectVersion reads and checks the asyncapi version declaration.
func (p *Parser) detectVersion(data map[string]any, sourcePath string) (string, SpecVersion, error) {
	raw, ok := data["asyncapi"]
	if !ok {
		return "", VersionUnknown, &aaerrors.ParseError{
			Path:    sourcePath,
			Message: `missing "asyncapi" version field`,
			Cause:   aaerrors.NewMissingField("", "asyncapi"),
		}
	}
	version, ok := raw.(string)
	if !ok {
		return "", VersionUnknown, &aaerrors.ParseError{
			Path:    sourcePath,
			Message: `"asyncapi" version field must be a string`,
			Cause:   aaerrors.NewTypeMismatch("", "asyncapi", "string"),
		}
	}
	specVersion, ok := ParseVersion(version)
	if !ok {
		if p.AcceptAnyVersion {
			p.log().Warn("unsupported asyncapi version accepted", "version", version)
			return version, VersionUnknown, nil
		}
		return "", VersionUnknown, &aaerrors.ParseError{
			Path:    sourcePath,
			Message: fmt.Sprintf("unsupported AsyncAPI version: %s (only 3.0.x is supported)", version),
		}
	}
	return version, specVersion, nil
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON typically starts with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
