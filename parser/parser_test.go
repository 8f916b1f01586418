package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asyncapitools/aaerrors"
)

const kafkaYAML = `
asyncapi: 3.0.0
info:
  title: Event Platform
  version: 1.0.0
servers:
  production:
    host: "{region}.broker.example.com"
    protocol: kafka
    protocolVersion: 3.5.0
    description: Production Kafka cluster
    variables:
      region:
        enum:
          - us-east-1
          - eu-west-1
        default: us-east-1
    security:
      - $ref: '#/components/securitySchemes/saslScram'
    tags:
      - name: env:production
components:
  securitySchemes:
    saslScram:
      scramSha256:
        description: SASL/SCRAM-SHA-256
`

const kafkaJSON = `{
  "asyncapi": "3.0.0",
  "servers": {
    "production": {
      "host": "broker.example.com:9092",
      "protocol": "kafka",
      "bindings": {"ws": {}}
    }
  }
}`

func TestParseBytesYAML(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(kafkaYAML))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Equal(t, Version300, result.SpecVersion)
	assert.Equal(t, int64(len(kafkaYAML)), result.SourceSize)

	doc := result.Document
	require.NotNil(t, doc)
	assert.Equal(t, Version300, doc.SpecVersion)

	prod := doc.Servers["production"]
	require.NotNil(t, prod)
	require.NotNil(t, prod.Value)
	assert.Equal(t, "{region}.broker.example.com", prod.Value.Host)
	assert.Equal(t, "kafka", prod.Value.Protocol)
	assert.Equal(t, []string{"us-east-1", "eu-west-1"}, prod.Value.Variables["region"].Value.EnumValues)
	require.Len(t, prod.Value.Security, 1)
	assert.Equal(t, "#/components/securitySchemes/saslScram", prod.Value.Security[0].Ref)

	scheme := doc.Components.SecuritySchemes["saslScram"]
	require.NotNil(t, scheme)
	require.NotNil(t, scheme.Value.ScramSHA256)
	assert.Equal(t, "SASL/SCRAM-SHA-256", scheme.Value.ScramSHA256.Description)

	// unmodeled sections survive in Extra
	info, ok := doc.Extra["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Event Platform", info["title"])
}

func TestParseBytesJSON(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(kafkaJSON))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
	assert.Equal(t, "3.0.0", result.Version)

	prod := result.Document.Servers["production"]
	require.NotNil(t, prod.Value)
	assert.Equal(t, "broker.example.com:9092", prod.Value.Host)
	require.NotNil(t, prod.Value.Bindings)
	assert.NotNil(t, prod.Value.Bindings.Value.WS)
}

func TestParseBytesStructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		sentinel error
	}{
		{
			name:     "server missing protocol",
			doc:      `{"asyncapi": "3.0.0", "servers": {"prod": {"host": "h"}}}`,
			sentinel: aaerrors.ErrMissingField,
		},
		{
			name:     "binding with sub-field",
			doc:      `{"asyncapi": "3.0.0", "servers": {"prod": {"host": "h", "protocol": "ws", "bindings": {"ws": {"method": "GET"}}}}}`,
			sentinel: aaerrors.ErrUnknownField,
		},
		{
			name:     "bad apiKey location token",
			doc:      `{"asyncapi": "3.0.0", "components": {"securitySchemes": {"k": {"apiKey": {"in": "header"}}}}}`,
			sentinel: aaerrors.ErrTypeMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestParseBytesYAMLStructuralErrors(t *testing.T) {
	// the same codec rules apply when the source is YAML
	doc := `
asyncapi: 3.0.0
servers:
  prod:
    host: broker.example.com
    protocol: ws
    bindings:
      ws:
        method: GET
`
	_, err := New().ParseBytes([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, aaerrors.ErrUnknownField)
}

func TestParseVersionDetection(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "missing asyncapi field",
			doc:     `{"servers": {}}`,
			wantMsg: `missing "asyncapi" version field`,
		},
		{
			name:    "non-string asyncapi field",
			doc:     `{"asyncapi": 3}`,
			wantMsg: `must be a string`,
		},
		{
			name:    "v2 document rejected",
			doc:     `{"asyncapi": "2.6.0"}`,
			wantMsg: "unsupported AsyncAPI version: 2.6.0",
		},
		{
			name:    "malformed version rejected",
			doc:     `{"asyncapi": "three"}`,
			wantMsg: "unsupported AsyncAPI version: three",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.doc))
			require.Error(t, err)

			var parseErr *aaerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Error(), tt.wantMsg)
		})
	}
}

func TestParsePatchVersionsAccepted(t *testing.T) {
	for _, version := range []string{"3.0.0", "3.0.1", "3.0.2"} {
		t.Run(version, func(t *testing.T) {
			result, err := New().ParseBytes([]byte(`{"asyncapi": "` + version + `"}`))
			require.NoError(t, err)
			assert.Equal(t, version, result.Version)
			assert.Equal(t, Version300, result.SpecVersion)
		})
	}
}

func TestParseAcceptAnyVersion(t *testing.T) {
	doc := `{"asyncapi": "4.0.0", "servers": {"prod": {"host": "h", "protocol": "mqtt"}}}`

	_, err := New().ParseBytes([]byte(doc))
	require.Error(t, err)

	p := New()
	p.AcceptAnyVersion = true
	result, err := p.ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "4.0.0", result.Version)
	assert.Equal(t, VersionUnknown, result.SpecVersion)
	require.NotNil(t, result.Document.Servers["prod"])
}

func TestParseInvalidSyntax(t *testing.T) {
	t.Run("bad JSON", func(t *testing.T) {
		_, err := New().ParseBytes([]byte(`{"asyncapi": `))
		require.Error(t, err)
		assert.ErrorIs(t, err, aaerrors.ErrParse)
	})

	t.Run("bad YAML", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("asyncapi: 3.0.0\n\t tabs are not indentation"))
		require.Error(t, err)
		assert.ErrorIs(t, err, aaerrors.ErrParse)
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asyncapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(kafkaYAML), 0600))

	result, err := New().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Positive(t, result.LoadTime)
}

func TestParseFileNotFound(t *testing.T) {
	_, err := New().Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var parseErr *aaerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "failed to read file")
}

func TestParseReader(t *testing.T) {
	result, err := New().ParseReader(strings.NewReader(kafkaJSON))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.json", result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
}

func TestParseWithOptions(t *testing.T) {
	t.Run("bytes source", func(t *testing.T) {
		result, err := ParseWithOptions(WithBytes([]byte(kafkaYAML)))
		require.NoError(t, err)
		assert.Equal(t, "3.0.0", result.Version)
	})

	t.Run("source name override", func(t *testing.T) {
		result, err := ParseWithOptions(
			WithReader(strings.NewReader(kafkaJSON)),
			WithSourceName("stdin"),
		)
		require.NoError(t, err)
		assert.Equal(t, "stdin", result.SourcePath)
	})

	t.Run("accept any version", func(t *testing.T) {
		result, err := ParseWithOptions(
			WithBytes([]byte(`{"asyncapi": "4.0.0"}`)),
			WithAcceptAnyVersion(true),
		)
		require.NoError(t, err)
		assert.Equal(t, VersionUnknown, result.SpecVersion)
	})
}

func TestParseWithOptionsConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantMsg string
	}{
		{
			name:    "no source",
			opts:    nil,
			wantMsg: "no input source specified",
		},
		{
			name: "multiple sources",
			opts: []Option{
				WithBytes([]byte(`{}`)),
				WithReader(strings.NewReader("{}")),
			},
			wantMsg: "multiple input sources specified",
		},
		{
			name:    "empty file path",
			opts:    []Option{WithFilePath("")},
			wantMsg: "file path cannot be empty",
		},
		{
			name:    "nil reader",
			opts:    []Option{WithReader(nil)},
			wantMsg: "reader cannot be nil",
		},
		{
			name:    "nil bytes",
			opts:    []Option{WithBytes(nil)},
			wantMsg: "data cannot be nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, aaerrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	result, err := New().ParseBytes([]byte(kafkaYAML))
	require.NoError(t, err)

	out, err := json.Marshal(result.Document)
	require.NoError(t, err)

	var doc2 Document
	require.NoError(t, json.Unmarshal(out, &doc2))
	assert.True(t, result.Document.Equals(&doc2))

	// the unmodeled info section survives the cycle
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Contains(t, m, "info")
}

func TestDetectFormatFromContent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want SourceFormat
	}{
		{name: "object", data: `{"asyncapi": "3.0.0"}`, want: SourceFormatJSON},
		{name: "array", data: `[]`, want: SourceFormatJSON},
		{name: "leading whitespace object", data: "\n\t {}", want: SourceFormatJSON},
		{name: "yaml mapping", data: "asyncapi: 3.0.0", want: SourceFormatYAML},
		{name: "empty", data: "", want: SourceFormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectFormatFromContent([]byte(tt.data)))
		})
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("spec.json"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("spec.yaml"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("spec.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("spec.txt"))
}
