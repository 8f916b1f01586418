package parser

import (
	"encoding/json"
	"sort"

	"github.com/erraggy/asyncapitools/aaerrors"
	"github.com/erraggy/asyncapitools/parser/internal/jsonhelpers"
)

// This file contains the JSON codecs for server-related types.
//
// Decoding enforces the structural contract of the server object: host and
// protocol are required, the collection-valued fields default to empty
// rather than failing when absent, and the binding marker objects reject
// every sub-field. Semantic rules (dangling references, URL absoluteness,
// variable consistency) live in the validator package.

// MarshalJSON implements custom JSON marshaling for Server.
// The variables and tags keys are always emitted (empty when unset,
// matching the wire convention); security is omitted when empty.
func (s *Server) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 12+len(s.Extra))
	m["host"] = s.Host
	m["protocol"] = s.Protocol
	if s.ProtocolVersion != "" {
		m["protocolVersion"] = s.ProtocolVersion
	}
	if s.Pathname != "" {
		m["pathname"] = s.Pathname
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Summary != "" {
		m["summary"] = s.Summary
	}
	variables := s.Variables
	if variables == nil {
		variables = map[string]*RefOr[Variable]{}
	}
	m["variables"] = variables
	if len(s.Security) > 0 {
		m["security"] = s.Security
	}
	tags := s.Tags
	if tags == nil {
		tags = []*Tag{}
	}
	m["tags"] = tags
	if s.ExternalDocs != nil {
		m["externalDocs"] = s.ExternalDocs
	}
	if s.Bindings != nil {
		m["bindings"] = s.Bindings
	}
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for Server.
// The host and protocol fields are required; absent variables, security,
// and tags keys decode to empty collections.
func (s *Server) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "server", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["host"]; !ok {
		return aaerrors.NewMissingField("server", "host")
	}
	if _, ok := raw["protocol"]; !ok {
		return aaerrors.NewMissingField("server", "protocol")
	}
	type alias Server
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return wrapDecodeErr("server", err)
	}
	if s.Variables == nil {
		s.Variables = map[string]*RefOr[Variable]{}
	}
	if s.Security == nil {
		s.Security = []*RefOr[SecurityScheme]{}
	}
	if s.Tags == nil {
		s.Tags = []*Tag{}
	}
	s.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for Variable.
// The in-memory EnumValues field serializes under the reserved wire key
// "enum"; the examples key is always emitted.
func (v *Variable) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 4+len(v.Extra))
	if v.EnumValues != nil {
		m["enum"] = v.EnumValues
	}
	if v.Default != "" {
		m["default"] = v.Default
	}
	if v.Description != "" {
		m["description"] = v.Description
	}
	examples := v.Examples
	if examples == nil {
		examples = []string{}
	}
	m["examples"] = examples
	return jsonhelpers.MarshalWithExtras(m, v.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for Variable.
// The wire key "enum" populates EnumValues; an absent examples key decodes
// to an empty list.
func (v *Variable) UnmarshalJSON(data []byte) error {
	type alias Variable
	if err := json.Unmarshal(data, (*alias)(v)); err != nil {
		return wrapDecodeErr("variable", err)
	}
	if v.Examples == nil {
		v.Examples = []string{}
	}
	v.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for ServerBindings.
func (b *ServerBindings) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(b.Extra) == 0 {
		type alias ServerBindings
		return json.Marshal((*alias)(b))
	}
	m := make(map[string]any, 3+len(b.Extra))
	if b.WS != nil {
		m["ws"] = b.WS
	}
	if b.NATS != nil {
		m["nats"] = b.NATS
	}
	if b.HTTP != nil {
		m["http"] = b.HTTP
	}
	return jsonhelpers.MarshalWithExtras(m, b.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for ServerBindings.
func (b *ServerBindings) UnmarshalJSON(data []byte) error {
	type alias ServerBindings
	if err := json.Unmarshal(data, (*alias)(b)); err != nil {
		return wrapDecodeErr("bindings", err)
	}
	b.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// unmarshalStrictMarker decodes a zero-field binding marker, failing on
// any sub-field. With multiple offending fields the rejection is
// deterministic: the lexically smallest key is reported.
func unmarshalStrictMarker(data []byte, path string) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Path: path, Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if len(raw) == 0 {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return aaerrors.NewUnknownField(path, keys[0])
}

// UnmarshalJSON implements custom JSON unmarshaling for WebSocketServerBinding.
// Any sub-field fails decoding.
func (b *WebSocketServerBinding) UnmarshalJSON(data []byte) error {
	return unmarshalStrictMarker(data, "bindings.ws")
}

// UnmarshalJSON implements custom JSON unmarshaling for NATSServerBinding.
// Any sub-field fails decoding.
func (b *NATSServerBinding) UnmarshalJSON(data []byte) error {
	return unmarshalStrictMarker(data, "bindings.nats")
}

// UnmarshalJSON implements custom JSON unmarshaling for HTTPServerBinding.
// Any sub-field fails decoding.
func (b *HTTPServerBinding) UnmarshalJSON(data []byte) error {
	return unmarshalStrictMarker(data, "bindings.http")
}
