package parser

import (
	"encoding/json"

	"github.com/erraggy/asyncapitools/aaerrors"
	"github.com/erraggy/asyncapitools/parser/internal/jsonhelpers"
)

// documentKnownFields are the Document keys decoded into typed fields;
// everything else is retained in Extra.
var documentKnownFields = map[string]bool{
	"asyncapi":   true,
	"servers":    true,
	"components": true,
}

// componentsKnownFields are the Components keys decoded into typed fields;
// everything else is retained in Extra.
var componentsKnownFields = map[string]bool{
	"servers":         true,
	"serverVariables": true,
	"securitySchemes": true,
	"serverBindings":  true,
	"tags":            true,
	"externalDocs":    true,
}

// MarshalJSON implements custom JSON marshaling for Document.
// Unmodeled sections retained in Extra are flattened back into the
// top-level object.
func (d *Document) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 3+len(d.Extra))
	m["asyncapi"] = d.AsyncAPI
	if len(d.Servers) > 0 {
		m["servers"] = d.Servers
	}
	if d.Components != nil {
		m["components"] = d.Components
	}
	return jsonhelpers.MarshalWithExtras(m, d.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for Document.
// The asyncapi field is required; unmodeled sections are retained in Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "document", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["asyncapi"]; !ok {
		return aaerrors.NewMissingField("", "asyncapi")
	}
	type alias Document
	if err := json.Unmarshal(data, (*alias)(d)); err != nil {
		return wrapDecodeErr("document", err)
	}
	d.Extra = jsonhelpers.ExtractUnknown(data, documentKnownFields)
	return nil
}

// MarshalJSON implements custom JSON marshaling for Components.
func (c *Components) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(c.Extra) == 0 {
		type alias Components
		return json.Marshal((*alias)(c))
	}
	m := make(map[string]any, 6+len(c.Extra))
	if len(c.Servers) > 0 {
		m["servers"] = c.Servers
	}
	if len(c.ServerVariables) > 0 {
		m["serverVariables"] = c.ServerVariables
	}
	if len(c.SecuritySchemes) > 0 {
		m["securitySchemes"] = c.SecuritySchemes
	}
	if len(c.ServerBindings) > 0 {
		m["serverBindings"] = c.ServerBindings
	}
	if len(c.Tags) > 0 {
		m["tags"] = c.Tags
	}
	if len(c.ExternalDocs) > 0 {
		m["externalDocs"] = c.ExternalDocs
	}
	return jsonhelpers.MarshalWithExtras(m, c.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for Components.
// Unmodeled component kinds are retained in Extra.
func (c *Components) UnmarshalJSON(data []byte) error {
	type alias Components
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return wrapDecodeErr("components", err)
	}
	c.Extra = jsonhelpers.ExtractUnknown(data, componentsKnownFields)
	return nil
}
