// Package jsonhelpers provides helper functions for JSON marshaling and
// unmarshaling with support for extension fields (x-* properties) in
// AsyncAPI documents.
//
// This package reduces boilerplate code in custom JSON marshal/unmarshal
// implementations while preserving extension fields that are not part of
// the AsyncAPI schema.
package jsonhelpers

import (
	"encoding/json"
	"maps"
)

// MarshalWithExtras marshals a base map while merging in extension fields.
// This is used in custom MarshalJSON implementations to combine known fields
// with unknown extension fields (typically x-* properties).
//
// Example:
//
//	func (s *Server) MarshalJSON() ([]byte, error) {
//	    base := map[string]any{
//	        "host":     s.Host,
//	        "protocol": s.Protocol,
//	    }
//	    return jsonhelpers.MarshalWithExtras(base, s.Extra)
//	}
func MarshalWithExtras(base map[string]any, extras map[string]any) ([]byte, error) {
	maps.Copy(base, extras)
	return json.Marshal(base)
}

// RawFields unmarshals a JSON object into a map of raw messages keyed by
// field name. This is the first step of custom UnmarshalJSON
// implementations that need to distinguish an absent field from a
// zero-valued one (required-field enforcement, strict objects).
func RawFields(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// IsExtensionKey reports whether key names a specification extension
// (an "x-" prefixed property).
func IsExtensionKey(key string) bool {
	return len(key) >= 2 && key[0] == 'x' && key[1] == '-'
}

// ExtractExtensions extracts specification extension fields (x-* properties)
// from JSON data. This is the common pattern used in UnmarshalJSON methods
// to capture extension fields.
//
// Returns nil if no extensions are found or if the data cannot be parsed.
// This function never returns an error - parsing failures result in nil extensions.
//
// Example:
//
//	func (t *Tag) UnmarshalJSON(data []byte) error {
//	    type alias Tag
//	    if err := json.Unmarshal(data, (*alias)(t)); err != nil {
//	        return err
//	    }
//	    t.Extra = jsonhelpers.ExtractExtensions(data)
//	    return nil
//	}
// ExtractUnknown extracts every field not listed in known from JSON data.
// This is used by container objects that must retain unmodeled document
// sections across a load/emit cycle, not just x-* extensions.
//
// Returns nil if no unknown fields are found or if the data cannot be parsed.
func ExtractUnknown(data []byte, known map[string]bool) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}

	var extra map[string]any
	for k, v := range m {
		if !known[k] {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = v
		}
	}
	return extra
}

func ExtractExtensions(data []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}

	var extra map[string]any
	for k, v := range m {
		if IsExtensionKey(k) {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = v
		}
	}
	return extra
}
