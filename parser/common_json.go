package parser

import (
	"encoding/json"
	"errors"

	"github.com/erraggy/asyncapitools/aaerrors"
	"github.com/erraggy/asyncapitools/parser/internal/jsonhelpers"
)

// MarshalJSON implements custom JSON marshaling for RefOr.
// A reference emits {"$ref": ...}; an inline value emits the value itself.
func (r *RefOr[T]) MarshalJSON() ([]byte, error) {
	if r.Ref != "" {
		return json.Marshal(map[string]string{"$ref": r.Ref})
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON implements custom JSON unmarshaling for RefOr.
// An object carrying a "$ref" key decodes as a reference; anything else
// decodes as an inline value.
func (r *RefOr[T]) UnmarshalJSON(data []byte) error {
	if raw, err := jsonhelpers.RawFields(data); err == nil {
		if refData, ok := raw["$ref"]; ok {
			var ref string
			if err := json.Unmarshal(refData, &ref); err != nil {
				return aaerrors.NewTypeMismatch("", "$ref", "string")
			}
			r.Ref = ref
			return nil
		}
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	r.Value = &value
	return nil
}

// MarshalYAML implements yaml.Marshaler so that direct YAML marshaling of
// a model emits the same shape as the JSON codec.
func (r *RefOr[T]) MarshalYAML() (any, error) {
	if r.Ref != "" {
		return map[string]string{"$ref": r.Ref}, nil
	}
	return r.Value, nil
}

// MarshalJSON implements custom JSON marshaling for Tag.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as Go's encoding/json doesn't support
// inline maps like yaml:",inline".
func (t *Tag) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(t.Extra) == 0 {
		type alias Tag
		return json.Marshal((*alias)(t))
	}

	m := make(map[string]any, 3+len(t.Extra))
	m["name"] = t.Name
	if t.Description != "" {
		m["description"] = t.Description
	}
	if t.ExternalDocs != nil {
		m["externalDocs"] = t.ExternalDocs
	}
	return jsonhelpers.MarshalWithExtras(m, t.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for Tag.
// The name field is required; extension fields are captured in Extra.
func (t *Tag) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "tag", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["name"]; !ok {
		return aaerrors.NewMissingField("tag", "name")
	}
	type alias Tag
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return wrapDecodeErr("tag", err)
	}
	t.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for ExternalDocs.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object.
func (e *ExternalDocs) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(e.Extra) == 0 {
		type alias ExternalDocs
		return json.Marshal((*alias)(e))
	}

	m := make(map[string]any, 2+len(e.Extra))
	m["url"] = e.URL
	if e.Description != "" {
		m["description"] = e.Description
	}
	return jsonhelpers.MarshalWithExtras(m, e.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for ExternalDocs.
// The url field is required; extension fields are captured in Extra.
func (e *ExternalDocs) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "externalDocs", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["url"]; !ok {
		return aaerrors.NewMissingField("externalDocs", "url")
	}
	type alias ExternalDocs
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return wrapDecodeErr("externalDocs", err)
	}
	e.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// wrapDecodeErr converts an encoding/json error into a DecodeError rooted
// at path. UnmarshalTypeError carries the offending field and expected Go
// type; anything else is surfaced as a generic decode failure. Errors that
// are already DecodeErrors (from nested custom unmarshalers) pass through
// untouched so their field paths stay intact.
func wrapDecodeErr(path string, err error) error {
	if err == nil {
		return nil
	}
	var decErr *aaerrors.DecodeError
	if errors.As(err, &decErr) {
		return err
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &aaerrors.DecodeError{
			Path:           path,
			Field:          typeErr.Field,
			Expected:       typeErr.Type.String(),
			IsTypeMismatch: true,
			Message:        "cannot decode " + typeErr.Value,
			Cause:          err,
		}
	}
	return &aaerrors.DecodeError{Path: path, Message: "invalid object", Cause: err}
}
