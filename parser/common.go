package parser

// RefOr holds either an inline value or a reference to a value declared
// elsewhere in the document (typically under components). The wire format
// keys the choice by the presence of a "$ref" field: an object carrying
// "$ref" decodes as a reference, anything else decodes as an inline T.
//
// RefOr performs no resolution; resolving Ref against the document's
// components is the consumer's job (see the validator package for the
// dangling-reference check).
type RefOr[T any] struct {
	// Ref is the reference string (e.g., "#/components/securitySchemes/saslScram")
	Ref string
	// Value is the inline value. Nil when Ref is set.
	Value *T
}

// NewRef creates a RefOr holding a reference string.
func NewRef[T any](ref string) *RefOr[T] {
	return &RefOr[T]{Ref: ref}
}

// NewInline creates a RefOr holding an inline value.
func NewInline[T any](value *T) *RefOr[T] {
	return &RefOr[T]{Value: value}
}

// IsRef reports whether the wrapper holds a reference rather than an
// inline value.
func (r *RefOr[T]) IsRef() bool {
	return r != nil && r.Ref != ""
}

// Tag adds metadata for logical grouping and categorization of servers
type Tag struct {
	Name         string               `yaml:"name" json:"name"`
	Description  string               `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *RefOr[ExternalDocs] `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
