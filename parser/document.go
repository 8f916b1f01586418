package parser

// Document represents the subset of an AsyncAPI v3 document this library
// models: the asyncapi version, the servers map, and the reusable
// component definitions that server entries may reference. Sections the
// library does not model (channels, operations, info, and so on) are
// retained untouched in Extra so a document survives a load/emit cycle.
type Document struct {
	// AsyncAPI is the AsyncAPI specification version of the document
	AsyncAPI string `yaml:"asyncapi" json:"asyncapi"`
	// Servers maps server names to server declarations or references
	Servers Servers `yaml:"servers,omitempty" json:"servers,omitempty"`
	// Components holds reusable objects for different aspects of the document
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
	// SpecVersion is the enumerated AsyncAPI version, set during parsing
	SpecVersion SpecVersion `yaml:"-" json:"-"`
	// Extra captures the document sections this library does not model,
	// plus specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects scoped to the server and
// security-scheme sections of the document. Server entries reference them
// by "#/components/..." pointers.
type Components struct {
	Servers         map[string]*RefOr[Server]         `yaml:"servers,omitempty" json:"servers,omitempty"`
	ServerVariables map[string]*RefOr[Variable]       `yaml:"serverVariables,omitempty" json:"serverVariables,omitempty"`
	SecuritySchemes map[string]*RefOr[SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	ServerBindings  map[string]*RefOr[ServerBindings] `yaml:"serverBindings,omitempty" json:"serverBindings,omitempty"`
	Tags            map[string]*Tag                   `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs    map[string]*RefOr[ExternalDocs]   `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures component kinds this library does not model, plus
	// specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
