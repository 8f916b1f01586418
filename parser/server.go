package parser

// Servers maps server names to server declarations or references to
// servers declared under components.
type Servers map[string]*RefOr[Server]

// Server describes a messaging broker, server, or other system a client
// can connect to in order to send or receive messages.
type Server struct {
	// Host is the server host name. It MAY include the port. This field
	// supports server variables; substitutions are made when a variable is
	// named in {braces}.
	Host string `yaml:"host" json:"host"`
	// Protocol is the protocol this server supports for connection.
	Protocol string `yaml:"protocol" json:"protocol"`
	// ProtocolVersion is the version of the protocol used for connection.
	// For instance: AMQP 0.9.1, HTTP 2.0, Kafka 1.0.0, etc.
	ProtocolVersion string `yaml:"protocolVersion,omitempty" json:"protocolVersion,omitempty"`
	// Pathname is the path to a resource in the host. This field supports
	// server variables; substitutions are made when a variable is named in
	// {braces}.
	Pathname string `yaml:"pathname,omitempty" json:"pathname,omitempty"`
	// Description is an optional string describing the server. CommonMark
	// syntax MAY be used for rich text representation.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Title is a human-friendly title for the server.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	// Summary is a short summary of the server.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
	// Variables maps variable names to values used for substitution in the
	// server's host and pathname template.
	Variables map[string]*RefOr[Variable] `yaml:"variables" json:"variables"`
	// Security declares which security schemes can be used with this
	// server. Only one of the listed schemes needs to be satisfied to
	// authorize a connection or operation. An empty list means no security.
	Security []*RefOr[SecurityScheme] `yaml:"security,omitempty" json:"security,omitempty"`
	// Tags is a list of tags for logical grouping and categorization of servers.
	Tags []*Tag `yaml:"tags" json:"tags"`
	// ExternalDocs is additional external documentation for this server.
	ExternalDocs *RefOr[ExternalDocs] `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Bindings maps protocol names to protocol-specific definitions for
	// the server.
	Bindings *RefOr[ServerBindings] `yaml:"bindings,omitempty" json:"bindings,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Variable is a named template placeholder substitutable into a server's
// host or pathname pattern.
type Variable struct {
	// EnumValues is an enumeration of string values to be used if the
	// substitution options are from a limited set. It serializes under the
	// wire key "enum".
	EnumValues []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	// Default is the value to use for substitution if an alternate value
	// is not supplied.
	Default string `yaml:"default,omitempty" json:"default,omitempty"`
	// Description is an optional description for the server variable.
	// CommonMark syntax MAY be used for rich text representation.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Examples is a list of example values for the server variable.
	Examples []string `yaml:"examples" json:"examples"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ServerBindings maps protocol names to protocol-specific server
// configuration. The binding objects currently carry no fields; they are
// reserved extension points that reject unrecognized sub-fields so that
// documents written against a future version fail loudly here rather than
// silently dropping settings.
type ServerBindings struct {
	WS   *WebSocketServerBinding `yaml:"ws,omitempty" json:"ws,omitempty"`
	NATS *NATSServerBinding      `yaml:"nats,omitempty" json:"nats,omitempty"`
	HTTP *HTTPServerBinding      `yaml:"http,omitempty" json:"http,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// WebSocketServerBinding reserves protocol-specific WebSocket server
// settings. No fields are defined yet; decoding rejects any sub-field.
type WebSocketServerBinding struct{}

// NATSServerBinding reserves protocol-specific NATS server settings.
// No fields are defined yet; decoding rejects any sub-field.
type NATSServerBinding struct{}

// HTTPServerBinding reserves protocol-specific HTTP server settings.
// No fields are defined yet; decoding rejects any sub-field.
type HTTPServerBinding struct{}
