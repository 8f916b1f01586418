// Package validator provides semantic validation for the server and
// security-scheme portions of AsyncAPI v3 documents.
//
// The parser's object model is deliberately permissive: it preserves any
// combination of scheme kinds, any URL string, and any reference target so
// that documents round-trip without loss. This package reports the semantic
// violations that permissiveness allows:
//
//   - security schemes that set zero or multiple scheme kinds
//   - oauth2 flows objects that configure no flow
//   - relative URLs where the format requires absolute ones
//   - local references that do not resolve within #/components
//   - variable defaults and examples outside the declared enum
//   - host and pathname placeholders with no matching variable
//
// Use ValidateFile or ValidateBytes to parse and validate in one step, or
// construct a Validator and call ValidateDocument on an already-parsed
// document.
package validator
