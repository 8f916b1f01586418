// Package parser provides typed models and document loading for the
// server and security-scheme sections of AsyncAPI v3 documents.
//
// Import path: github.com/erraggy/asyncapitools/parser
//
// # Model
//
// The model mirrors the wire format's object shapes:
//
//   - [SecurityScheme] with its thirteen kind members (userPassword,
//     apiKey, x509, symmetricEncryption, asymmetricEncryption,
//     httpApiKey, http, oauth2, openIdConnect, plain, scramSha256,
//     scramSha512, gssapi)
//   - [OAuthFlows] with the four flow shapes (implicit, password,
//     clientCredentials, authorizationCode)
//   - [Server], [Variable], and the [ServerBindings] markers (ws, nats, http)
//   - [RefOr], the inline-value-or-reference wrapper used throughout
//
// Decoding enforces the structural contract only: required fields fail
// with an [aaerrors.DecodeError] naming the field, the location enums
// accept their fixed wire tokens, collection-valued fields default to
// empty when absent, and the zero-field binding markers reject every
// sub-field. Semantic rules such as scheme-kind exclusivity or URL
// absoluteness are intentionally left to the validator package so that
// lenient documents round-trip untouched.
//
// # Loading
//
// Documents load from YAML or JSON through [Parser.Parse],
// [Parser.ParseBytes], [Parser.ParseReader], or the functional-options
// entry point [ParseWithOptions]:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("asyncapi.yaml"),
//	)
//
// YAML input is normalized through a generic map and encoding/json so
// that both formats pass through the same decode rules.
package parser
