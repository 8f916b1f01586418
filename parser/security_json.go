package parser

import (
	"encoding/json"

	"github.com/erraggy/asyncapitools/aaerrors"
	"github.com/erraggy/asyncapitools/parser/internal/jsonhelpers"
)

// This file contains the JSON codecs for security-scheme types.
//
// Decoding enforces the structural contract of each scheme kind: required
// fields fail with a DecodeError naming the field, and the location enums
// only accept their fixed wire tokens. Mutual exclusivity of the kind
// members is deliberately NOT enforced here; lenient documents must
// round-trip untouched. See the validator package.

// MarshalJSON implements custom JSON marshaling for SecurityScheme.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as Go's encoding/json doesn't support
// inline maps like yaml:",inline".
func (ss *SecurityScheme) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(ss.Extra) == 0 {
		type alias SecurityScheme
		return json.Marshal((*alias)(ss))
	}

	m := make(map[string]any, 1+len(ss.Extra))
	if ss.UserPassword != nil {
		m["userPassword"] = ss.UserPassword
	}
	if ss.APIKey != nil {
		m["apiKey"] = ss.APIKey
	}
	if ss.X509 != nil {
		m["x509"] = ss.X509
	}
	if ss.SymmetricEncryption != nil {
		m["symmetricEncryption"] = ss.SymmetricEncryption
	}
	if ss.AsymmetricEncryption != nil {
		m["asymmetricEncryption"] = ss.AsymmetricEncryption
	}
	if ss.HTTPAPIKey != nil {
		m["httpApiKey"] = ss.HTTPAPIKey
	}
	if ss.HTTP != nil {
		m["http"] = ss.HTTP
	}
	if ss.OAuth2 != nil {
		m["oauth2"] = ss.OAuth2
	}
	if ss.OpenIDConnect != nil {
		m["openIdConnect"] = ss.OpenIDConnect
	}
	if ss.Plain != nil {
		m["plain"] = ss.Plain
	}
	if ss.ScramSHA256 != nil {
		m["scramSha256"] = ss.ScramSHA256
	}
	if ss.ScramSHA512 != nil {
		m["scramSha512"] = ss.ScramSHA512
	}
	if ss.GSSAPI != nil {
		m["gssapi"] = ss.GSSAPI
	}
	return jsonhelpers.MarshalWithExtras(m, ss.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for SecurityScheme.
// Unrecognized keys are ignored except specification extensions, which are
// captured in the Extra map.
func (ss *SecurityScheme) UnmarshalJSON(data []byte) error {
	type alias SecurityScheme
	if err := json.Unmarshal(data, (*alias)(ss)); err != nil {
		return wrapDecodeErr("securityScheme", err)
	}
	ss.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// marshalDescriptionScheme builds the wire object shared by the
// description-only scheme kinds, flattening extension fields.
func marshalDescriptionScheme(description string, extra map[string]any) ([]byte, error) {
	m := make(map[string]any, 1+len(extra))
	if description != "" {
		m["description"] = description
	}
	return jsonhelpers.MarshalWithExtras(m, extra)
}

// MarshalJSON implements custom JSON marshaling for UserPasswordScheme.
func (s *UserPasswordScheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// MarshalJSON implements custom JSON marshaling for X509Scheme.
func (s *X509Scheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// MarshalJSON implements custom JSON marshaling for SymmetricEncryptionScheme.
func (s *SymmetricEncryptionScheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// MarshalJSON implements custom JSON marshaling for AsymmetricEncryptionScheme.
func (s *AsymmetricEncryptionScheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// MarshalJSON implements custom JSON marshaling for PlainScheme.
func (s *PlainScheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// MarshalJSON implements custom JSON marshaling for ScramSHA256Scheme.
func (s *ScramSHA256Scheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// MarshalJSON implements custom JSON marshaling for ScramSHA512Scheme.
func (s *ScramSHA512Scheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// MarshalJSON implements custom JSON marshaling for GSSAPIScheme.
func (s *GSSAPIScheme) MarshalJSON() ([]byte, error) {
	return marshalDescriptionScheme(s.Description, s.Extra)
}

// unmarshalDescriptionScheme handles the description-only scheme kinds,
// which share an identical wire shape.
func unmarshalDescriptionScheme(data []byte, path string, description *string, extra *map[string]any) error {
	var obj struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return wrapDecodeErr(path, err)
	}
	*description = obj.Description
	*extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// UnmarshalJSON implements custom JSON unmarshaling for UserPasswordScheme.
func (s *UserPasswordScheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "userPassword", &s.Description, &s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for X509Scheme.
func (s *X509Scheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "x509", &s.Description, &s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for SymmetricEncryptionScheme.
func (s *SymmetricEncryptionScheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "symmetricEncryption", &s.Description, &s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for AsymmetricEncryptionScheme.
func (s *AsymmetricEncryptionScheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "asymmetricEncryption", &s.Description, &s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for PlainScheme.
func (s *PlainScheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "plain", &s.Description, &s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for ScramSHA256Scheme.
func (s *ScramSHA256Scheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "scramSha256", &s.Description, &s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for ScramSHA512Scheme.
func (s *ScramSHA512Scheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "scramSha512", &s.Description, &s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for GSSAPIScheme.
func (s *GSSAPIScheme) UnmarshalJSON(data []byte) error {
	return unmarshalDescriptionScheme(data, "gssapi", &s.Description, &s.Extra)
}

// MarshalJSON implements custom JSON marshaling for APIKeyScheme.
func (s *APIKeyScheme) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		type alias APIKeyScheme
		return json.Marshal((*alias)(s))
	}
	m := make(map[string]any, 2+len(s.Extra))
	if s.Description != "" {
		m["description"] = s.Description
	}
	m["in"] = s.In
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for APIKeyScheme.
// The in field is required and must hold the wire token "user" or "password".
func (s *APIKeyScheme) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "apiKey", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["in"]; !ok {
		return aaerrors.NewMissingField("apiKey", "in")
	}
	type alias APIKeyScheme
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return wrapDecodeErr("apiKey", err)
	}
	s.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for HTTPAPIKeyScheme.
func (s *HTTPAPIKeyScheme) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		type alias HTTPAPIKeyScheme
		return json.Marshal((*alias)(s))
	}
	m := make(map[string]any, 3+len(s.Extra))
	if s.Description != "" {
		m["description"] = s.Description
	}
	m["name"] = s.Name
	m["in"] = s.In
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for HTTPAPIKeyScheme.
// The name and in fields are required; in must hold "query", "header", or
// "cookie".
func (s *HTTPAPIKeyScheme) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "httpApiKey", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["name"]; !ok {
		return aaerrors.NewMissingField("httpApiKey", "name")
	}
	if _, ok := raw["in"]; !ok {
		return aaerrors.NewMissingField("httpApiKey", "in")
	}
	type alias HTTPAPIKeyScheme
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return wrapDecodeErr("httpApiKey", err)
	}
	s.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for HTTPScheme.
func (s *HTTPScheme) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		type alias HTTPScheme
		return json.Marshal((*alias)(s))
	}
	m := make(map[string]any, 3+len(s.Extra))
	if s.Description != "" {
		m["description"] = s.Description
	}
	m["scheme"] = s.Scheme
	if s.BearerFormat != "" {
		m["bearerFormat"] = s.BearerFormat
	}
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for HTTPScheme.
// The scheme field is required.
func (s *HTTPScheme) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "http", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["scheme"]; !ok {
		return aaerrors.NewMissingField("http", "scheme")
	}
	type alias HTTPScheme
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return wrapDecodeErr("http", err)
	}
	s.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for OAuth2Scheme.
func (s *OAuth2Scheme) MarshalJSON() ([]byte, error) {
	if len(s.Extra) == 0 {
		type alias OAuth2Scheme
		return json.Marshal((*alias)(s))
	}
	m := make(map[string]any, 3+len(s.Extra))
	if s.Description != "" {
		m["description"] = s.Description
	}
	m["flows"] = s.Flows
	if len(s.Scopes) > 0 {
		m["scopes"] = s.Scopes
	}
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for OAuth2Scheme.
// The flows field is required; scopes defaults to empty.
func (s *OAuth2Scheme) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "oauth2", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["flows"]; !ok {
		return aaerrors.NewMissingField("oauth2", "flows")
	}
	type alias OAuth2Scheme
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return wrapDecodeErr("oauth2", err)
	}
	s.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for OpenIDConnectScheme.
// The scopes key is always emitted, as an empty list when no scopes are set.
func (s *OpenIDConnectScheme) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 3+len(s.Extra))
	if s.Description != "" {
		m["description"] = s.Description
	}
	m["openIdConnectUrl"] = s.OpenIDConnectURL
	scopes := s.Scopes
	if scopes == nil {
		scopes = []string{}
	}
	m["scopes"] = scopes
	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for OpenIDConnectScheme.
// The openIdConnectUrl field is required; an absent scopes key decodes to
// an empty list.
func (s *OpenIDConnectScheme) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "openIdConnect", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["openIdConnectUrl"]; !ok {
		return aaerrors.NewMissingField("openIdConnect", "openIdConnectUrl")
	}
	type alias OpenIDConnectScheme
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return wrapDecodeErr("openIdConnect", err)
	}
	if s.Scopes == nil {
		s.Scopes = []string{}
	}
	s.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// MarshalJSON implements custom JSON marshaling for OAuthFlows.
func (f *OAuthFlows) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(f.Extra) == 0 {
		type alias OAuthFlows
		return json.Marshal((*alias)(f))
	}
	m := make(map[string]any, 4+len(f.Extra))
	if f.Implicit != nil {
		m["implicit"] = f.Implicit
	}
	if f.Password != nil {
		m["password"] = f.Password
	}
	if f.ClientCredentials != nil {
		m["clientCredentials"] = f.ClientCredentials
	}
	if f.AuthorizationCode != nil {
		m["authorizationCode"] = f.AuthorizationCode
	}
	return jsonhelpers.MarshalWithExtras(m, f.Extra)
}

// UnmarshalJSON implements custom JSON unmarshaling for OAuthFlows.
// Any subset of the four flows may be present, including none.
func (f *OAuthFlows) UnmarshalJSON(data []byte) error {
	type alias OAuthFlows
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return wrapDecodeErr("flows", err)
	}
	f.Extra = jsonhelpers.ExtractExtensions(data)
	return nil
}

// marshalFlow builds the wire object shared by the four flow shapes.
// The availableScopes key is always emitted, as an empty mapping when no
// scopes are configured.
func marshalFlow(authorizationURL, tokenURL, refreshURL string, scopes map[string]string, includeAuth, includeToken bool) ([]byte, error) {
	m := make(map[string]any, 4)
	if includeAuth {
		m["authorizationUrl"] = authorizationURL
	}
	if includeToken {
		m["tokenUrl"] = tokenURL
	}
	if refreshURL != "" {
		m["refreshUrl"] = refreshURL
	}
	if scopes == nil {
		scopes = map[string]string{}
	}
	m["availableScopes"] = scopes
	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for ImplicitOAuthFlow.
func (f *ImplicitOAuthFlow) MarshalJSON() ([]byte, error) {
	return marshalFlow(f.AuthorizationURL, "", f.RefreshURL, f.AvailableScopes, true, false)
}

// UnmarshalJSON implements custom JSON unmarshaling for ImplicitOAuthFlow.
// The authorizationUrl field is required; an absent availableScopes key
// decodes to an empty mapping.
func (f *ImplicitOAuthFlow) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "implicit", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["authorizationUrl"]; !ok {
		return aaerrors.NewMissingField("flows.implicit", "authorizationUrl")
	}
	type alias ImplicitOAuthFlow
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return wrapDecodeErr("flows.implicit", err)
	}
	if f.AvailableScopes == nil {
		f.AvailableScopes = map[string]string{}
	}
	return nil
}

// MarshalJSON implements custom JSON marshaling for PasswordOAuthFlow.
func (f *PasswordOAuthFlow) MarshalJSON() ([]byte, error) {
	return marshalFlow("", f.TokenURL, f.RefreshURL, f.AvailableScopes, false, true)
}

// UnmarshalJSON implements custom JSON unmarshaling for PasswordOAuthFlow.
// The tokenUrl field is required; an absent availableScopes key decodes to
// an empty mapping.
func (f *PasswordOAuthFlow) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "password", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["tokenUrl"]; !ok {
		return aaerrors.NewMissingField("flows.password", "tokenUrl")
	}
	type alias PasswordOAuthFlow
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return wrapDecodeErr("flows.password", err)
	}
	if f.AvailableScopes == nil {
		f.AvailableScopes = map[string]string{}
	}
	return nil
}

// MarshalJSON implements custom JSON marshaling for ClientCredentialsOAuthFlow.
func (f *ClientCredentialsOAuthFlow) MarshalJSON() ([]byte, error) {
	return marshalFlow("", f.TokenURL, f.RefreshURL, f.AvailableScopes, false, true)
}

// UnmarshalJSON implements custom JSON unmarshaling for ClientCredentialsOAuthFlow.
// The tokenUrl field is required; an absent availableScopes key decodes to
// an empty mapping.
func (f *ClientCredentialsOAuthFlow) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "clientCredentials", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["tokenUrl"]; !ok {
		return aaerrors.NewMissingField("flows.clientCredentials", "tokenUrl")
	}
	type alias ClientCredentialsOAuthFlow
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return wrapDecodeErr("flows.clientCredentials", err)
	}
	if f.AvailableScopes == nil {
		f.AvailableScopes = map[string]string{}
	}
	return nil
}

// MarshalJSON implements custom JSON marshaling for AuthorizationCodeOAuthFlow.
func (f *AuthorizationCodeOAuthFlow) MarshalJSON() ([]byte, error) {
	return marshalFlow(f.AuthorizationURL, f.TokenURL, f.RefreshURL, f.AvailableScopes, true, true)
}

// UnmarshalJSON implements custom JSON unmarshaling for AuthorizationCodeOAuthFlow.
// The authorizationUrl and tokenUrl fields are required; an absent
// availableScopes key decodes to an empty mapping.
func (f *AuthorizationCodeOAuthFlow) UnmarshalJSON(data []byte) error {
	raw, err := jsonhelpers.RawFields(data)
	if err != nil {
		return &aaerrors.DecodeError{Field: "authorizationCode", Expected: "object", IsTypeMismatch: true, Cause: err}
	}
	if _, ok := raw["authorizationUrl"]; !ok {
		return aaerrors.NewMissingField("flows.authorizationCode", "authorizationUrl")
	}
	if _, ok := raw["tokenUrl"]; !ok {
		return aaerrors.NewMissingField("flows.authorizationCode", "tokenUrl")
	}
	type alias AuthorizationCodeOAuthFlow
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return wrapDecodeErr("flows.authorizationCode", err)
	}
	if f.AvailableScopes == nil {
		f.AvailableScopes = map[string]string{}
	}
	return nil
}

// UnmarshalJSON implements custom JSON unmarshaling for APIKeyLocation.
// Only the exact wire tokens "user" and "password" are accepted.
func (l *APIKeyLocation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return aaerrors.NewTypeMismatch("", "in", `"user" or "password"`)
	}
	loc := APIKeyLocation(s)
	if !loc.Valid() {
		return aaerrors.NewTypeMismatch("", "in", `"user" or "password"`)
	}
	*l = loc
	return nil
}

// UnmarshalJSON implements custom JSON unmarshaling for HTTPAPIKeyLocation.
// Only the exact wire tokens "query", "header", and "cookie" are accepted.
func (l *HTTPAPIKeyLocation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return aaerrors.NewTypeMismatch("", "in", `"query", "header", or "cookie"`)
	}
	loc := HTTPAPIKeyLocation(s)
	if !loc.Valid() {
		return aaerrors.NewTypeMismatch("", "in", `"query", "header", or "cookie"`)
	}
	*l = loc
	return nil
}
