package parser

// This file contains equality comparison functions for security-related
// types: SecurityScheme and its kind members, OAuthFlows, and the four
// flow shapes.
//
// See also:
// - security.go: Type definitions for these structures

// Equals compares two *SecurityScheme for field-for-field equality.
func (ss *SecurityScheme) Equals(other *SecurityScheme) bool {
	if ss == nil && other == nil {
		return true
	}
	if ss == nil || other == nil {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.UserPassword), (*descriptionScheme)(other.UserPassword)) {
		return false
	}
	if !equalAPIKeyScheme(ss.APIKey, other.APIKey) {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.X509), (*descriptionScheme)(other.X509)) {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.SymmetricEncryption), (*descriptionScheme)(other.SymmetricEncryption)) {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.AsymmetricEncryption), (*descriptionScheme)(other.AsymmetricEncryption)) {
		return false
	}
	if !equalHTTPAPIKeyScheme(ss.HTTPAPIKey, other.HTTPAPIKey) {
		return false
	}
	if !equalHTTPScheme(ss.HTTP, other.HTTP) {
		return false
	}
	if !equalOAuth2Scheme(ss.OAuth2, other.OAuth2) {
		return false
	}
	if !equalOpenIDConnectScheme(ss.OpenIDConnect, other.OpenIDConnect) {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.Plain), (*descriptionScheme)(other.Plain)) {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.ScramSHA256), (*descriptionScheme)(other.ScramSHA256)) {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.ScramSHA512), (*descriptionScheme)(other.ScramSHA512)) {
		return false
	}
	if !equalDescriptionScheme((*descriptionScheme)(ss.GSSAPI), (*descriptionScheme)(other.GSSAPI)) {
		return false
	}
	return equalMapStringAny(ss.Extra, other.Extra)
}

// descriptionScheme is the shared shape of the description-only scheme
// kinds, used to compare them with one helper.
type descriptionScheme struct {
	Description string
	Extra       map[string]any
}

// equalDescriptionScheme compares two description-only scheme kinds.
func equalDescriptionScheme(a, b *descriptionScheme) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// equalAPIKeyScheme compares two *APIKeyScheme for equality.
func equalAPIKeyScheme(a, b *APIKeyScheme) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	if a.In != b.In {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// equalHTTPAPIKeyScheme compares two *HTTPAPIKeyScheme for equality.
func equalHTTPAPIKeyScheme(a, b *HTTPAPIKeyScheme) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	if a.Name != b.Name {
		return false
	}
	if a.In != b.In {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// equalHTTPScheme compares two *HTTPScheme for equality.
func equalHTTPScheme(a, b *HTTPScheme) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	if a.Scheme != b.Scheme {
		return false
	}
	if a.BearerFormat != b.BearerFormat {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// equalOAuth2Scheme compares two *OAuth2Scheme for equality.
func equalOAuth2Scheme(a, b *OAuth2Scheme) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	if !a.Flows.Equals(b.Flows) {
		return false
	}
	if !equalStringSlice(a.Scopes, b.Scopes) {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// equalOpenIDConnectScheme compares two *OpenIDConnectScheme for equality.
func equalOpenIDConnectScheme(a, b *OpenIDConnectScheme) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	if a.OpenIDConnectURL != b.OpenIDConnectURL {
		return false
	}
	if !equalStringSlice(a.Scopes, b.Scopes) {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// Equals compares two *OAuthFlows for field-for-field equality.
func (f *OAuthFlows) Equals(other *OAuthFlows) bool {
	if f == nil && other == nil {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if !equalImplicitFlow(f.Implicit, other.Implicit) {
		return false
	}
	if !equalPasswordFlow(f.Password, other.Password) {
		return false
	}
	if !equalClientCredentialsFlow(f.ClientCredentials, other.ClientCredentials) {
		return false
	}
	if !equalAuthorizationCodeFlow(f.AuthorizationCode, other.AuthorizationCode) {
		return false
	}
	return equalMapStringAny(f.Extra, other.Extra)
}

// equalImplicitFlow compares two *ImplicitOAuthFlow for equality.
func equalImplicitFlow(a, b *ImplicitOAuthFlow) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.AuthorizationURL != b.AuthorizationURL {
		return false
	}
	if a.RefreshURL != b.RefreshURL {
		return false
	}
	return equalMapStringString(a.AvailableScopes, b.AvailableScopes)
}

// equalPasswordFlow compares two *PasswordOAuthFlow for equality.
func equalPasswordFlow(a, b *PasswordOAuthFlow) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.TokenURL != b.TokenURL {
		return false
	}
	if a.RefreshURL != b.RefreshURL {
		return false
	}
	return equalMapStringString(a.AvailableScopes, b.AvailableScopes)
}

// equalClientCredentialsFlow compares two *ClientCredentialsOAuthFlow for equality.
func equalClientCredentialsFlow(a, b *ClientCredentialsOAuthFlow) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.TokenURL != b.TokenURL {
		return false
	}
	if a.RefreshURL != b.RefreshURL {
		return false
	}
	return equalMapStringString(a.AvailableScopes, b.AvailableScopes)
}

// equalAuthorizationCodeFlow compares two *AuthorizationCodeOAuthFlow for equality.
func equalAuthorizationCodeFlow(a, b *AuthorizationCodeOAuthFlow) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.AuthorizationURL != b.AuthorizationURL {
		return false
	}
	if a.TokenURL != b.TokenURL {
		return false
	}
	if a.RefreshURL != b.RefreshURL {
		return false
	}
	return equalMapStringString(a.AvailableScopes, b.AvailableScopes)
}
