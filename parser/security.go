package parser

// SecurityScheme defines a security requirement that must be satisfied to
// authorize a connection or operation, such as an API key or a username
// and password.
//
// The wire format keys the scheme kind by field presence rather than by a
// discriminator tag: a conforming document populates exactly one of the
// kind members below. The structure itself stays permissive (zero or
// multiple populated members round-trip untouched); the validator package
// reports violations of the exactly-one convention.
type SecurityScheme struct {
	UserPassword         *UserPasswordScheme         `yaml:"userPassword,omitempty" json:"userPassword,omitempty"`
	APIKey               *APIKeyScheme               `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	X509                 *X509Scheme                 `yaml:"x509,omitempty" json:"x509,omitempty"`
	SymmetricEncryption  *SymmetricEncryptionScheme  `yaml:"symmetricEncryption,omitempty" json:"symmetricEncryption,omitempty"`
	AsymmetricEncryption *AsymmetricEncryptionScheme `yaml:"asymmetricEncryption,omitempty" json:"asymmetricEncryption,omitempty"`
	HTTPAPIKey           *HTTPAPIKeyScheme           `yaml:"httpApiKey,omitempty" json:"httpApiKey,omitempty"`
	HTTP                 *HTTPScheme                 `yaml:"http,omitempty" json:"http,omitempty"`
	OAuth2               *OAuth2Scheme               `yaml:"oauth2,omitempty" json:"oauth2,omitempty"`
	OpenIDConnect        *OpenIDConnectScheme        `yaml:"openIdConnect,omitempty" json:"openIdConnect,omitempty"`
	Plain                *PlainScheme                `yaml:"plain,omitempty" json:"plain,omitempty"`
	ScramSHA256          *ScramSHA256Scheme          `yaml:"scramSha256,omitempty" json:"scramSha256,omitempty"`
	ScramSHA512          *ScramSHA512Scheme          `yaml:"scramSha512,omitempty" json:"scramSha512,omitempty"`
	GSSAPI               *GSSAPIScheme               `yaml:"gssapi,omitempty" json:"gssapi,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// PopulatedKinds returns the wire names of the kind members that are set.
// A conforming document yields exactly one name.
func (ss *SecurityScheme) PopulatedKinds() []string {
	var kinds []string
	if ss.UserPassword != nil {
		kinds = append(kinds, "userPassword")
	}
	if ss.APIKey != nil {
		kinds = append(kinds, "apiKey")
	}
	if ss.X509 != nil {
		kinds = append(kinds, "x509")
	}
	if ss.SymmetricEncryption != nil {
		kinds = append(kinds, "symmetricEncryption")
	}
	if ss.AsymmetricEncryption != nil {
		kinds = append(kinds, "asymmetricEncryption")
	}
	if ss.HTTPAPIKey != nil {
		kinds = append(kinds, "httpApiKey")
	}
	if ss.HTTP != nil {
		kinds = append(kinds, "http")
	}
	if ss.OAuth2 != nil {
		kinds = append(kinds, "oauth2")
	}
	if ss.OpenIDConnect != nil {
		kinds = append(kinds, "openIdConnect")
	}
	if ss.Plain != nil {
		kinds = append(kinds, "plain")
	}
	if ss.ScramSHA256 != nil {
		kinds = append(kinds, "scramSha256")
	}
	if ss.ScramSHA512 != nil {
		kinds = append(kinds, "scramSha512")
	}
	if ss.GSSAPI != nil {
		kinds = append(kinds, "gssapi")
	}
	return kinds
}

// UserPasswordScheme is a username/password security scheme
type UserPasswordScheme struct {
	// Description is a short description for the security scheme.
	// CommonMark syntax MAY be used for rich text representation.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// APIKeyScheme is an API key security scheme carried in the user or
// password connection field
type APIKeyScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// In is the location of the API key. Valid values are "user" and "password".
	In APIKeyLocation `yaml:"in" json:"in"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// X509Scheme is an X.509 certificate security scheme
type X509Scheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SymmetricEncryptionScheme is a symmetric-encryption security scheme
type SymmetricEncryptionScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// AsymmetricEncryptionScheme is an asymmetric-encryption security scheme
type AsymmetricEncryptionScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// HTTPAPIKeyScheme is an API key security scheme carried in an HTTP
// header, query parameter, or cookie
type HTTPAPIKeyScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Name is the name of the header, query, or cookie parameter to be used
	Name string `yaml:"name" json:"name"`
	// In is the location of the API key. Valid values are "query", "header", and "cookie".
	In HTTPAPIKeyLocation `yaml:"in" json:"in"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// HTTPScheme is an HTTP authentication security scheme
type HTTPScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Scheme is the name of the HTTP Authorization scheme to be used in the
	// Authorization header as defined in RFC 7235 (e.g., "basic", "bearer")
	Scheme string `yaml:"scheme" json:"scheme"`
	// BearerFormat is a hint to the client to identify how the bearer token
	// is formatted (e.g., "JWT"). Primarily for documentation purposes.
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// OAuth2Scheme is an OAuth2 security scheme
type OAuth2Scheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Flows contains configuration for the supported OAuth flow types
	Flows *OAuthFlows `yaml:"flows" json:"flows"`
	// Scopes lists the needed scope names. An empty list means no scopes are needed.
	Scopes []string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// OpenIDConnectScheme is an OpenID Connect security scheme
type OpenIDConnectScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// OpenIDConnectURL is the URL to discover OAuth2 configuration values.
	// This MUST be in the form of an absolute URL.
	OpenIDConnectURL string `yaml:"openIdConnectUrl" json:"openIdConnectUrl"`
	// Scopes lists the needed scope names. An empty list means no scopes are needed.
	Scopes []string `yaml:"scopes" json:"scopes"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// PlainScheme is a SASL PLAIN security scheme
type PlainScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ScramSHA256Scheme is a SASL SCRAM-SHA-256 security scheme
type ScramSHA256Scheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ScramSHA512Scheme is a SASL SCRAM-SHA-512 security scheme
type ScramSHA512Scheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// GSSAPIScheme is a GSSAPI security scheme
type GSSAPIScheme struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// OAuthFlows allows configuration of the supported OAuth flow types.
// Any subset of the four flows may be present, including none or all.
type OAuthFlows struct {
	// Implicit is the configuration for the OAuth Implicit flow
	Implicit *ImplicitOAuthFlow `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	// Password is the configuration for the OAuth Resource Owner Protected Credentials flow
	Password *PasswordOAuthFlow `yaml:"password,omitempty" json:"password,omitempty"`
	// ClientCredentials is the configuration for the OAuth Client Credentials flow
	ClientCredentials *ClientCredentialsOAuthFlow `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	// AuthorizationCode is the configuration for the OAuth Authorization Code flow
	AuthorizationCode *AuthorizationCodeOAuthFlow `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ImplicitOAuthFlow represents configuration for the OAuth Implicit flow
type ImplicitOAuthFlow struct {
	// AuthorizationURL is the authorization URL to be used for this flow.
	// This MUST be in the form of an absolute URL.
	AuthorizationURL string `yaml:"authorizationUrl" json:"authorizationUrl"`
	// RefreshURL is the URL to be used for obtaining refresh tokens.
	// This MUST be in the form of an absolute URL.
	RefreshURL string `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	// AvailableScopes maps scope names for the OAuth2 security scheme to
	// a short description for each
	AvailableScopes map[string]string `yaml:"availableScopes" json:"availableScopes"`
}

// PasswordOAuthFlow represents configuration for the OAuth Resource Owner
// Protected Credentials flow
type PasswordOAuthFlow struct {
	// TokenURL is the token URL to be used for this flow.
	// This MUST be in the form of an absolute URL.
	TokenURL string `yaml:"tokenUrl" json:"tokenUrl"`
	// RefreshURL is the URL to be used for obtaining refresh tokens.
	// This MUST be in the form of an absolute URL.
	RefreshURL string `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	// AvailableScopes maps scope names for the OAuth2 security scheme to
	// a short description for each
	AvailableScopes map[string]string `yaml:"availableScopes" json:"availableScopes"`
}

// ClientCredentialsOAuthFlow represents configuration for the OAuth Client
// Credentials flow
type ClientCredentialsOAuthFlow struct {
	// TokenURL is the token URL to be used for this flow.
	// This MUST be in the form of an absolute URL.
	TokenURL string `yaml:"tokenUrl" json:"tokenUrl"`
	// RefreshURL is the URL to be used for obtaining refresh tokens.
	// This MUST be in the form of an absolute URL.
	RefreshURL string `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	// AvailableScopes maps scope names for the OAuth2 security scheme to
	// a short description for each
	AvailableScopes map[string]string `yaml:"availableScopes" json:"availableScopes"`
}

// AuthorizationCodeOAuthFlow represents configuration for the OAuth
// Authorization Code flow
type AuthorizationCodeOAuthFlow struct {
	// AuthorizationURL is the authorization URL to be used for this flow.
	// This MUST be in the form of an absolute URL.
	AuthorizationURL string `yaml:"authorizationUrl" json:"authorizationUrl"`
	// TokenURL is the token URL to be used for this flow.
	// This MUST be in the form of an absolute URL.
	TokenURL string `yaml:"tokenUrl" json:"tokenUrl"`
	// RefreshURL is the URL to be used for obtaining refresh tokens.
	// This MUST be in the form of an absolute URL.
	RefreshURL string `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	// AvailableScopes maps scope names for the OAuth2 security scheme to
	// a short description for each
	AvailableScopes map[string]string `yaml:"availableScopes" json:"availableScopes"`
}

// APIKeyLocation represents where an apiKey scheme's key is carried.
// The wire tokens are "user" and "password".
type APIKeyLocation string

const (
	// APIKeyLocationUser indicates the key is carried in the user connection field
	APIKeyLocationUser APIKeyLocation = "user"
	// APIKeyLocationPassword indicates the key is carried in the password connection field
	APIKeyLocationPassword APIKeyLocation = "password"
)

// Valid reports whether the location is one of the recognized wire tokens.
func (l APIKeyLocation) Valid() bool {
	return l == APIKeyLocationUser || l == APIKeyLocationPassword
}

// HTTPAPIKeyLocation represents where an httpApiKey scheme's key is carried.
// The wire tokens are "query", "header", and "cookie".
type HTTPAPIKeyLocation string

const (
	// HTTPAPIKeyLocationQuery indicates the key is carried in the HTTP query
	// string, e.g. ?api_key=<KEY>
	HTTPAPIKeyLocationQuery HTTPAPIKeyLocation = "query"
	// HTTPAPIKeyLocationHeader indicates the key is carried in an HTTP header,
	// for example the Authorization header
	HTTPAPIKeyLocationHeader HTTPAPIKeyLocation = "header"
	// HTTPAPIKeyLocationCookie indicates the key is carried in a session cookie
	HTTPAPIKeyLocationCookie HTTPAPIKeyLocation = "cookie"
)

// Valid reports whether the location is one of the recognized wire tokens.
func (l HTTPAPIKeyLocation) Valid() bool {
	return l == HTTPAPIKeyLocationQuery || l == HTTPAPIKeyLocationHeader || l == HTTPAPIKeyLocationCookie
}
