package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asyncapitools/parser"
)

func TestValidateBytes_ValidDocument(t *testing.T) {
	doc := []byte(`
asyncapi: 3.0.0
servers:
  production:
    host: broker.example.com
    protocol: kafka
    security:
      - $ref: '#/components/securitySchemes/saslScram'
components:
  securitySchemes:
    saslScram:
      scramSha256:
        description: SASL/SCRAM-SHA-256 authentication
`)
	result, err := ValidateBytes(doc)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "3.0.0", result.Version)
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.WarningCount)
}

func TestValidateBytes_ParseFailure(t *testing.T) {
	_, err := ValidateBytes([]byte(`{"servers": {}}`))
	require.Error(t, err)
}

func TestValidateDocument_SchemeExclusivity(t *testing.T) {
	tests := []struct {
		name      string
		scheme    *parser.SecurityScheme
		wantValid bool
		wantMsg   string
	}{
		{
			name:      "exactly one kind",
			scheme:    &parser.SecurityScheme{Plain: &parser.PlainScheme{}},
			wantValid: true,
		},
		{
			name:      "no kind",
			scheme:    &parser.SecurityScheme{},
			wantValid: false,
			wantMsg:   "declares no scheme kind",
		},
		{
			name: "two kinds",
			scheme: &parser.SecurityScheme{
				Plain:       &parser.PlainScheme{},
				ScramSHA256: &parser.ScramSHA256Scheme{},
			},
			wantValid: false,
			wantMsg:   "declares 2 scheme kinds (plain, scramSha256)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &parser.Document{
				AsyncAPI: "3.0.0",
				Components: &parser.Components{
					SecuritySchemes: map[string]*parser.RefOr[parser.SecurityScheme]{
						"auth": parser.NewInline(tt.scheme),
					},
				},
			}
			result := New().ValidateDocument(doc)
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "components.securitySchemes.auth", result.Errors[0].Path)
				assert.Contains(t, result.Errors[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateDocument_EmptyFlowsWarns(t *testing.T) {
	doc := &parser.Document{
		AsyncAPI: "3.0.0",
		Components: &parser.Components{
			SecuritySchemes: map[string]*parser.RefOr[parser.SecurityScheme]{
				"oauth": parser.NewInline(&parser.SecurityScheme{
					OAuth2: &parser.OAuth2Scheme{Flows: &parser.OAuthFlows{}},
				}),
			},
		},
	}
	result := New().ValidateDocument(doc)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "components.securitySchemes.oauth.oauth2.flows", result.Warnings[0].Path)
	assert.Contains(t, result.Warnings[0].Message, "no OAuth flow is configured")
}

func TestValidateDocument_FlowURLs(t *testing.T) {
	tests := []struct {
		name     string
		flows    *parser.OAuthFlows
		wantErrs []string
	}{
		{
			name: "absolute URLs pass",
			flows: &parser.OAuthFlows{
				AuthorizationCode: &parser.AuthorizationCodeOAuthFlow{
					AuthorizationURL: "https://auth.example.com/authorize",
					TokenURL:         "https://auth.example.com/token",
					RefreshURL:       "https://auth.example.com/refresh",
				},
			},
		},
		{
			name: "relative authorization URL fails",
			flows: &parser.OAuthFlows{
				Implicit: &parser.ImplicitOAuthFlow{AuthorizationURL: "/authorize"},
			},
			wantErrs: []string{"components.securitySchemes.oauth.oauth2.flows.implicit.authorizationUrl"},
		},
		{
			name: "relative token URLs fail per flow",
			flows: &parser.OAuthFlows{
				Password:          &parser.PasswordOAuthFlow{TokenURL: "token"},
				ClientCredentials: &parser.ClientCredentialsOAuthFlow{TokenURL: "token"},
			},
			wantErrs: []string{
				"components.securitySchemes.oauth.oauth2.flows.password.tokenUrl",
				"components.securitySchemes.oauth.oauth2.flows.clientCredentials.tokenUrl",
			},
		},
		{
			name: "empty refresh URL is allowed",
			flows: &parser.OAuthFlows{
				Password: &parser.PasswordOAuthFlow{TokenURL: "https://auth.example.com/token"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &parser.Document{
				AsyncAPI: "3.0.0",
				Components: &parser.Components{
					SecuritySchemes: map[string]*parser.RefOr[parser.SecurityScheme]{
						"oauth": parser.NewInline(&parser.SecurityScheme{
							OAuth2: &parser.OAuth2Scheme{Flows: tt.flows},
						}),
					},
				},
			}
			result := New().ValidateDocument(doc)
			var paths []string
			for _, issue := range result.Errors {
				paths = append(paths, issue.Path)
			}
			assert.ElementsMatch(t, tt.wantErrs, paths)
		})
	}
}

func TestValidateDocument_OpenIDConnectURL(t *testing.T) {
	doc := &parser.Document{
		AsyncAPI: "3.0.0",
		Components: &parser.Components{
			SecuritySchemes: map[string]*parser.RefOr[parser.SecurityScheme]{
				"oidc": parser.NewInline(&parser.SecurityScheme{
					OpenIDConnect: &parser.OpenIDConnectScheme{
						OpenIDConnectURL: "not a url at all://",
					},
				}),
			},
		},
	}
	result := New().ValidateDocument(doc)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "components.securitySchemes.oidc.openIdConnect.openIdConnectUrl", result.Errors[0].Path)
}

func TestValidateDocument_References(t *testing.T) {
	components := &parser.Components{
		SecuritySchemes: map[string]*parser.RefOr[parser.SecurityScheme]{
			"known": parser.NewInline(&parser.SecurityScheme{X509: &parser.X509Scheme{}}),
		},
	}

	tests := []struct {
		name         string
		ref          string
		wantSeverity Severity
		wantMsg      string
	}{
		{
			name: "resolvable local ref",
			ref:  "#/components/securitySchemes/known",
		},
		{
			name:         "dangling local ref",
			ref:          "#/components/securitySchemes/missing",
			wantSeverity: SeverityError,
			wantMsg:      "does not resolve",
		},
		{
			name:         "wrong component kind",
			ref:          "#/components/servers/known",
			wantSeverity: SeverityError,
			wantMsg:      "targets components/servers; expected components/securitySchemes",
		},
		{
			name:         "non-components pointer",
			ref:          "#/servers/production",
			wantSeverity: SeverityError,
			wantMsg:      "does not point into #/components",
		},
		{
			name:         "external ref is unchecked",
			ref:          "https://example.com/common.yaml#/components/securitySchemes/base",
			wantSeverity: SeverityWarning,
			wantMsg:      "is not validated",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &parser.Document{
				AsyncAPI: "3.0.0",
				Servers: parser.Servers{
					"production": parser.NewInline(&parser.Server{
						Host:     "broker.example.com",
						Protocol: "amqp",
						Security: []*parser.RefOr[parser.SecurityScheme]{
							parser.NewRef[parser.SecurityScheme](tt.ref),
						},
					}),
				},
				Components: components,
			}
			result := New().ValidateDocument(doc)
			switch tt.wantSeverity {
			case SeverityError:
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "servers.production.security[0]", result.Errors[0].Path)
				assert.Contains(t, result.Errors[0].Message, tt.wantMsg)
			case SeverityWarning:
				assert.True(t, result.Valid)
				require.Len(t, result.Warnings, 1)
				assert.Contains(t, result.Warnings[0].Message, tt.wantMsg)
			default:
				assert.True(t, result.Valid)
				assert.Empty(t, result.Warnings)
			}
		})
	}
}

func TestValidateDocument_VariableEnum(t *testing.T) {
	tests := []struct {
		name         string
		variable     *parser.Variable
		wantErrors   int
		wantWarnings int
	}{
		{
			name:     "no enum is unconstrained",
			variable: &parser.Variable{Default: "anything", Examples: []string{"whatever"}},
		},
		{
			name: "default and examples in enum",
			variable: &parser.Variable{
				EnumValues: []string{"8080", "9090"},
				Default:    "8080",
				Examples:   []string{"9090"},
			},
		},
		{
			name: "default outside enum",
			variable: &parser.Variable{
				EnumValues: []string{"8080", "9090"},
				Default:    "443",
			},
			wantErrors: 1,
		},
		{
			name: "example outside enum",
			variable: &parser.Variable{
				EnumValues: []string{"8080"},
				Examples:   []string{"8080", "9999"},
			},
			wantWarnings: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &parser.Document{
				AsyncAPI: "3.0.0",
				Servers: parser.Servers{
					"dev": parser.NewInline(&parser.Server{
						Host:     "localhost:{port}",
						Protocol: "mqtt",
						Variables: map[string]*parser.RefOr[parser.Variable]{
							"port": parser.NewInline(tt.variable),
						},
					}),
				},
			}
			result := New().ValidateDocument(doc)
			assert.Len(t, result.Errors, tt.wantErrors)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestValidateDocument_Placeholders(t *testing.T) {
	doc := &parser.Document{
		AsyncAPI: "3.0.0",
		Servers: parser.Servers{
			"staging": parser.NewInline(&parser.Server{
				Host:     "{region}.broker.example.com",
				Protocol: "kafka",
				Pathname: "/{tenant}/events",
				Variables: map[string]*parser.RefOr[parser.Variable]{
					"region": parser.NewInline(&parser.Variable{Default: "us-east-1"}),
				},
			}),
		},
	}
	result := New().ValidateDocument(doc)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "servers.staging.pathname", result.Warnings[0].Path)
	assert.Contains(t, result.Warnings[0].Message, "{tenant}")
}

func TestValidateDocument_ExternalDocsURL(t *testing.T) {
	doc := &parser.Document{
		AsyncAPI: "3.0.0",
		Servers: parser.Servers{
			"prod": parser.NewInline(&parser.Server{
				Host:         "broker.example.com",
				Protocol:     "kafka",
				ExternalDocs: parser.NewInline(&parser.ExternalDocs{URL: "docs/servers.html"}),
				Tags: []*parser.Tag{
					{
						Name:         "env:prod",
						ExternalDocs: parser.NewInline(&parser.ExternalDocs{URL: "https://docs.example.com/tags"}),
					},
				},
			}),
		},
	}
	result := New().ValidateDocument(doc)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "servers.prod.externalDocs.url", result.Errors[0].Path)
}

func TestSeverityMarshalsAsString(t *testing.T) {
	out, err := json.Marshal(Issue{Path: "servers.prod", Message: "m", Severity: SeverityError})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path": "servers.prod", "message": "m", "severity": "error"}`, string(out))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestIssueString(t *testing.T) {
	issue := Issue{Path: "servers.prod.host", Message: "placeholder {x} has no matching variables entry", Severity: SeverityWarning}
	assert.Equal(t, "[warning] servers.prod.host: placeholder {x} has no matching variables entry", issue.String())
}
