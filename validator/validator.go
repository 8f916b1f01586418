package validator

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/asyncapitools/parser"
)

// Severity indicates the severity level of a validation issue
type Severity int

const (
	// SeverityError indicates a semantic violation that makes the document invalid
	SeverityError Severity = iota
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON emits the severity as its string token so structured output
// reads "error"/"warning"/"info" rather than a bare integer.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalYAML implements yaml.Marshaler with the same string token.
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Issue represents a single validation finding
type Issue struct {
	// Path is the document path to the problematic object (e.g., "servers.production.security[0]")
	Path string `yaml:"path" json:"path"`
	// Message describes the finding
	Message string `yaml:"message" json:"message"`
	// Severity is the severity level of the finding
	Severity Severity `yaml:"severity" json:"severity"`
}

// String returns a human-readable representation of the issue.
func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
}

// Result contains the results of validating a document's server and
// security-scheme semantics
type Result struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `yaml:"valid" json:"valid"`
	// Version is the asyncapi version string declared by the document
	Version string `yaml:"version" json:"version"`
	// Errors contains all validation errors
	Errors []Issue `yaml:"errors" json:"errors"`
	// Warnings contains all validation warnings
	Warnings []Issue `yaml:"warnings" json:"warnings"`
	// ErrorCount is the total number of errors
	ErrorCount int `yaml:"errorCount" json:"errorCount"`
	// WarningCount is the total number of warnings
	WarningCount int `yaml:"warningCount" json:"warningCount"`
}

// Validator checks the semantic rules the structural model deliberately
// leaves unenforced: scheme-kind exclusivity, URL absoluteness, reference
// resolvability, and host/pathname variable consistency.
type Validator struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (v *Validator) log() parser.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return parser.NopLogger{}
}

// ValidateFile parses and validates an AsyncAPI document from a file path
func ValidateFile(path string) (*Result, error) {
	pr, err := parser.ParseWithOptions(parser.WithFilePath(path))
	if err != nil {
		return nil, err
	}
	return New().ValidateResult(pr), nil
}

// ValidateBytes parses and validates an AsyncAPI document from a byte slice
func ValidateBytes(data []byte) (*Result, error) {
	pr, err := parser.ParseWithOptions(parser.WithBytes(data))
	if err != nil {
		return nil, err
	}
	return New().ValidateResult(pr), nil
}

// ValidateResult validates an already-parsed document
func (v *Validator) ValidateResult(pr *parser.ParseResult) *Result {
	result := v.ValidateDocument(pr.Document)
	result.Version = pr.Version
	return result
}

// ValidateDocument validates the server and security-scheme semantics of
// a typed document
func (v *Validator) ValidateDocument(doc *parser.Document) *Result {
	run := &validation{doc: doc}

	serverNames := sortedKeys(doc.Servers)
	for _, name := range serverNames {
		run.checkServerEntry("servers."+name, doc.Servers[name])
	}

	if doc.Components != nil {
		for _, name := range sortedKeys(doc.Components.Servers) {
			run.checkServerEntry("components.servers."+name, doc.Components.Servers[name])
		}
		for _, name := range sortedKeys(doc.Components.SecuritySchemes) {
			run.checkSchemeEntry("components.securitySchemes."+name, doc.Components.SecuritySchemes[name])
		}
		for _, name := range sortedKeys(doc.Components.ServerVariables) {
			run.checkVariableEntry("components.serverVariables."+name, doc.Components.ServerVariables[name])
		}
		for _, name := range sortedKeys(doc.Components.ExternalDocs) {
			run.checkExternalDocsEntry("components.externalDocs."+name, doc.Components.ExternalDocs[name])
		}
		for _, name := range sortedKeys(doc.Components.Tags) {
			run.checkTag("components.tags."+name, doc.Components.Tags[name])
		}
	}

	v.log().Debug("validated document",
		"version", doc.AsyncAPI,
		"errors", len(run.errors),
		"warnings", len(run.warnings))

	return &Result{
		Valid:        len(run.errors) == 0,
		Version:      doc.AsyncAPI,
		Errors:       run.errors,
		Warnings:     run.warnings,
		ErrorCount:   len(run.errors),
		WarningCount: len(run.warnings),
	}
}

// validation accumulates findings for a single document
type validation struct {
	doc      *parser.Document
	errors   []Issue
	warnings []Issue
}

func (r *validation) addError(path, msg string) {
	r.errors = append(r.errors, Issue{Path: path, Message: msg, Severity: SeverityError})
}

func (r *validation) addWarning(path, msg string) {
	r.warnings = append(r.warnings, Issue{Path: path, Message: msg, Severity: SeverityWarning})
}

// placeholderPattern matches {variable} placeholders in host and pathname
// templates.
var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

func (r *validation) checkServerEntry(path string, entry *parser.RefOr[parser.Server]) {
	if entry == nil {
		return
	}
	if entry.IsRef() {
		r.checkRef(path, entry.Ref, "servers")
		return
	}
	if entry.Value != nil {
		r.checkServer(path, entry.Value)
	}
}

func (r *validation) checkServer(path string, s *parser.Server) {
	r.checkPlaceholders(path+".host", s.Host, s)
	if s.Pathname != "" {
		r.checkPlaceholders(path+".pathname", s.Pathname, s)
	}

	for _, name := range sortedKeys(s.Variables) {
		r.checkVariableEntry(path+".variables."+name, s.Variables[name])
	}

	for i, entry := range s.Security {
		r.checkSchemeEntry(fmt.Sprintf("%s.security[%d]", path, i), entry)
	}

	for i, tag := range s.Tags {
		r.checkTag(fmt.Sprintf("%s.tags[%d]", path, i), tag)
	}

	if s.ExternalDocs != nil {
		r.checkExternalDocsEntry(path+".externalDocs", s.ExternalDocs)
	}

	if s.Bindings != nil && s.Bindings.IsRef() {
		r.checkRef(path+".bindings", s.Bindings.Ref, "serverBindings")
	}
}

// checkPlaceholders warns about {variable} placeholders in a host or
// pathname template that no variables entry declares.
func (r *validation) checkPlaceholders(path, template string, s *parser.Server) {
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if _, ok := s.Variables[name]; !ok {
			r.addWarning(path, fmt.Sprintf("placeholder {%s} has no matching variables entry", name))
		}
	}
}

func (r *validation) checkVariableEntry(path string, entry *parser.RefOr[parser.Variable]) {
	if entry == nil {
		return
	}
	if entry.IsRef() {
		r.checkRef(path, entry.Ref, "serverVariables")
		return
	}
	if entry.Value != nil {
		r.checkVariable(path, entry.Value)
	}
}

func (r *validation) checkVariable(path string, v *parser.Variable) {
	if len(v.EnumValues) == 0 {
		return
	}
	if v.Default != "" && !contains(v.EnumValues, v.Default) {
		r.addError(path+".default", fmt.Sprintf("default %q is not listed in enum", v.Default))
	}
	for _, example := range v.Examples {
		if !contains(v.EnumValues, example) {
			r.addWarning(path+".examples", fmt.Sprintf("example %q is not listed in enum", example))
		}
	}
}

func (r *validation) checkSchemeEntry(path string, entry *parser.RefOr[parser.SecurityScheme]) {
	if entry == nil {
		return
	}
	if entry.IsRef() {
		r.checkRef(path, entry.Ref, "securitySchemes")
		return
	}
	if entry.Value != nil {
		r.checkScheme(path, entry.Value)
	}
}

func (r *validation) checkScheme(path string, ss *parser.SecurityScheme) {
	kinds := ss.PopulatedKinds()
	switch len(kinds) {
	case 1:
	case 0:
		r.addError(path, "security scheme declares no scheme kind; exactly one must be set")
	default:
		r.addError(path, fmt.Sprintf("security scheme declares %d scheme kinds (%s); exactly one must be set",
			len(kinds), strings.Join(kinds, ", ")))
	}

	if ss.OAuth2 != nil && ss.OAuth2.Flows != nil {
		r.checkFlows(path+".oauth2.flows", ss.OAuth2.Flows)
	}
	if ss.OpenIDConnect != nil {
		r.checkAbsoluteURL(path+".openIdConnect.openIdConnectUrl", ss.OpenIDConnect.OpenIDConnectURL)
	}
}

func (r *validation) checkFlows(path string, flows *parser.OAuthFlows) {
	configured := 0
	if flows.Implicit != nil {
		configured++
		r.checkAbsoluteURL(path+".implicit.authorizationUrl", flows.Implicit.AuthorizationURL)
		r.checkOptionalAbsoluteURL(path+".implicit.refreshUrl", flows.Implicit.RefreshURL)
	}
	if flows.Password != nil {
		configured++
		r.checkAbsoluteURL(path+".password.tokenUrl", flows.Password.TokenURL)
		r.checkOptionalAbsoluteURL(path+".password.refreshUrl", flows.Password.RefreshURL)
	}
	if flows.ClientCredentials != nil {
		configured++
		r.checkAbsoluteURL(path+".clientCredentials.tokenUrl", flows.ClientCredentials.TokenURL)
		r.checkOptionalAbsoluteURL(path+".clientCredentials.refreshUrl", flows.ClientCredentials.RefreshURL)
	}
	if flows.AuthorizationCode != nil {
		configured++
		r.checkAbsoluteURL(path+".authorizationCode.authorizationUrl", flows.AuthorizationCode.AuthorizationURL)
		r.checkAbsoluteURL(path+".authorizationCode.tokenUrl", flows.AuthorizationCode.TokenURL)
		r.checkOptionalAbsoluteURL(path+".authorizationCode.refreshUrl", flows.AuthorizationCode.RefreshURL)
	}
	if configured == 0 {
		r.addWarning(path, "no OAuth flow is configured")
	}
}

func (r *validation) checkTag(path string, tag *parser.Tag) {
	if tag == nil {
		return
	}
	if tag.ExternalDocs != nil {
		r.checkExternalDocsEntry(path+".externalDocs", tag.ExternalDocs)
	}
}

func (r *validation) checkExternalDocsEntry(path string, entry *parser.RefOr[parser.ExternalDocs]) {
	if entry == nil {
		return
	}
	if entry.IsRef() {
		r.checkRef(path, entry.Ref, "externalDocs")
		return
	}
	if entry.Value != nil {
		r.checkAbsoluteURL(path+".url", entry.Value.URL)
	}
}

// checkAbsoluteURL reports URLs the document format requires to be absolute.
func (r *validation) checkAbsoluteURL(path, value string) {
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() {
		r.addError(path, fmt.Sprintf("%q is not an absolute URL", value))
	}
}

func (r *validation) checkOptionalAbsoluteURL(path, value string) {
	if value == "" {
		return
	}
	r.checkAbsoluteURL(path, value)
}

// checkRef checks that a reference resolves within the document.
// Only local "#/components/..." references are resolvable here; anything
// else is reported as unchecked. expectedKind names the components
// collection the reference should target.
func (r *validation) checkRef(path, ref, expectedKind string) {
	if !strings.HasPrefix(ref, "#/") {
		r.addWarning(path, fmt.Sprintf("external reference %q is not validated", ref))
		return
	}
	parts := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	if len(parts) != 3 || parts[0] != "components" {
		r.addError(path, fmt.Sprintf("reference %q does not point into #/components", ref))
		return
	}
	kind, name := parts[1], parts[2]
	if kind != expectedKind {
		r.addError(path, fmt.Sprintf("reference %q targets components/%s; expected components/%s", ref, kind, expectedKind))
		return
	}
	if !r.componentExists(kind, name) {
		r.addError(path, fmt.Sprintf("reference %q does not resolve", ref))
	}
}

// componentExists reports whether the named component is declared.
func (r *validation) componentExists(kind, name string) bool {
	c := r.doc.Components
	if c == nil {
		return false
	}
	switch kind {
	case "servers":
		_, ok := c.Servers[name]
		return ok
	case "serverVariables":
		_, ok := c.ServerVariables[name]
		return ok
	case "securitySchemes":
		_, ok := c.SecuritySchemes[name]
		return ok
	case "serverBindings":
		_, ok := c.ServerBindings[name]
		return ok
	case "tags":
		_, ok := c.Tags[name]
		return ok
	case "externalDocs":
		_, ok := c.ExternalDocs[name]
		return ok
	default:
		return false
	}
}

// sortedKeys returns the keys of m in lexical order, so findings come out
// in a deterministic order regardless of map iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
