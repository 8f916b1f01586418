package parser

import "slices"

// This file contains equality comparison functions for server-related
// types and the document wrapper.
//
// See also:
// - server.go, document.go: Type definitions for these structures

// Equals compares two *Server for field-for-field equality.
func (s *Server) Equals(other *Server) bool {
	if s == nil && other == nil {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.Host != other.Host {
		return false
	}
	if s.Protocol != other.Protocol {
		return false
	}
	if s.ProtocolVersion != other.ProtocolVersion {
		return false
	}
	if s.Pathname != other.Pathname {
		return false
	}
	if s.Description != other.Description {
		return false
	}
	if s.Title != other.Title {
		return false
	}
	if s.Summary != other.Summary {
		return false
	}
	if !equalRefOrMap(s.Variables, other.Variables, equalVariable) {
		return false
	}
	if !equalSecurityList(s.Security, other.Security) {
		return false
	}
	if !equalTagSlice(s.Tags, other.Tags) {
		return false
	}
	if !equalRefOr(s.ExternalDocs, other.ExternalDocs, equalExternalDocs) {
		return false
	}
	if !equalRefOr(s.Bindings, other.Bindings, equalServerBindings) {
		return false
	}
	return equalMapStringAny(s.Extra, other.Extra)
}

// equalSecurityList compares two security declarations for equality.
// Order-sensitive comparison. Nil and empty lists are considered equal.
func equalSecurityList(a, b []*RefOr[SecurityScheme]) bool {
	return slices.EqualFunc(a, b, func(ra, rb *RefOr[SecurityScheme]) bool {
		return equalRefOr(ra, rb, func(sa, sb *SecurityScheme) bool {
			return sa.Equals(sb)
		})
	})
}

// equalVariable compares two *Variable for equality.
func equalVariable(a, b *Variable) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if !equalStringSlice(a.EnumValues, b.EnumValues) {
		return false
	}
	if a.Default != b.Default {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	if !equalStringSlice(a.Examples, b.Examples) {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// equalServerBindings compares two *ServerBindings for equality.
// The binding markers carry no fields, so presence is what matters.
func equalServerBindings(a, b *ServerBindings) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if (a.WS == nil) != (b.WS == nil) {
		return false
	}
	if (a.NATS == nil) != (b.NATS == nil) {
		return false
	}
	if (a.HTTP == nil) != (b.HTTP == nil) {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// Equals compares two *Document for field-for-field equality.
// SpecVersion is derived metadata and does not participate.
func (d *Document) Equals(other *Document) bool {
	if d == nil && other == nil {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.AsyncAPI != other.AsyncAPI {
		return false
	}
	if !equalRefOrMap(d.Servers, other.Servers, func(a, b *Server) bool { return a.Equals(b) }) {
		return false
	}
	if !equalComponents(d.Components, other.Components) {
		return false
	}
	return equalMapStringAny(d.Extra, other.Extra)
}

// equalComponents compares two *Components for equality.
func equalComponents(a, b *Components) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if !equalRefOrMap(a.Servers, b.Servers, func(x, y *Server) bool { return x.Equals(y) }) {
		return false
	}
	if !equalRefOrMap(a.ServerVariables, b.ServerVariables, equalVariable) {
		return false
	}
	if !equalRefOrMap(a.SecuritySchemes, b.SecuritySchemes, func(x, y *SecurityScheme) bool { return x.Equals(y) }) {
		return false
	}
	if !equalRefOrMap(a.ServerBindings, b.ServerBindings, equalServerBindings) {
		return false
	}
	if len(a.Tags) != len(b.Tags) {
		return false
	}
	for k, ta := range a.Tags {
		tb, ok := b.Tags[k]
		if !ok {
			return false
		}
		if !equalTag(ta, tb) {
			return false
		}
	}
	if !equalRefOrMap(a.ExternalDocs, b.ExternalDocs, equalExternalDocs) {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}
