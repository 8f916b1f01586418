package parser

// This file contains helper functions for equality comparison of
// model-typed fields. Nil and empty collections compare equal throughout,
// matching the decode-time defaulting of absent keys to empty collections.

import (
	"maps"
	"reflect"
	"slices"
)

// equalStringSlice compares two string slices for equality.
// Order-sensitive comparison. Nil and empty slices are considered equal.
func equalStringSlice(a, b []string) bool {
	return slices.Equal(a, b)
}

// equalMapStringString compares two map[string]string maps for equality.
// Nil and empty maps are considered equal.
func equalMapStringString(a, b map[string]string) bool {
	return maps.Equal(a, b)
}

// equalMapStringAny compares two map[string]any maps for equality.
// Uses reflect.DeepEqual for value comparison. Nil and empty maps are considered equal.
func equalMapStringAny(a, b map[string]any) bool {
	return maps.EqualFunc(a, b, reflect.DeepEqual)
}

// equalRefOr compares two *RefOr[T] wrappers for equality, delegating
// inline-value comparison to eq.
func equalRefOr[T any](a, b *RefOr[T], eq func(a, b *T) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Ref != b.Ref {
		return false
	}
	if (a.Value == nil) != (b.Value == nil) {
		return false
	}
	if a.Value == nil {
		return true
	}
	return eq(a.Value, b.Value)
}

// equalRefOrMap compares two maps of RefOr wrappers for equality.
func equalRefOrMap[T any](a, b map[string]*RefOr[T], eq func(a, b *T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		if !equalRefOr(va, vb, eq) {
			return false
		}
	}
	return true
}

// equalTag compares two *Tag for equality.
func equalTag(a, b *Tag) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	if !equalRefOr(a.ExternalDocs, b.ExternalDocs, equalExternalDocs) {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}

// equalTagSlice compares two []*Tag slices for equality.
// Order-sensitive comparison. Nil and empty slices are considered equal.
func equalTagSlice(a, b []*Tag) bool {
	return slices.EqualFunc(a, b, equalTag)
}

// equalExternalDocs compares two *ExternalDocs for equality.
func equalExternalDocs(a, b *ExternalDocs) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.URL != b.URL {
		return false
	}
	if a.Description != b.Description {
		return false
	}
	return equalMapStringAny(a.Extra, b.Extra)
}
