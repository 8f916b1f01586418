package parser

import (
	"strconv"
	"strings"
)

// SpecVersion represents each canonical version of the AsyncAPI
// Specification that may be found at:
// https://github.com/asyncapi/spec/releases
type SpecVersion int

const (
	// VersionUnknown represents an unknown or unsupported AsyncAPI version
	VersionUnknown SpecVersion = iota
	// Version300 AsyncAPI Specification Version 3.0.0
	Version300
)

var versionToString = map[SpecVersion]string{
	Version300: "3.0.0",
}

// String returns the canonical version string, or "unknown".
func (v SpecVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// ParseVersion maps an asyncapi version string to its enumerated value.
// The full 3.0.x patch series maps to Version300; AsyncAPI v2 documents
// use a different server object shape (url/protocol rather than
// host/protocol) and are not supported by this model.
func ParseVersion(s string) (SpecVersion, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return VersionUnknown, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return VersionUnknown, false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return VersionUnknown, false
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return VersionUnknown, false
	}
	if major == 3 && minor == 0 {
		return Version300, true
	}
	return VersionUnknown, false
}
