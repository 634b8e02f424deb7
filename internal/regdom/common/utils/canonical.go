package utils

import "strings"

// CanonicalHostname returns a hostname in the canonical form the lookup
// pipeline keys on:
// - surrounding whitespace trimmed
// - lowercased
// - all trailing dots removed
//
// The core resolver itself only handles a single trailing dot; callers
// going through the service layer get full canonicalization here.
func CanonicalHostname(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}
