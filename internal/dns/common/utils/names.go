// Package utils holds small helpers for moving DNS names between their
// canonical (lookup key) and presentation (wire-adjacent, trailing dot)
// forms.
package utils

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// CanonicalDNSName returns a DNS name in canonical form: lowercased,
// trimmed of surrounding whitespace, with no trailing dot. DNS names
// compare case-insensitively, so cache and journal keys use this form.
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}

// AbsoluteDNSName returns a DNS name in absolute form, ending with the
// root label, as the wire codec expects.
func AbsoluteDNSName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, ".") {
		return name
	}
	return name + "."
}

// ApexDomain returns the registrable domain (effective TLD plus one) of a
// name, falling back to the canonical name when the public suffix list
// cannot place it.
func ApexDomain(name string) string {
	name = CanonicalDNSName(name)
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}
	return apex
}
