package domain

import (
	"fmt"
	"strings"
)

// Limits imposed on domain names by RFC 1035 section 2.3.4.
const (
	MaxNameLength  = 255 // total octets of a name in wire form
	MaxLabelLength = 63  // octets in a single label
)

// ValidateName checks that name is a well-formed domain name: non-empty,
// starting with a label, no empty interior labels, every label at most 63
// ASCII bytes, and at most 255 bytes overall. A single trailing dot is
// permitted and marks the name as absolute.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("domain name must not be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("domain name exceeds %d bytes", MaxNameLength)
	}
	labels := strings.Split(name, ".")
	if labels[0] == "" {
		return fmt.Errorf("domain name must start with a label")
	}
	for i, label := range labels {
		// An empty label at the end means the name ends in '.', which is the
		// root label of an absolute name. Empty anywhere else means two dots
		// were adjacent and an interior label is missing.
		if label == "" {
			if i != len(labels)-1 {
				return fmt.Errorf("domain name has an empty interior label")
			}
			continue
		}
		if len(label) > MaxLabelLength {
			return fmt.Errorf("label %q exceeds %d bytes", label, MaxLabelLength)
		}
		if !isASCII(label) {
			return fmt.Errorf("label %q is not ASCII", label)
		}
	}
	return nil
}

// IsAbsoluteName returns true if name ends with the root label.
func IsAbsoluteName(name string) bool {
	return strings.HasSuffix(name, ".")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
