package domain

import "fmt"

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN RRClass = 1 // IN - Internet
	RRClassCS RRClass = 2 // CS - CSNET (obsolete)
	RRClassCH RRClass = 3 // CH - Chaos
	RRClassHS RRClass = 4 // HS - Hesiod
)

// IsValid returns true if the RRClass is one of the four assigned classes.
func (c RRClass) IsValid() bool {
	return c >= RRClassIN && c <= RRClassHS
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	switch c {
	case RRClassIN:
		return "IN"
	case RRClassCS:
		return "CS"
	case RRClassCH:
		return "CH"
	case RRClassHS:
		return "HS"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", c)
	}
}
