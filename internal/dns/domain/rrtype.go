package domain

import "fmt"

// RRType represents a DNS resource record type (e.g. A, NS, MX).
// Only the sixteen types assigned by RFC 1035 are supported.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1  // A - IPv4 host address
	RRTypeNS    RRType = 2  // NS - authoritative name server
	RRTypeMD    RRType = 3  // MD - mail destination (obsolete)
	RRTypeMF    RRType = 4  // MF - mail forwarder (obsolete)
	RRTypeCNAME RRType = 5  // CNAME - canonical name
	RRTypeSOA   RRType = 6  // SOA - start of authority
	RRTypeMB    RRType = 7  // MB - mailbox domain name
	RRTypeMG    RRType = 8  // MG - mail group member
	RRTypeMR    RRType = 9  // MR - mail rename domain name
	RRTypeNULL  RRType = 10 // NULL - opaque data
	RRTypeWKS   RRType = 11 // WKS - well known service description
	RRTypePTR   RRType = 12 // PTR - domain name pointer
	RRTypeHINFO RRType = 13 // HINFO - host information
	RRTypeMINFO RRType = 14 // MINFO - mailbox information
	RRTypeMX    RRType = 15 // MX - mail exchange
	RRTypeTXT   RRType = 16 // TXT - text strings
)

// IsValid returns true if the RRType is one of the sixteen assigned types.
func (t RRType) IsValid() bool {
	return t >= RRTypeA && t <= RRTypeTXT
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeMD:
		return "MD"
	case RRTypeMF:
		return "MF"
	case RRTypeCNAME:
		return "CNAME"
	case RRTypeSOA:
		return "SOA"
	case RRTypeMB:
		return "MB"
	case RRTypeMG:
		return "MG"
	case RRTypeMR:
		return "MR"
	case RRTypeNULL:
		return "NULL"
	case RRTypeWKS:
		return "WKS"
	case RRTypePTR:
		return "PTR"
	case RRTypeHINFO:
		return "HINFO"
	case RRTypeMINFO:
		return "MINFO"
	case RRTypeMX:
		return "MX"
	case RRTypeTXT:
		return "TXT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", t)
	}
}
