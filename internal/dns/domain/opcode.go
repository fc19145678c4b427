package domain

import "fmt"

// Opcode represents the query-kind field in a DNS message header.
type Opcode uint8

// DNS Opcode constants (RFC 1035 section 4.1.1).
const (
	OpcodeStandardQuery Opcode = 0 // QUERY - standard query
	OpcodeInverseQuery  Opcode = 1 // IQUERY - inverse query
	OpcodeServerStatus  Opcode = 2 // STATUS - server status request
)

// IsValid returns true if the Opcode is one of the three assigned values.
// Values 3 through 15 are reserved.
func (o Opcode) IsValid() bool {
	return o <= OpcodeServerStatus
}

// String returns the textual representation of the Opcode.
func (o Opcode) String() string {
	switch o {
	case OpcodeStandardQuery:
		return "QUERY"
	case OpcodeInverseQuery:
		return "IQUERY"
	case OpcodeServerStatus:
		return "STATUS"
	default:
		return fmt.Sprintf("RESERVED(%d)", o)
	}
}
