package domain

import "fmt"

// RCode represents a DNS response code indicating the result of a query.
type RCode uint8

// DNS response code constants (RFC 1035 section 4.1.1).
const (
	RCodeNoError        RCode = 0 // NOERROR - no error condition
	RCodeFormatError    RCode = 1 // FORMERR - the server could not interpret the query
	RCodeServerFailure  RCode = 2 // SERVFAIL - the server failed to process the query
	RCodeNameError      RCode = 3 // NXDOMAIN - the queried name does not exist
	RCodeNotImplemented RCode = 4 // NOTIMP - the query kind is not supported
	RCodeRefused        RCode = 5 // REFUSED - the server refuses to answer
)

// IsValid returns true if the RCode is one of the six defined response codes.
func (r RCode) IsValid() bool {
	return r <= RCodeRefused
}

// String returns the textual representation of the RCode.
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormatError:
		return "FORMERR"
	case RCodeServerFailure:
		return "SERVFAIL"
	case RCodeNameError:
		return "NXDOMAIN"
	case RCodeNotImplemented:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	default:
		return fmt.Sprintf("RESERVED(%d)", r)
	}
}
