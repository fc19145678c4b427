package domain

import "fmt"

// Header represents the fixed 12-byte DNS message header. It is constructed
// once per message and not modified afterwards; the section counts are
// recomputed from the actual section lengths when a message is encoded.
type Header struct {
	// ID is the caller-assigned transaction identifier, echoed by responses.
	ID uint16

	// Response is true for responses, false for queries (the QR bit).
	Response bool

	// Opcode is the query kind. Only values 0-2 are valid.
	Opcode Opcode

	Authoritative      bool // AA - the responding server is an authority
	Truncated          bool // TC - the message was cut to fit the transport
	RecursionDesired   bool // RD - the client asks for recursive service
	RecursionAvailable bool // RA - the server offers recursive service

	// RCode is the response code. Only values 0-5 are valid.
	RCode RCode

	QDCount uint16 // entries in the question section
	ANCount uint16 // records in the answer section
	NSCount uint16 // records in the authority section
	ARCount uint16 // records in the additional section
}

// NewHeader constructs a Header and validates its enumerated fields.
func NewHeader(id uint16, response bool, opcode Opcode, rcode RCode) (Header, error) {
	h := Header{
		ID:       id,
		Response: response,
		Opcode:   opcode,
		RCode:    rcode,
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Validate checks that the opcode and response code carry defined values.
func (h Header) Validate() error {
	if !h.Opcode.IsValid() {
		return fmt.Errorf("invalid opcode: %d", h.Opcode)
	}
	if !h.RCode.IsValid() {
		return fmt.Errorf("invalid response code: %d", h.RCode)
	}
	return nil
}
