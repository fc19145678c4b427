package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// headerLength is the fixed size of the DNS message header.
const headerLength = 12

// Bit layout of the second 16-bit word of the header.
const (
	flagResponse           = 1 << 15
	flagAuthoritative      = 1 << 10
	flagTruncated          = 1 << 9
	flagRecursionDesired   = 1 << 8
	flagRecursionAvailable = 1 << 7

	opcodeShift = 11
	opcodeMask  = 0xF

	reservedShift = 4
	reservedMask  = 0x7

	rcodeMask = 0xF
)

// decodeHeader decodes the fixed 12-byte header at off and returns the
// header and the offset just past it.
func decodeHeader(msg []byte, off int) (domain.Header, int, error) {
	if off+headerLength > len(msg) {
		return domain.Header{}, 0, fmt.Errorf("header needs %d bytes, have %d: %w", headerLength, len(msg)-off, ErrTruncated)
	}
	id := binary.BigEndian.Uint16(msg[off : off+2])
	flags := binary.BigEndian.Uint16(msg[off+2 : off+4])

	opcode := domain.Opcode(flags >> opcodeShift & opcodeMask)
	if !opcode.IsValid() {
		return domain.Header{}, 0, fmt.Errorf("header opcode %d: %w", opcode, ErrBadValue)
	}
	if z := flags >> reservedShift & reservedMask; z != 0 {
		return domain.Header{}, 0, fmt.Errorf("header reserved field is %#x: %w", z, ErrReservedBits)
	}
	rcode := domain.RCode(flags & rcodeMask)
	if !rcode.IsValid() {
		return domain.Header{}, 0, fmt.Errorf("header response code %d: %w", rcode, ErrBadValue)
	}

	h := domain.Header{
		ID:                 id,
		Response:           flags&flagResponse != 0,
		Opcode:             opcode,
		Authoritative:      flags&flagAuthoritative != 0,
		Truncated:          flags&flagTruncated != 0,
		RecursionDesired:   flags&flagRecursionDesired != 0,
		RecursionAvailable: flags&flagRecursionAvailable != 0,
		RCode:              rcode,
		QDCount:            binary.BigEndian.Uint16(msg[off+4 : off+6]),
		ANCount:            binary.BigEndian.Uint16(msg[off+6 : off+8]),
		NSCount:            binary.BigEndian.Uint16(msg[off+8 : off+10]),
		ARCount:            binary.BigEndian.Uint16(msg[off+10 : off+12]),
	}
	return h, off + headerLength, nil
}

// appendHeader performs the exact inverse bit packing of decodeHeader.
func appendHeader(buf []byte, h domain.Header) ([]byte, error) {
	if !h.Opcode.IsValid() {
		return nil, fmt.Errorf("header opcode %d: %w", h.Opcode, ErrBadValue)
	}
	if !h.RCode.IsValid() {
		return nil, fmt.Errorf("header response code %d: %w", h.RCode, ErrBadValue)
	}
	var flags uint16
	if h.Response {
		flags |= flagResponse
	}
	flags |= uint16(h.Opcode) << opcodeShift
	if h.Authoritative {
		flags |= flagAuthoritative
	}
	if h.Truncated {
		flags |= flagTruncated
	}
	if h.RecursionDesired {
		flags |= flagRecursionDesired
	}
	if h.RecursionAvailable {
		flags |= flagRecursionAvailable
	}
	flags |= uint16(h.RCode)

	buf = binary.BigEndian.AppendUint16(buf, h.ID)
	buf = binary.BigEndian.AppendUint16(buf, flags)
	buf = binary.BigEndian.AppendUint16(buf, h.QDCount)
	buf = binary.BigEndian.AppendUint16(buf, h.ANCount)
	buf = binary.BigEndian.AppendUint16(buf, h.NSCount)
	buf = binary.BigEndian.AppendUint16(buf, h.ARCount)
	return buf, nil
}
