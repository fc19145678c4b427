package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeResourceRecord decodes one resource record at off and returns the
// record and the offset just past it. The data payload is parsed with a
// sub-cursor bounded to exactly RDLENGTH bytes; names inside the payload
// still resolve compression pointers against the full message buffer.
func decodeResourceRecord(msg []byte, off int) (domain.ResourceRecord, int, error) {
	name, off, err := decodeName(msg, off)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record name: %w", err)
	}
	if off+10 > len(msg) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record fields need 10 bytes, have %d: %w", len(msg)-off, ErrTruncated)
	}
	rrtype := domain.RRType(binary.BigEndian.Uint16(msg[off : off+2]))
	if !rrtype.IsValid() {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record type %d: %w", rrtype, ErrBadValue)
	}
	class := domain.RRClass(binary.BigEndian.Uint16(msg[off+2 : off+4]))
	if !class.IsValid() {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record class %d: %w", class, ErrBadValue)
	}
	ttl := int32(binary.BigEndian.Uint32(msg[off+4 : off+8]))
	length := int(binary.BigEndian.Uint16(msg[off+8 : off+10]))
	off += 10

	end := off + length
	if end > len(msg) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record data declares %d bytes, have %d: %w", length, len(msg)-off, ErrTruncated)
	}
	data, err := decodeRData(msg, off, end, rrtype)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%s record data at offset %d: %w", rrtype, off, err)
	}

	rr, err := domain.NewResourceRecord(name, rrtype, class, ttl, data)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record: %w", err)
	}
	return rr, end, nil
}

// appendResourceRecord serializes one resource record. Record names are
// always written uncompressed; this encoder never emits compression
// pointers.
func appendResourceRecord(buf []byte, rr domain.ResourceRecord) ([]byte, error) {
	if err := rr.Validate(); err != nil {
		return nil, err
	}
	name, err := encodeName(rr.Name)
	if err != nil {
		return nil, fmt.Errorf("record name: %w", err)
	}
	data, err := encodeRData(rr.Data)
	if err != nil {
		return nil, fmt.Errorf("%s record data: %w", rr.Type, err)
	}
	if len(data) > 65535 {
		return nil, fmt.Errorf("%s record data of %d bytes: %w", rr.Type, len(data), ErrLength)
	}

	buf = append(buf, name...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(rr.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(rr.Class))
	buf = binary.BigEndian.AppendUint32(buf, uint32(rr.TTL))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(data)))
	return append(buf, data...), nil
}
