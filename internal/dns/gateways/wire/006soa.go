package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeSOAData decodes the payload of an SOA record: the primary name
// server, the responsible mailbox, and five 32-bit counters. Each counter
// independently checks the remaining payload before reading.
func decodeSOAData(msg []byte, off, end int) (domain.SOAData, int, error) {
	mname, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.SOAData{}, 0, fmt.Errorf("SOA mname: %w", err)
	}
	rname, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.SOAData{}, 0, fmt.Errorf("SOA rname: %w", err)
	}
	fields := []string{"serial", "refresh", "retry", "expire", "minimum"}
	var counters [5]uint32
	for i, field := range fields {
		if off+4 > end {
			return domain.SOAData{}, 0, fmt.Errorf("SOA %s needs 4 bytes, have %d: %w", field, end-off, ErrTruncated)
		}
		counters[i] = binary.BigEndian.Uint32(msg[off : off+4])
		off += 4
	}
	d := domain.SOAData{
		MName:   mname,
		RName:   rname,
		Serial:  counters[0],
		Refresh: counters[1],
		Retry:   counters[2],
		Expire:  counters[3],
		Minimum: counters[4],
	}
	return d, off, nil
}

// appendSOAData writes both names uncompressed followed by the counters.
func appendSOAData(buf []byte, d domain.SOAData) ([]byte, error) {
	mname, err := encodeName(d.MName)
	if err != nil {
		return nil, fmt.Errorf("SOA mname: %w", err)
	}
	rname, err := encodeName(d.RName)
	if err != nil {
		return nil, fmt.Errorf("SOA rname: %w", err)
	}
	buf = append(buf, mname...)
	buf = append(buf, rname...)
	buf = binary.BigEndian.AppendUint32(buf, d.Serial)
	buf = binary.BigEndian.AppendUint32(buf, d.Refresh)
	buf = binary.BigEndian.AppendUint32(buf, d.Retry)
	buf = binary.BigEndian.AppendUint32(buf, d.Expire)
	return binary.BigEndian.AppendUint32(buf, d.Minimum), nil
}
