package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeMXData decodes the payload of an MX record: a 16-bit preference
// followed by the exchange host name.
func decodeMXData(msg []byte, off, end int) (domain.MXData, int, error) {
	if off+2 > end {
		return domain.MXData{}, 0, fmt.Errorf("MX preference needs 2 bytes, have %d: %w", end-off, ErrTruncated)
	}
	preference := binary.BigEndian.Uint16(msg[off : off+2])
	exchange, off, err := decodeDataName(msg, off+2, end)
	if err != nil {
		return domain.MXData{}, 0, fmt.Errorf("MX exchange: %w", err)
	}
	return domain.MXData{Preference: preference, Exchange: exchange}, off, nil
}

// appendMXData writes the preference followed by the exchange name.
func appendMXData(buf []byte, d domain.MXData) ([]byte, error) {
	exchange, err := encodeName(d.Exchange)
	if err != nil {
		return nil, fmt.Errorf("MX exchange: %w", err)
	}
	buf = binary.BigEndian.AppendUint16(buf, d.Preference)
	return append(buf, exchange...), nil
}
