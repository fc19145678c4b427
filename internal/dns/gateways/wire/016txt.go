package wire

import (
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeTXTData decodes the payload of a TXT record: a greedy sequence of
// character-strings consuming the entire declared data length.
func decodeTXTData(msg []byte, off, end int) (domain.TXTData, int, error) {
	var strings []string
	for off < end {
		s, next, err := decodeCharacterString(msg[:end], off)
		if err != nil {
			return domain.TXTData{}, 0, fmt.Errorf("TXT segment %d: %w", len(strings), err)
		}
		strings = append(strings, s)
		off = next
	}
	return domain.TXTData{Strings: strings}, off, nil
}

// appendTXTData writes each character-string in order.
func appendTXTData(buf []byte, d domain.TXTData) ([]byte, error) {
	var err error
	for i, s := range d.Strings {
		buf, err = appendCharacterString(buf, s)
		if err != nil {
			return nil, fmt.Errorf("TXT segment %d: %w", i, err)
		}
	}
	return buf, nil
}
