package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeMBData decodes the payload of an MB record, a single
// domain name that may be compressed.
func decodeMBData(msg []byte, off, end int) (domain.MBData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.MBData{}, 0, err
	}
	return domain.MBData{Mailbox: name}, off, nil
}
