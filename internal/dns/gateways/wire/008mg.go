package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeMGData decodes the payload of an MG record, a single
// domain name that may be compressed.
func decodeMGData(msg []byte, off, end int) (domain.MGData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.MGData{}, 0, err
	}
	return domain.MGData{Mailbox: name}, off, nil
}
