package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeMDData decodes the payload of an MD record (obsolete), a single
// domain name that may be compressed.
func decodeMDData(msg []byte, off, end int) (domain.MDData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.MDData{}, 0, err
	}
	return domain.MDData{Mail: name}, off, nil
}
