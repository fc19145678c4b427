package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeNSData decodes the payload of an NS record, a single
// domain name that may be compressed.
func decodeNSData(msg []byte, off, end int) (domain.NSData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.NSData{}, 0, err
	}
	return domain.NSData{NS: name}, off, nil
}
