package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodePTRData decodes the payload of a PTR record, a single
// domain name that may be compressed.
func decodePTRData(msg []byte, off, end int) (domain.PTRData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.PTRData{}, 0, err
	}
	return domain.PTRData{Target: name}, off, nil
}
