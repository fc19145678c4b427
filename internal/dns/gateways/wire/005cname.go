package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeCNAMEData decodes the payload of a CNAME record, a single
// domain name that may be compressed.
func decodeCNAMEData(msg []byte, off, end int) (domain.CNAMEData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.CNAMEData{}, 0, err
	}
	return domain.CNAMEData{Target: name}, off, nil
}
