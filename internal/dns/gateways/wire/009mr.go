package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeMRData decodes the payload of an MR record, a single
// domain name that may be compressed.
func decodeMRData(msg []byte, off, end int) (domain.MRData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.MRData{}, 0, err
	}
	return domain.MRData{NewName: name}, off, nil
}
