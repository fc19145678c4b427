package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeMFData decodes the payload of an MF record (obsolete), a single
// domain name that may be compressed.
func decodeMFData(msg []byte, off, end int) (domain.MFData, int, error) {
	name, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.MFData{}, 0, err
	}
	return domain.MFData{Mail: name}, off, nil
}
